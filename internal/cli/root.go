package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ydemirbas/gradelens/internal/config"
	"github.com/ydemirbas/gradelens/internal/emoji"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gradelens",
		Short: "Automated Rubric-Based Grading Feedback",
		Long: `GradeLens grades assignments against rubrics and explains the result.

It extracts requirements and point values from a rubric, compares the
assignment text against each requirement, and reports per-requirement
feedback plus an overall score. Grading runs against a local or remote
analyze service; the built-in server is started with "gradelens serve".`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			emoji.SetEmojiDisabled(noEmoji)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (terminal, json, markdown, csv)")

	// Add subcommands
	rootCmd.AddCommand(newGradeCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("GradeLens %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig loads configuration once and caches it. Load failures fall
// back to defaults with a warning rather than aborting the command.
func GetGlobalConfig() *config.Config {
	if globalConfig != nil {
		return globalConfig
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	globalConfig = cfg
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	return verbose
}

// outputFormat resolves the effective output format from the flag and config.
func outputFormat() string {
	if outputFmt != "" {
		return outputFmt
	}
	return GetGlobalConfig().Output.DefaultFormat
}

// colorEnabled resolves the effective color setting from the flag and config.
func colorEnabled() bool {
	if noColor {
		return false
	}
	switch GetGlobalConfig().Output.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return true
	}
}

// verboseFlag adapts the package-level verbose flag to the logger interface.
type verboseFlag struct{}

func (verboseFlag) IsVerbose() bool { return verbose }
