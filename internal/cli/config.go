package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ydemirbas/gradelens/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage GradeLens configuration",
		Long: `Inspect and manage GradeLens configuration files.

Settings merge from /etc/gradelens/config.yaml, the user config, the
project .gradelens.yaml, GRADELENS_* environment variables, and flags,
in rising priority.`,
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigValidateCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Example: `  gradelens config init
  gradelens config init --minimal
  gradelens config init --output ~/.config/gradelens/config.yaml --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".gradelens.yaml"
			}
			if !force && fileExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			if dir := filepath.Dir(outputPath); dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			content := config.SampleConfig()
			if minimal {
				content = config.MinimalSampleConfig()
			}
			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Printf("Configuration file created at: %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default: .gradelens.yaml)")
	cmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "write only the essential settings")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var (
		format     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long: `Display the merged configuration after applying all files and
environment overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				fmt.Print(string(data))
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")

	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Configuration validation failed:\n   %v\n", err)
				return err
			}

			fmt.Println("Configuration is valid")
			fmt.Printf("   Version: %s\n", cfg.Version)
			fmt.Printf("   Endpoint: %s\n", cfg.Client.Endpoint)
			fmt.Printf("   Output Format: %s\n", cfg.Output.DefaultFormat)
			fmt.Printf("   Server Address: %s\n", cfg.Server.Addr)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")

	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration search paths",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Configuration file search paths (in priority order):")
			for i, path := range config.GetConfigPaths() {
				marker := "(not found)"
				if fileExists(path) {
					marker = "(exists)"
				}
				fmt.Printf("  %d. %s %s\n", i+1, path, marker)
			}

			if current, found := config.FindConfigFile(); found {
				fmt.Printf("\nCurrent config file: %s\n", current)
			} else {
				fmt.Println("\nNo config file found, using defaults")
			}
			fmt.Println("\nEnvironment variables with GRADELENS_ prefix override file settings")
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
