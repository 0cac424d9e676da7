package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ydemirbas/gradelens/internal/analyze"
	"github.com/ydemirbas/gradelens/internal/formatter"
	"github.com/ydemirbas/gradelens/internal/logger"
	"github.com/ydemirbas/gradelens/internal/ui"
	"github.com/ydemirbas/gradelens/internal/upload"
)

var (
	gradeRubric     string
	gradeAssignment string
	gradeEndpoint   string
	gradeTimeout    time.Duration
	gradeNoTUI      bool
	gradeOutputFile string
)

func newGradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade an assignment against a rubric",
		Long: `Upload a rubric and an assignment to the analyze service and display
the grading feedback.

Both files are capped at 5MB. Accepted formats are plain text, PDF, and
DOCX; anything else is read as plain text.

Examples:
  gradelens grade --rubric rubric.txt --assignment essay.pdf
  gradelens grade -r rubric.txt -a essay.pdf --no-tui --output json
  gradelens grade -r rubric.txt -a essay.pdf --endpoint http://grading:8000`,
		RunE: runGrade,
	}

	cmd.Flags().StringVarP(&gradeRubric, "rubric", "r", "", "rubric file (required)")
	cmd.Flags().StringVarP(&gradeAssignment, "assignment", "a", "", "assignment file (required)")
	cmd.Flags().StringVarP(&gradeEndpoint, "endpoint", "e", "", "analyze service endpoint")
	cmd.Flags().DurationVar(&gradeTimeout, "timeout", 0, "request timeout (0 means no deadline)")
	cmd.Flags().BoolVar(&gradeNoTUI, "no-tui", false, "disable terminal UI, output to stdout")
	cmd.Flags().StringVar(&gradeOutputFile, "output-file", "", "save output to file instead of stdout")

	_ = cmd.MarkFlagRequired("rubric")
	_ = cmd.MarkFlagRequired("assignment")

	return cmd
}

func runGrade(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	endpoint := gradeEndpoint
	if endpoint == "" {
		endpoint = cfg.Client.Endpoint
	}
	timeout := gradeTimeout
	if !cmd.Flag("timeout").Changed {
		timeout = cfg.Client.Timeout
	}

	client, err := analyze.NewClient(&analyze.Config{
		Endpoint: endpoint,
		Timeout:  timeout,
	})
	if err != nil {
		return fmt.Errorf("creating analyze client: %w", err)
	}

	log := logger.New("grade", verboseFlag{})
	controller := upload.NewController(client, log)

	if err := controller.Select(upload.SlotRubric, gradeRubric); err != nil {
		return fmt.Errorf("%s", analyze.FailureMessage(err))
	}
	if err := controller.Select(upload.SlotAssignment, gradeAssignment); err != nil {
		return fmt.Errorf("%s", analyze.FailureMessage(err))
	}

	if useTUI() {
		return ui.Run(client, controller.State())
	}

	result, err := controller.Submit(context.Background())
	if err != nil {
		return fmt.Errorf("%s", analyze.FailureMessage(err))
	}

	f, err := formatter.New(outputFormat(), colorEnabled())
	if err != nil {
		return err
	}
	output, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("formatting result: %w", err)
	}

	return writeOutput(output, gradeOutputFile)
}

// useTUI decides between the interactive view and plain output. Structured
// formats always bypass the TUI.
func useTUI() bool {
	if gradeNoTUI {
		return false
	}
	switch outputFormat() {
	case "terminal", "text", "":
		return true
	default:
		return false
	}
}

// writeOutput sends formatted output to a file or stdout.
func writeOutput(output []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(path, output, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to %s\n", path)
	}
	return nil
}
