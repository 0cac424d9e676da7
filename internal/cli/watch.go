package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ydemirbas/gradelens/internal/analyze"
	"github.com/ydemirbas/gradelens/internal/formatter"
	"github.com/ydemirbas/gradelens/internal/logger"
	"github.com/ydemirbas/gradelens/internal/upload"
)

var (
	watchRubric   string
	watchEndpoint string
	watchDebounce time.Duration
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [assignment]",
		Short: "Re-grade an assignment whenever it changes",
		Long: `Monitor an assignment file and re-submit it for grading every time it
is saved. Useful while revising a draft against a fixed rubric.

Uses file system notifications to detect writes. Press Ctrl+C to stop
watching.

Examples:
  gradelens watch --rubric rubric.txt essay.txt
  gradelens watch -r rubric.txt --debounce 2s draft.docx`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().StringVarP(&watchRubric, "rubric", "r", "", "rubric file (required)")
	cmd.Flags().StringVarP(&watchEndpoint, "endpoint", "e", "", "analyze service endpoint")
	cmd.Flags().DurationVar(&watchDebounce, "debounce", time.Second, "wait after a change before re-grading")

	_ = cmd.MarkFlagRequired("rubric")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	assignment := args[0]

	if err := validateWatchFilePath(assignment); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}

	cfg := GetGlobalConfig()
	endpoint := watchEndpoint
	if endpoint == "" {
		endpoint = cfg.Client.Endpoint
	}

	client, err := analyze.NewClient(&analyze.Config{
		Endpoint: endpoint,
		Timeout:  cfg.Client.Timeout,
	})
	if err != nil {
		return fmt.Errorf("creating analyze client: %w", err)
	}

	log := logger.New("watch", verboseFlag{})
	controller := upload.NewController(client, log)

	if err := controller.Select(upload.SlotRubric, watchRubric); err != nil {
		return fmt.Errorf("%s", analyze.FailureMessage(err))
	}
	if err := controller.Select(upload.SlotAssignment, assignment); err != nil {
		return fmt.Errorf("%s", analyze.FailureMessage(err))
	}

	watcher, err := createWatcher(assignment)
	if err != nil {
		return err
	}
	defer cleanupWatcher(watcher)

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", assignment)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	// Grade once up front so the first report does not wait for a save.
	gradeAndPrint(controller)

	return runWatchLoop(watcher, controller)
}

// runWatchLoop runs the main watch loop with signal handling. Write events
// are debounced so editors that write in bursts trigger one re-grade.
func runWatchLoop(watcher *fsnotify.Watcher, controller *upload.Controller) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var pending *time.Timer
	regrade := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, stopping...\n")
			}
			return nil

		case <-regrade:
			gradeAndPrint(controller)

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(watchDebounce, func() {
					select {
					case regrade <- struct{}{}:
					default:
					}
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}
}

// gradeAndPrint runs one submission and prints the formatted result. Errors
// are reported and watching continues.
func gradeAndPrint(controller *upload.Controller) {
	result, err := controller.Submit(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", analyze.FailureMessage(err))
		return
	}

	f, err := formatter.New(outputFormat(), colorEnabled())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	output, err := f.Format(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Printf("[%s] re-graded\n", time.Now().Format("15:04:05"))
	_, _ = os.Stdout.Write(output)
	fmt.Println()
}

// createWatcher creates and configures a new file system watcher
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
