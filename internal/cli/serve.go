package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ydemirbas/gradelens/internal/grader"
	"github.com/ydemirbas/gradelens/internal/logger"
	"github.com/ydemirbas/gradelens/internal/server"
)

var serveAddr string

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the grading server",
		Long: `Start the built-in grading server.

The server exposes POST /analyze for rubric and assignment uploads and
serves a browser upload page at the root. The grade and watch commands
can point at it with --endpoint.

Examples:
  gradelens serve
  gradelens serve --addr :9000`,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	log := logger.New("server", verboseFlag{})

	g := grader.New(grader.Options{
		MetThreshold:     cfg.Grading.MetThreshold,
		PartialThreshold: cfg.Grading.PartialThreshold,
		VectorDimensions: cfg.Grading.VectorDimensions,
	}, log.WithComponent("grader"))

	srv := server.New(server.Options{
		Addr:         addr,
		BodyLimit:    cfg.Server.BodyLimit,
		EnableCORS:   cfg.Server.EnableCORS,
		AllowOrigins: cfg.Server.AllowOrigins,
	}, g, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Fprintf(os.Stderr, "Grading server listening on %s\n", addr)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-signals:
		fmt.Fprintf(os.Stderr, "\nShutting down...\n")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
