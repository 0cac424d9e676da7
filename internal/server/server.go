// Package server exposes the grading engine over HTTP. The surface matches
// what the upload client expects: POST /analyze taking rubric and assignment
// files and returning the analysis result as JSON.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ydemirbas/gradelens/internal/grader"
	"github.com/ydemirbas/gradelens/internal/logger"
	"github.com/ydemirbas/gradelens/internal/web"
)

// Options configures the HTTP server.
type Options struct {
	Addr         string
	BodyLimit    string
	EnableCORS   bool
	AllowOrigins []string
}

// DefaultOptions returns the standard server settings.
func DefaultOptions() Options {
	return Options{
		Addr:         ":8000",
		BodyLimit:    "12M",
		EnableCORS:   true,
		AllowOrigins: []string{"*"},
	}
}

// Server wires the grading handlers into an echo instance.
type Server struct {
	echo   *echo.Echo
	opts   Options
	grader *grader.Grader
	log    *logger.Logger
}

// New builds a Server. A nil grader gets default options; a nil logger gets a
// default component logger.
func New(opts Options, g *grader.Grader, log *logger.Logger) *Server {
	if g == nil {
		g = grader.New(grader.DefaultOptions(), nil)
	}
	if log == nil {
		log = logger.New("server", nil)
	}
	if opts.Addr == "" {
		opts.Addr = DefaultOptions().Addr
	}
	if opts.BodyLimit == "" {
		opts.BodyLimit = DefaultOptions().BodyLimit
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))
	e.Use(middleware.BodyLimit(opts.BodyLimit))

	if opts.EnableCORS {
		origins := opts.AllowOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	s := &Server{echo: e, opts: opts, grader: g, log: log}

	e.GET("/healthz", s.handleHealth)
	e.POST("/analyze", s.handleAnalyze)

	if web.HasEmbeddedPage() {
		e.GET("/", s.handleIndex)
	}

	return s
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start() error {
	s.log.Info("listening on %s", s.opts.Addr)
	return s.echo.Start(s.opts.Addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
