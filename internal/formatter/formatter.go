package formatter

import (
	"fmt"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(result *analyze.Result) ([]byte, error)
}

// New creates a formatter for the named output format.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "terminal", "text", "":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
