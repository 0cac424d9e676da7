package formatter

import (
	"encoding/json"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// Format re-serializes the result exactly as the service reported it. No
// values are recomputed or filtered.
func (f *jsonFormatter) Format(result *analyze.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
