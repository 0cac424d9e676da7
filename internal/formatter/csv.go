package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// csvFormatter formats requirement feedback as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(result *analyze.Result) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Requirement",
		"Status",
		"Points Earned",
		"Points Possible",
		"Feedback",
		"Suggestions",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range result.DetailedFeedback {
		record := []string{
			item.Requirement,
			item.Status.String(),
			formatPoints(item.PointsEarned),
			formatPoints(item.PointsPossible),
			item.Feedback,
			strings.Join(item.Suggestions, "; "),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
