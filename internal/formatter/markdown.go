package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(result *analyze.Result) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Grading Report\n\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	f.writeSummaryTable(&b, result)
	f.writeRequirementSections(&b, result.DetailedFeedback)
	f.writeOverallSection(&b, result.OverallFeedback)

	return []byte(b.String()), nil
}

// writeSummaryTable writes the score summary as a table
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, result *analyze.Result) {
	met, partial, notMet, _ := statusCounts(result.DetailedFeedback)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Score | %s%% |\n", formatPoints(result.Score))
	fmt.Fprintf(b, "| Requirements | %d |\n", len(result.DetailedFeedback))
	fmt.Fprintf(b, "| Met | %d |\n", met)
	fmt.Fprintf(b, "| Partially Met | %d |\n", partial)
	fmt.Fprintf(b, "| Not Met | %d |\n", notMet)
	b.WriteString("\n")
}

// writeRequirementSections writes one section per requirement in report order
func (f *markdownFormatter) writeRequirementSections(b *strings.Builder, feedback []analyze.RequirementFeedback) {
	if len(feedback) == 0 {
		return
	}

	b.WriteString("## Requirements\n\n")
	for i, item := range feedback {
		fmt.Fprintf(b, "### %d. %s\n\n", i+1, item.Requirement)
		fmt.Fprintf(b, "- **Status**: %s\n", item.Status)
		fmt.Fprintf(b, "- **Points**: %s / %s\n", formatPoints(item.PointsEarned), formatPoints(item.PointsPossible))
		fmt.Fprintf(b, "- **Feedback**: %s\n", item.Feedback)
		if len(item.Suggestions) > 0 {
			b.WriteString("- **Suggestions**:\n")
			for _, suggestion := range item.Suggestions {
				fmt.Fprintf(b, "  - %s\n", suggestion)
			}
		}
		b.WriteString("\n")
	}
}

// writeOverallSection writes strengths, areas for improvement, and summary
func (f *markdownFormatter) writeOverallSection(b *strings.Builder, overall analyze.OverallFeedback) {
	b.WriteString("## Overall Feedback\n\n")

	if len(overall.Strengths) > 0 {
		b.WriteString("### Strengths\n\n")
		for _, s := range overall.Strengths {
			fmt.Fprintf(b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if len(overall.AreasForImprovement) > 0 {
		b.WriteString("### Areas for Improvement\n\n")
		for _, s := range overall.AreasForImprovement {
			fmt.Fprintf(b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if overall.Summary != "" {
		fmt.Fprintf(b, "%s\n", overall.Summary)
	}
}
