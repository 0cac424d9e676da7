package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// terminalFormatter formats grading results for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(result *analyze.Result) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeScore(&b, result)
	f.writeRequirements(&b, result.DetailedFeedback)
	f.writeOverall(&b, result.OverallFeedback)

	return []byte(b.String()), nil
}

// writeHeader writes a box-drawn report title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Grading Report"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeScore writes the overall score with a visual bar. The score is shown
// exactly as reported, even when it falls outside the usual range.
func (f *terminalFormatter) writeScore(b *strings.Builder, result *analyze.Result) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Score\n")

	met, partial, notMet, other := statusCounts(result.DetailedFeedback)

	items := []termfmt.TreeItem{
		{Label: "Overall", Value: fmt.Sprintf("%s%%", formatPoints(result.Score))},
		{Label: "Met", Value: fmt.Sprintf("%d", met)},
		{Label: "Partially Met", Value: fmt.Sprintf("%d", partial)},
	}
	if other > 0 {
		items = append(items, termfmt.TreeItem{Label: "Not Met", Value: fmt.Sprintf("%d", notMet)})
		items = append(items, termfmt.TreeItem{Label: "Other", Value: fmt.Sprintf("%d", other), Last: true})
	} else {
		items = append(items, termfmt.TreeItem{Label: "Not Met", Value: fmt.Sprintf("%d", notMet), Last: true})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeRequirements writes one entry per requirement in the order the
// service reported them.
func (f *terminalFormatter) writeRequirements(b *strings.Builder, feedback []analyze.RequirementFeedback) {
	if len(feedback) == 0 {
		return
	}

	symbol := termfmt.GetEmoji("feedback", f.opts)
	b.WriteString(symbol + " Requirements\n")

	for i, item := range feedback {
		marker := statusSymbol(item.Status, f.opts)
		branch := "├─"
		if i == len(feedback)-1 {
			branch = "└─"
		}
		fmt.Fprintf(b, "%s %s %s [%s] %s/%s pts\n",
			branch, marker, item.Requirement, item.Status,
			formatPoints(item.PointsEarned), formatPoints(item.PointsPossible))

		prefix := "│  "
		if i == len(feedback)-1 {
			prefix = "   "
		}
		if item.Feedback != "" {
			fmt.Fprintf(b, "%s%s\n", prefix, item.Feedback)
		}
		for _, suggestion := range item.Suggestions {
			fmt.Fprintf(b, "%s• %s\n", prefix, suggestion)
		}
	}
	b.WriteString("\n")
}

// writeOverall writes strengths, areas for improvement, and the summary
func (f *terminalFormatter) writeOverall(b *strings.Builder, overall analyze.OverallFeedback) {
	if len(overall.Strengths) > 0 {
		symbol := termfmt.GetEmoji("success", f.opts)
		b.WriteString(symbol + " Strengths\n")
		for _, s := range overall.Strengths {
			b.WriteString("• " + s + "\n")
		}
		b.WriteString("\n")
	}

	if len(overall.AreasForImprovement) > 0 {
		symbol := termfmt.GetEmoji("warning", f.opts)
		b.WriteString(symbol + " Areas for Improvement\n")
		for _, s := range overall.AreasForImprovement {
			b.WriteString("• " + s + "\n")
		}
		b.WriteString("\n")
	}

	if overall.Summary != "" {
		symbol := termfmt.GetEmoji("summary", f.opts)
		b.WriteString(symbol + " Summary\n")
		b.WriteString(overall.Summary + "\n")
	}
}
