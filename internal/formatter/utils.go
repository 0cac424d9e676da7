package formatter

import (
	"strconv"

	"github.com/yildizm/go-termfmt"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// statusSymbol returns the visual marker for a requirement status using
// go-termfmt so emoji fallbacks stay consistent with the rest of the output.
func statusSymbol(status analyze.Status, opts *termfmt.TerminalOptions) string {
	switch status.Category() {
	case analyze.CategoryPositive:
		return termfmt.GetEmoji("success", opts)
	case analyze.CategoryWarning:
		return termfmt.GetEmoji("warning", opts)
	case analyze.CategoryNegative:
		return termfmt.GetEmoji("error", opts)
	default:
		return termfmt.GetEmoji("info", opts)
	}
}

// formatPoints renders a point value without trailing zeros. Values arrive
// as the service reported them and are never recomputed here.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// statusCounts tallies requirements per fulfillment level in display order.
func statusCounts(feedback []analyze.RequirementFeedback) (met, partial, notMet, other int) {
	for _, f := range feedback {
		switch f.Status {
		case analyze.StatusMet:
			met++
		case analyze.StatusPartiallyMet:
			partial++
		case analyze.StatusNotMet:
			notMet++
		default:
			other++
		}
	}
	return met, partial, notMet, other
}
