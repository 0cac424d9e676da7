package grader

import (
	"fmt"

	"github.com/ydemirbas/gradelens/internal/analyze"
)

// criterionFeedback returns the commentary and suggestions for one
// requirement at the given fulfillment level.
func criterionFeedback(criterion Criterion, status analyze.Status) (string, []string) {
	switch status {
	case analyze.StatusMet:
		return fmt.Sprintf("Excellent demonstration of %s requirements.", criterion.Kind),
			[]string{"Consider adding more examples to strengthen your argument."}
	case analyze.StatusPartiallyMet:
		return "Basic understanding shown, but needs more depth.",
			[]string{
				"Expand your discussion of key concepts.",
				"Add more specific examples.",
				"Link your ideas more clearly to the requirements.",
			}
	default:
		return "Requirement not adequately addressed.",
			[]string{
				"Review the requirement carefully.",
				"Include specific discussion of required topics.",
				"Add supporting evidence and examples.",
			}
	}
}

// overallFeedback rolls the per-requirement results up into strengths, areas
// for improvement, and a one-sentence summary.
func overallFeedback(results []analyze.RequirementFeedback) analyze.OverallFeedback {
	strengths := []string{}
	improvements := []string{}
	var met, partial, notMet int

	for _, r := range results {
		switch r.Status {
		case analyze.StatusMet:
			met++
			strengths = append(strengths, r.Requirement)
		case analyze.StatusPartiallyMet:
			partial++
			improvements = append(improvements, r.Requirement)
		default:
			notMet++
			improvements = append(improvements, r.Requirement)
		}
	}

	summary := fmt.Sprintf(
		"Out of %d requirements, %d were fully met, %d were partially met, and %d need improvement.",
		len(results), met, partial, notMet,
	)

	return analyze.OverallFeedback{
		Strengths:           strengths,
		AreasForImprovement: improvements,
		Summary:             summary,
	}
}
