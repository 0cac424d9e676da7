package analyze

import "encoding/json"

// Status is the fulfillment level reported for a single rubric requirement.
type Status int

const (
	StatusUnknown Status = iota
	StatusMet
	StatusPartiallyMet
	StatusNotMet
)

// ParseStatus maps a wire status string to a Status. Unrecognized values map
// to StatusUnknown rather than failing; the service owns the vocabulary.
func ParseStatus(s string) Status {
	switch s {
	case "Met":
		return StatusMet
	case "Partially Met", "PartiallyMet":
		return StatusPartiallyMet
	case "Not Met", "NotMet":
		return StatusNotMet
	default:
		return StatusUnknown
	}
}

// String returns the display form of the status.
func (s Status) String() string {
	switch s {
	case StatusMet:
		return "Met"
	case StatusPartiallyMet:
		return "Partially Met"
	case StatusNotMet:
		return "Not Met"
	default:
		return "Unknown"
	}
}

// Category is the visual bucket a status renders into.
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryWarning  Category = "warning"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// Category maps a status to its visual category.
func (s Status) Category() Category {
	switch s {
	case StatusMet:
		return CategoryPositive
	case StatusPartiallyMet:
		return CategoryWarning
	case StatusNotMet:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

// MarshalJSON emits the wire form of the status.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts any string; unknown values become StatusUnknown.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// RequirementFeedback is one rubric line-item's evaluation result.
type RequirementFeedback struct {
	Requirement    string   `json:"requirement"`
	Status         Status   `json:"status"`
	PointsEarned   float64  `json:"points_earned"`
	PointsPossible float64  `json:"points_possible"`
	Feedback       string   `json:"feedback"`
	Suggestions    []string `json:"improvement_suggestions,omitempty"`
}

// OverallFeedback summarizes the assignment as a whole. List order is
// display order.
type OverallFeedback struct {
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	Summary             string   `json:"summary"`
}

// Result is the analyze service's response. Consumers treat it read-only;
// values are passed through verbatim with no recomputation, including scores
// outside [0,100] or earned > possible.
type Result struct {
	Score            float64               `json:"score"`
	PointsEarned     float64               `json:"points_earned,omitempty"`
	TotalPoints      float64               `json:"total_points,omitempty"`
	DetailedFeedback []RequirementFeedback `json:"detailed_feedback"`
	OverallFeedback  OverallFeedback       `json:"overall_feedback"`
}

// Document is one uploaded file as it goes onto the wire.
type Document struct {
	Name    string
	Content []byte
}

// errorResponse is the failure body shape of the analyze endpoint.
type errorResponse struct {
	Error string `json:"error"`
}
