package analyze

import "encoding/json"

// ValidateResult checks that a decoded 2xx body structurally carries an
// analysis result. Schema violations are reported as their own error kind so
// callers can distinguish them from transport failures.
//
// Validation is structural only: score values outside [0,100] and
// points_earned greater than points_possible pass through untouched, since
// the scoring contract belongs to the analyze service.
func ValidateResult(raw []byte, result *Result) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return NewClientErrorWithCause(ErrTypeTransport, err.Error(), err)
	}

	for _, field := range []string{"score", "detailed_feedback", "overall_feedback"} {
		if _, ok := probe[field]; !ok {
			return NewClientError(ErrTypeSchema, "response missing required field: "+field)
		}
	}

	if result.DetailedFeedback == nil {
		return NewClientError(ErrTypeSchema, "detailed_feedback must be an array")
	}

	return nil
}
