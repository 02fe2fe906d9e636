package domain

import "fmt"

// ErrorResult is the tagged failure payload returned in place of a successful
// result. Callers tell the two shapes apart by the presence of the error field.
type ErrorResult struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	ErrAnalysisFailed     = "Analysis failed"
	ErrMedicationNotFound = "Medication not found"
	ErrSituationNotFound  = "Situation not found"
)

// NewAnalysisFailure is returned when the analysis pipeline faults.
func NewAnalysisFailure() *ErrorResult {
	return &ErrorResult{
		Error:   ErrAnalysisFailed,
		Message: "Unable to analyze symptoms at this time",
	}
}

// NewMedicationNotFound reports a medication query with no match.
func NewMedicationNotFound(query string) *ErrorResult {
	return &ErrorResult{
		Error:   ErrMedicationNotFound,
		Message: fmt.Sprintf("No information available for %s", query),
	}
}

// NewSituationNotFound reports a first-aid query with no match.
func NewSituationNotFound(situation string) *ErrorResult {
	return &ErrorResult{
		Error:   ErrSituationNotFound,
		Message: fmt.Sprintf("No first aid information available for %s", situation),
	}
}
