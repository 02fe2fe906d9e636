package advisor

import (
	"encoding/json"
	"time"

	"github.com/Skufu/medadvisor/internal/domain"
)

// CandidateCondition is a documented condition supported by at least one
// reported symptom.
type CandidateCondition struct {
	Name            string         `json:"condition"`
	Description     string         `json:"description"`
	Confidence      float64        `json:"confidence"`
	Urgency         domain.Urgency `json:"urgency"`
	Recommendations []string       `json:"recommendations"`
}

// AnalysisResult is the successful outcome of one analysis call.
type AnalysisResult struct {
	Timestamp          time.Time            `json:"timestamp"`
	SymptomsAnalyzed   []string             `json:"symptoms_analyzed"`
	PossibleConditions []CandidateCondition `json:"possible_conditions"`
	UrgencyLevel       domain.Urgency       `json:"urgency_level"`
	Recommendations    []string             `json:"recommendations"`
	Warnings           []string             `json:"warnings"`
	ConfidenceScore    float64              `json:"confidence_score"`
}

// Outcome carries exactly one of Result or Failure.
type Outcome struct {
	Result  *AnalysisResult
	Failure *domain.ErrorResult
}

func (o Outcome) Failed() bool {
	return o.Failure != nil
}

// MarshalJSON encodes whichever side is set, so callers see either the
// result object or the {error, message} object.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Failure != nil {
		return json.Marshal(o.Failure)
	}
	return json.Marshal(o.Result)
}
