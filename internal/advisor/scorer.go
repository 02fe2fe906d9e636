package advisor

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Skufu/medadvisor/internal/knowledge"
)

const (
	confidenceStep = 0.3
	confidenceCap  = 0.9
)

// Knowledge is the read side of the knowledge store used for scoring.
type Knowledge interface {
	Symptom(key string) (knowledge.SymptomEntry, bool)
	Condition(name string) (knowledge.ConditionEntry, bool)
}

// Scored is the scorer output consumed by Assemble.
type Scored struct {
	Candidates []CandidateCondition
	Warnings   []string
}

type Scorer struct {
	kb  Knowledge
	log logrus.FieldLogger
}

func NewScorer(kb Knowledge, log logrus.FieldLogger) *Scorer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scorer{kb: kb, log: log}
}

// Score counts, per condition, how many reported symptoms point at it and
// collects urgency indicators found in the raw symptom text.
//
// age and gender are accepted for future refinement and do not affect
// scoring.
func (s *Scorer) Score(symptoms []string, age *int, gender string) Scored {
	counts := make(map[string]int)
	var order []string
	warnings := []string{}

	for _, raw := range symptoms {
		entry, ok := s.kb.Symptom(Normalize(raw))
		if !ok {
			s.log.WithField("symptom", raw).Debug("skipping unknown symptom")
			continue
		}

		lowered := strings.ToLower(raw)
		for _, indicator := range entry.UrgencyIndicators {
			if strings.Contains(lowered, indicator) {
				warnings = append(warnings, fmt.Sprintf("%s: %s", raw, indicator))
			}
		}

		for _, condition := range entry.AssociatedConditions {
			if _, seen := counts[condition]; !seen {
				order = append(order, condition)
			}
			counts[condition]++
		}
	}

	candidates := []CandidateCondition{}
	for _, name := range order {
		n := counts[name]
		if n < 1 {
			continue
		}
		c, ok := s.kb.Condition(name)
		if !ok {
			s.log.WithField("condition", name).Debug("dropping undocumented condition")
			continue
		}
		candidates = append(candidates, CandidateCondition{
			Name:            c.Name,
			Description:     c.Description,
			Confidence:      Confidence(n),
			Urgency:         c.Urgency,
			Recommendations: c.Recommendations,
		})
	}

	return Scored{Candidates: candidates, Warnings: warnings}
}

// Confidence maps a matching-symptom count onto [0, 0.9].
func Confidence(matches int) float64 {
	return math.Min(float64(matches)*confidenceStep, confidenceCap)
}
