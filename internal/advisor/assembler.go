package advisor

import (
	"time"

	"github.com/Skufu/medadvisor/internal/domain"
)

var urgencyAdvice = map[domain.Urgency][]string{
	domain.Emergency: {
		"🚨 SEEK IMMEDIATE MEDICAL ATTENTION",
		"Call emergency services immediately",
	},
	domain.Urgent: {
		"⚠️ Consult a healthcare provider within 24 hours",
	},
	domain.NonUrgent: {
		"✅ Monitor symptoms and consult doctor if they persist",
	},
}

// generalAdvice closes every successful analysis, whatever the urgency.
var generalAdvice = []string{
	"Stay hydrated",
	"Get adequate rest",
	"Avoid strenuous activities if experiencing symptoms",
}

// Assemble builds the final result from scorer output.
func Assemble(scored Scored, symptoms []string, at time.Time) *AnalysisResult {
	level := overallUrgency(scored)

	recommendations := make([]string, 0, len(urgencyAdvice[level])+len(generalAdvice))
	recommendations = append(recommendations, urgencyAdvice[level]...)
	recommendations = append(recommendations, generalAdvice...)

	echo := make([]string, len(symptoms))
	copy(echo, symptoms)

	candidates := scored.Candidates
	if candidates == nil {
		candidates = []CandidateCondition{}
	}
	warnings := scored.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	var confidence float64
	for _, c := range candidates {
		if c.Confidence > confidence {
			confidence = c.Confidence
		}
	}

	return &AnalysisResult{
		Timestamp:          at,
		SymptomsAnalyzed:   echo,
		PossibleConditions: candidates,
		UrgencyLevel:       level,
		Recommendations:    recommendations,
		Warnings:           warnings,
		ConfidenceScore:    confidence,
	}
}

// overallUrgency: any urgency indicator means emergency; otherwise the most
// severe candidate wins, defaulting to non_urgent.
func overallUrgency(scored Scored) domain.Urgency {
	if len(scored.Warnings) > 0 {
		return domain.Emergency
	}
	level := domain.NonUrgent
	for _, c := range scored.Candidates {
		if c.Urgency.Rank() > level.Rank() {
			level = c.Urgency
		}
	}
	return level
}
