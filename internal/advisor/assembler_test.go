package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Skufu/medadvisor/internal/domain"
)

func TestAssembleUrgencyLevels(t *testing.T) {
	tests := []struct {
		name       string
		scored     Scored
		wantLevel  domain.Urgency
		wantLeadIn []string
	}{
		{
			name:       "no candidates",
			scored:     Scored{},
			wantLevel:  domain.NonUrgent,
			wantLeadIn: []string{"✅ Monitor symptoms and consult doctor if they persist"},
		},
		{
			name: "urgent candidate",
			scored: Scored{Candidates: []CandidateCondition{
				{Name: "migraine", Urgency: domain.NonUrgent, Confidence: 0.3},
				{Name: "asthma", Urgency: domain.Urgent, Confidence: 0.3},
			}},
			wantLevel:  domain.Urgent,
			wantLeadIn: []string{"⚠️ Consult a healthcare provider within 24 hours"},
		},
		{
			name: "emergency candidate beats urgent",
			scored: Scored{Candidates: []CandidateCondition{
				{Name: "asthma", Urgency: domain.Urgent, Confidence: 0.3},
				{Name: "heart_attack", Urgency: domain.Emergency, Confidence: 0.6},
			}},
			wantLevel:  domain.Emergency,
			wantLeadIn: []string{"🚨 SEEK IMMEDIATE MEDICAL ATTENTION", "Call emergency services immediately"},
		},
		{
			name: "warning overrides non urgent candidates",
			scored: Scored{
				Candidates: []CandidateCondition{{Name: "migraine", Urgency: domain.NonUrgent, Confidence: 0.3}},
				Warnings:   []string{"headache: sudden severe"},
			},
			wantLevel:  domain.Emergency,
			wantLeadIn: []string{"🚨 SEEK IMMEDIATE MEDICAL ATTENTION", "Call emergency services immediately"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Assemble(tt.scored, nil, time.Now())

			assert.Equal(t, tt.wantLevel, result.UrgencyLevel)
			want := append(append([]string{}, tt.wantLeadIn...), generalAdvice...)
			assert.Equal(t, want, result.Recommendations)
		})
	}
}

func TestAssembleConfidenceIsMax(t *testing.T) {
	result := Assemble(Scored{Candidates: []CandidateCondition{
		{Name: "a", Confidence: 0.3, Urgency: domain.NonUrgent},
		{Name: "b", Confidence: 0.9, Urgency: domain.NonUrgent},
		{Name: "c", Confidence: 0.6, Urgency: domain.NonUrgent},
	}}, []string{"x"}, time.Now())
	assert.Equal(t, 0.9, result.ConfidenceScore)

	empty := Assemble(Scored{}, []string{"x"}, time.Now())
	assert.Equal(t, 0.0, empty.ConfidenceScore)
	assert.NotNil(t, empty.PossibleConditions)
	assert.NotNil(t, empty.Warnings)
}

func TestAssembleEchoesInput(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	input := []string{"Chest Pain", " fever"}

	result := Assemble(Scored{}, input, at)
	input[0] = "mutated"

	assert.Equal(t, at, result.Timestamp)
	assert.Equal(t, []string{"Chest Pain", " fever"}, result.SymptomsAnalyzed)
}
