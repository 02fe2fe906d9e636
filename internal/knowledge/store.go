// Package knowledge holds the static symptom, condition and medication tables
// the advisor consults. A Store is built once and never mutated afterwards, so
// it can be shared by any number of goroutines without locking.
package knowledge

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Skufu/medadvisor/internal/domain"
)

// ErrInvalidKnowledge is wrapped by every table validation failure.
var ErrInvalidKnowledge = errors.New("invalid knowledge tables")

type SymptomEntry struct {
	Name                 string   `json:"name"`
	SeverityLevels       []string `json:"severity_levels"`
	AssociatedConditions []string `json:"associated_conditions"`
	UrgencyIndicators    []string `json:"urgency_indicators"`
}

type ConditionEntry struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Symptoms        []string       `json:"symptoms"`
	Urgency         domain.Urgency `json:"urgency"`
	Recommendations []string       `json:"recommendations"`
}

type MedicationEntry struct {
	Name        string   `json:"medication"`
	GenericName string   `json:"generic_name"`
	Uses        []string `json:"uses"`
	Dosage      string   `json:"dosage"`
	SideEffects []string `json:"side_effects"`
	Precautions []string `json:"precautions"`
}

// Tables is the raw, ordered input to New. Order is significant: medication
// matching returns the first hit in this order.
type Tables struct {
	Symptoms    []SymptomEntry
	Conditions  []ConditionEntry
	Medications []MedicationEntry
}

// Store is the read-only knowledge base.
type Store struct {
	symptoms    []SymptomEntry
	conditions  []ConditionEntry
	medications []MedicationEntry

	symptomIdx   map[string]int
	conditionIdx map[string]int
}

// New validates t and copies it into a Store.
func New(t Tables) (*Store, error) {
	s := &Store{
		symptoms:     make([]SymptomEntry, 0, len(t.Symptoms)),
		conditions:   make([]ConditionEntry, 0, len(t.Conditions)),
		medications:  make([]MedicationEntry, 0, len(t.Medications)),
		symptomIdx:   make(map[string]int, len(t.Symptoms)),
		conditionIdx: make(map[string]int, len(t.Conditions)),
	}

	for _, e := range t.Symptoms {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: symptom with empty name", ErrInvalidKnowledge)
		}
		if _, dup := s.symptomIdx[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate symptom %q", ErrInvalidKnowledge, e.Name)
		}
		s.symptomIdx[e.Name] = len(s.symptoms)
		s.symptoms = append(s.symptoms, cloneSymptom(e))
	}

	for _, e := range t.Conditions {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: condition with empty name", ErrInvalidKnowledge)
		}
		if _, dup := s.conditionIdx[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate condition %q", ErrInvalidKnowledge, e.Name)
		}
		if _, err := domain.ParseUrgency(string(e.Urgency)); err != nil {
			return nil, fmt.Errorf("%w: condition %q: %v", ErrInvalidKnowledge, e.Name, err)
		}
		s.conditionIdx[e.Name] = len(s.conditions)
		s.conditions = append(s.conditions, cloneCondition(e))
	}

	seen := make(map[string]bool, len(t.Medications))
	for _, e := range t.Medications {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: medication with empty name", ErrInvalidKnowledge)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: duplicate medication %q", ErrInvalidKnowledge, e.Name)
		}
		seen[e.Name] = true
		s.medications = append(s.medications, cloneMedication(e))
	}

	return s, nil
}

// Symptom looks up a normalized symptom key.
func (s *Store) Symptom(key string) (SymptomEntry, bool) {
	i, ok := s.symptomIdx[key]
	if !ok {
		return SymptomEntry{}, false
	}
	return cloneSymptom(s.symptoms[i]), true
}

// Condition looks up a condition by name.
func (s *Store) Condition(name string) (ConditionEntry, bool) {
	i, ok := s.conditionIdx[name]
	if !ok {
		return ConditionEntry{}, false
	}
	return cloneCondition(s.conditions[i]), true
}

// Medication returns the first entry, in table order, whose name or generic
// name occurs inside the lowercased query.
func (s *Store) Medication(query string) (MedicationEntry, bool) {
	q := strings.ToLower(query)
	for _, m := range s.medications {
		if strings.Contains(q, m.Name) {
			return cloneMedication(m), true
		}
		if generic := strings.ToLower(m.GenericName); generic != "" && strings.Contains(q, generic) {
			return cloneMedication(m), true
		}
	}
	return MedicationEntry{}, false
}

func (s *Store) Symptoms() []string {
	names := make([]string, len(s.symptoms))
	for i, e := range s.symptoms {
		names[i] = e.Name
	}
	return names
}

func (s *Store) Conditions() []string {
	names := make([]string, len(s.conditions))
	for i, e := range s.conditions {
		names[i] = e.Name
	}
	return names
}

func (s *Store) Medications() []string {
	names := make([]string, len(s.medications))
	for i, e := range s.medications {
		names[i] = e.Name
	}
	return names
}

func cloneSymptom(e SymptomEntry) SymptomEntry {
	e.SeverityLevels = cloneStrings(e.SeverityLevels)
	e.AssociatedConditions = cloneStrings(e.AssociatedConditions)
	e.UrgencyIndicators = cloneStrings(e.UrgencyIndicators)
	return e
}

func cloneCondition(e ConditionEntry) ConditionEntry {
	e.Symptoms = cloneStrings(e.Symptoms)
	e.Recommendations = cloneStrings(e.Recommendations)
	return e
}

func cloneMedication(e MedicationEntry) MedicationEntry {
	e.Uses = cloneStrings(e.Uses)
	e.SideEffects = cloneStrings(e.SideEffects)
	e.Precautions = cloneStrings(e.Precautions)
	return e
}

// cloneStrings never returns nil so that empty lists encode as [].
func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
