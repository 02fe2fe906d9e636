package knowledge

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Skufu/medadvisor/internal/domain"
)

//go:embed knowledge.yaml
var builtinDocument []byte

type document struct {
	Symptoms []struct {
		Name                 string   `yaml:"name"`
		SeverityLevels       []string `yaml:"severity_levels"`
		AssociatedConditions []string `yaml:"associated_conditions"`
		UrgencyIndicators    []string `yaml:"urgency_indicators"`
	} `yaml:"symptoms"`
	Conditions []struct {
		Name            string   `yaml:"name"`
		Description     string   `yaml:"description"`
		Symptoms        []string `yaml:"symptoms"`
		Urgency         string   `yaml:"urgency"`
		Recommendations []string `yaml:"recommendations"`
	} `yaml:"conditions"`
	Medications []struct {
		Name        string   `yaml:"name"`
		GenericName string   `yaml:"generic_name"`
		Uses        []string `yaml:"uses"`
		Dosage      string   `yaml:"dosage"`
		SideEffects []string `yaml:"side_effects"`
		Precautions []string `yaml:"precautions"`
	} `yaml:"medications"`
}

var loadBuiltin = sync.OnceValues(func() (*Store, error) {
	return Parse(builtinDocument)
})

// Builtin returns the store built from the embedded knowledge document.
func Builtin() (*Store, error) {
	return loadBuiltin()
}

// LoadFile builds a store from a YAML document on disk. The file uses the
// same schema as the embedded document.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML knowledge document. Unknown fields are rejected.
func Parse(data []byte) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidKnowledge)
		}
		return nil, fmt.Errorf("decode knowledge document: %w", err)
	}

	var t Tables
	for _, s := range doc.Symptoms {
		t.Symptoms = append(t.Symptoms, SymptomEntry{
			Name:                 s.Name,
			SeverityLevels:       s.SeverityLevels,
			AssociatedConditions: s.AssociatedConditions,
			UrgencyIndicators:    s.UrgencyIndicators,
		})
	}
	for _, c := range doc.Conditions {
		urgency, err := domain.ParseUrgency(c.Urgency)
		if err != nil {
			return nil, fmt.Errorf("%w: condition %q: %v", ErrInvalidKnowledge, c.Name, err)
		}
		t.Conditions = append(t.Conditions, ConditionEntry{
			Name:            c.Name,
			Description:     c.Description,
			Symptoms:        c.Symptoms,
			Urgency:         urgency,
			Recommendations: c.Recommendations,
		})
	}
	for _, m := range doc.Medications {
		t.Medications = append(t.Medications, MedicationEntry{
			Name:        m.Name,
			GenericName: m.GenericName,
			Uses:        m.Uses,
			Dosage:      m.Dosage,
			SideEffects: m.SideEffects,
			Precautions: m.Precautions,
		})
	}

	return New(t)
}
