// Package lookup answers the flat reference queries: medication facts,
// first-aid steps and canned chat replies.
package lookup

import (
	"github.com/Skufu/medadvisor/internal/domain"
	"github.com/Skufu/medadvisor/internal/knowledge"
)

const MedicationDisclaimer = "This information is for educational purposes only. Always consult a healthcare provider."

// MedicationFinder matches a free-text query against known medications.
type MedicationFinder interface {
	Medication(query string) (knowledge.MedicationEntry, bool)
}

type MedicationInfo struct {
	knowledge.MedicationEntry
	Disclaimer string `json:"disclaimer"`
}

// Medication returns either the matched entry or a not-found error result.
func Medication(kb MedicationFinder, query string) (*MedicationInfo, *domain.ErrorResult) {
	entry, ok := kb.Medication(query)
	if !ok {
		return nil, domain.NewMedicationNotFound(query)
	}
	return &MedicationInfo{MedicationEntry: entry, Disclaimer: MedicationDisclaimer}, nil
}
