package lookup

// Lister exposes the ordered key listings of a knowledge store.
type Lister interface {
	Symptoms() []string
	Conditions() []string
	Medications() []string
}

// Index names everything the advisor can recognise.
type Index struct {
	Symptoms    []string `json:"symptoms"`
	Conditions  []string `json:"conditions"`
	Medications []string `json:"medications"`
	Situations  []string `json:"first_aid_situations"`
}

func NewIndex(kb Lister) Index {
	return Index{
		Symptoms:    kb.Symptoms(),
		Conditions:  kb.Conditions(),
		Medications: kb.Medications(),
		Situations:  Situations(),
	}
}
