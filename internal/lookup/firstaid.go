package lookup

import (
	"strings"

	"github.com/Skufu/medadvisor/internal/domain"
)

const emergencyCallReminder = "Call emergency services if condition worsens"

type FirstAidAdvice struct {
	Situation     string   `json:"situation"`
	Steps         []string `json:"steps"`
	DoNot         []string `json:"do_not"`
	EmergencyCall string   `json:"emergency_call"`
}

// firstAidGuide is checked in order; the first key contained in the query wins.
var firstAidGuide = []struct {
	key   string
	steps []string
	doNot []string
}{
	{
		key: "bleeding",
		steps: []string{
			"Apply direct pressure with clean cloth",
			"Elevate the injured area if possible",
			"Keep pressure for at least 10-15 minutes",
			"Call emergency if bleeding is severe or doesn't stop",
		},
		doNot: []string{
			"Remove embedded objects",
			"Apply tourniquet unless trained",
			"Clean deep wounds with hydrogen peroxide",
		},
	},
	{
		key: "burns",
		steps: []string{
			"Cool the burn with running water for 10-20 minutes",
			"Remove jewelry or tight items from burned area",
			"Cover with sterile bandage",
			"Do not pop blisters",
		},
		doNot: []string{
			"Apply ice directly to burn",
			"Use butter or oil",
			"Break blisters",
		},
	},
	{
		key: "choking",
		steps: []string{
			"Perform Heimlich maneuver if person is conscious",
			"Give 5 back blows between shoulder blades",
			"Give 5 abdominal thrusts",
			"Call emergency if person becomes unconscious",
		},
		doNot: []string{
			"Perform Heimlich on infants",
			"Hit on the back if person is unconscious",
			"Delay calling emergency",
		},
	},
}

// Situations lists the supported first-aid keys in match order.
func Situations() []string {
	keys := make([]string, len(firstAidGuide))
	for i, g := range firstAidGuide {
		keys[i] = g.key
	}
	return keys
}

// FirstAid returns advice for the first known situation mentioned in the query.
func FirstAid(situation string) (*FirstAidAdvice, *domain.ErrorResult) {
	q := strings.ToLower(situation)
	for _, g := range firstAidGuide {
		if strings.Contains(q, g.key) {
			return &FirstAidAdvice{
				Situation:     g.key,
				Steps:         append([]string(nil), g.steps...),
				DoNot:         append([]string(nil), g.doNot...),
				EmergencyCall: emergencyCallReminder,
			}, nil
		}
	}
	return nil, domain.NewSituationNotFound(situation)
}
