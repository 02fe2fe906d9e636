package lookup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/medadvisor/internal/knowledge"
)

func TestMedication(t *testing.T) {
	store, err := knowledge.Builtin()
	require.NoError(t, err)

	info, failure := Medication(store, "aspirin")
	require.Nil(t, failure)
	assert.Equal(t, "aspirin", info.Name)
	assert.Equal(t, "Acetylsalicylic acid", info.GenericName)
	assert.Equal(t, MedicationDisclaimer, info.Disclaimer)

	info, failure = Medication(store, "Tylenol paracetamol")
	require.Nil(t, failure)
	assert.Equal(t, "paracetamol", info.Name)

	info, failure = Medication(store, "Acetaminophen")
	require.Nil(t, failure)
	assert.Equal(t, "paracetamol", info.Name)

	info, failure = Medication(store, "Warfarin")
	assert.Nil(t, info)
	require.NotNil(t, failure)
	assert.Equal(t, "Medication not found", failure.Error)
	assert.Equal(t, "No information available for Warfarin", failure.Message)
}

func TestMedicationJSON(t *testing.T) {
	store, err := knowledge.Builtin()
	require.NoError(t, err)

	info, _ := Medication(store, "ibuprofen")
	data, err := json.Marshal(info)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	for _, key := range []string{"medication", "generic_name", "uses", "dosage", "side_effects", "precautions", "disclaimer"} {
		assert.Contains(t, body, key)
	}
	assert.NotContains(t, body, "error")
}

func TestFirstAid(t *testing.T) {
	advice, failure := FirstAid("my kid is choking")
	require.Nil(t, failure)
	assert.Equal(t, "choking", advice.Situation)
	assert.Equal(t, "Perform Heimlich maneuver if person is conscious", advice.Steps[0])
	assert.Len(t, advice.DoNot, 3)
	assert.Equal(t, "Call emergency services if condition worsens", advice.EmergencyCall)

	advice, failure = FirstAid("Severe BLEEDING from the arm")
	require.Nil(t, failure)
	assert.Equal(t, "bleeding", advice.Situation)

	advice, failure = FirstAid("bleeding burns")
	require.Nil(t, failure)
	assert.Equal(t, "bleeding", advice.Situation, "first key in guide order wins")

	advice, failure = FirstAid("sprained ankle")
	assert.Nil(t, advice)
	require.NotNil(t, failure)
	assert.Equal(t, "Situation not found", failure.Error)
	assert.Equal(t, "No first aid information available for sprained ankle", failure.Message)
}

func TestFirstAidReturnsCopies(t *testing.T) {
	advice, _ := FirstAid("burns")
	advice.Steps[0] = "changed"

	again, _ := FirstAid("burns")
	assert.Equal(t, "Cool the burn with running water for 10-20 minutes", again.Steps[0])
}

func TestSituations(t *testing.T) {
	assert.Equal(t, []string{"bleeding", "burns", "choking"}, Situations())
}

func TestChatReply(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I have a severe headache", emergencyReply},
		{"This is URGENT", emergencyReply},
		{"what does this symptom mean", symptomReply},
		{"my back pain is back", symptomReply},
		{"can I take this pill with food", medicationReply},
		{"which medication helps", medicationReply},
		{"hello there", defaultReply},
		{"", defaultReply},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ChatReply(tt.message))
		})
	}
}

func TestNewIndex(t *testing.T) {
	store, err := knowledge.Builtin()
	require.NoError(t, err)

	idx := NewIndex(store)
	assert.Equal(t, store.Symptoms(), idx.Symptoms)
	assert.Equal(t, []string{"migraine", "heart_attack", "asthma", "appendicitis"}, idx.Conditions)
	assert.Equal(t, []string{"paracetamol", "ibuprofen", "aspirin"}, idx.Medications)
	assert.Equal(t, []string{"bleeding", "burns", "choking"}, idx.Situations)
}
