package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floria-be/pkg/store"
)

func TestMissingQuestionsPlantAlwaysFirst(t *testing.T) {
	for _, intent := range []Intent{IntentDiagnostic, IntentEntretien, IntentIdentification} {
		questions := MissingQuestions(intent, store.SlotMap{})
		assert.NotEmpty(t, questions, "intent %s", intent)
		assert.Equal(t, QuestionPlant, questions[0], "intent %s", intent)
	}
}

func TestMissingQuestionsCap(t *testing.T) {
	for _, intent := range []Intent{IntentDiagnostic, IntentEntretien, IntentIdentification} {
		questions := MissingQuestions(intent, store.SlotMap{})
		assert.LessOrEqual(t, len(questions), 3, "intent %s", intent)
	}
}

func TestMissingQuestionsDiagnostic(t *testing.T) {
	questions := MissingQuestions(IntentDiagnostic, store.SlotMap{})
	assert.Equal(t, []string{QuestionPlant, QuestionExposureDiag, QuestionWateringDrainage}, questions)

	// Known slots suppress their questions.
	slots := store.SlotMap{store.SlotPlant: "ficus", store.SlotExposition: "ombre"}
	questions = MissingQuestions(IntentDiagnostic, slots)
	assert.Equal(t, []string{QuestionWateringDrainage}, questions)
}

func TestMissingQuestionsEntretien(t *testing.T) {
	slots := store.SlotMap{store.SlotPlant: "ficus"}
	questions := MissingQuestions(IntentEntretien, slots)
	assert.Equal(t, []string{QuestionExposureCare, QuestionWateringFrequency}, questions)
}

func TestMissingQuestionsIdentification(t *testing.T) {
	// Photo request only while the plant is unknown.
	questions := MissingQuestions(IntentIdentification, store.SlotMap{})
	assert.Equal(t, []string{QuestionPlant, QuestionDescribeOrPhoto}, questions)

	questions = MissingQuestions(IntentIdentification, store.SlotMap{store.SlotPlant: "ficus"})
	assert.Empty(t, questions)
}

func TestMissingQuestionsAllKnown(t *testing.T) {
	slots := store.SlotMap{
		store.SlotPlant:      "monstera-deliciosa",
		store.SlotExposition: "indirecte",
		store.SlotArrosage:   "1x/semaine",
	}
	assert.Empty(t, MissingQuestions(IntentDiagnostic, slots))
	assert.Empty(t, MissingQuestions(IntentEntretien, slots))
}
