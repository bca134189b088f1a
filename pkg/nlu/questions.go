package nlu

import "floria-be/pkg/store"

// Clarifying question texts, reused by the planner and the fallback reply.
const (
	QuestionPlant             = "Quelle est la plante (nom) ? Si tu ne sais pas, une photo aiderait."
	QuestionExposureDiag      = "Elle est en lumière directe, indirecte ou plutôt à l'ombre ?"
	QuestionWateringDrainage  = "À quelle fréquence arroses-tu (ex: 1x/semaine) et le pot a-t-il un trou de drainage ?"
	QuestionExposureCare      = "Elle est en lumière directe ou indirecte ?"
	QuestionWateringFrequency = "Tu l'arroses à quelle fréquence ?"
	QuestionDescribeOrPhoto   = "Tu peux décrire les feuilles (forme, taille) et la tige, ou envoyer une photo ?"
)

const maxQuestions = 3

// MissingQuestions plans the clarifying questions for the current intent and
// known slots. Rules run top to bottom, each appending only when its slot is
// unset; the plant name is always checked first regardless of intent, and
// the list is capped at three entries. The result is advisory text appended
// to the reply, it never blocks the main answer.
func MissingQuestions(intent Intent, slots store.SlotMap) []string {
	var questions []string

	if !slots.Has(store.SlotPlant) {
		questions = append(questions, QuestionPlant)
	}

	switch intent {
	case IntentDiagnostic:
		if !slots.Has(store.SlotExposition) {
			questions = append(questions, QuestionExposureDiag)
		}
		if !slots.Has(store.SlotArrosage) {
			questions = append(questions, QuestionWateringDrainage)
		}
	case IntentEntretien:
		if !slots.Has(store.SlotExposition) {
			questions = append(questions, QuestionExposureCare)
		}
		if !slots.Has(store.SlotArrosage) {
			questions = append(questions, QuestionWateringFrequency)
		}
	case IntentIdentification:
		if !slots.Has(store.SlotPlant) {
			questions = append(questions, QuestionDescribeOrPhoto)
		}
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}
