package nlu

import "strings"

// Intent is the coarse purpose of a user message.
type Intent string

const (
	IntentDiagnostic     Intent = "diagnostic"
	IntentIdentification Intent = "identification"
	IntentEntretien      Intent = "entretien"
)

// Keyword lists are stored in normalized form (lowercase, accents stripped)
// and matched as substrings of the normalized message.
var symptomKeywords = []string{
	"jaunit", "jaunissent", "jauni", "jaune",
	"tache", "taches",
	"molle", "molles",
	"pourrit", "pourri", "pourriture",
	"brune", "brunes",
	"tombe", "chute",
	"sec", "seche",
	"racines",
	"moisi", "champignon",
	"parasite", "insecte",
}

var identificationKeywords = []string{
	"c est quoi", "quelle plante", "identifier", "identification",
}

var greetingWords = []string{
	"salut", "bonjour", "bonsoir", "hello", "coucou", "yo", "hey",
}

var plantTopicKeywords = []string{
	"plante", "feuille", "feuilles", "arros", "rempot", "terreau", "substrat",
	"lumiere", "exposition", "tache", "taches", "jauni", "jaun",
	"brun", "molle", "pourri", "pourrit", "racine", "parasite", "cochenille",
	"puceron", "thrips", "champignon", "moisi",
}

type intentRule struct {
	label    Intent
	keywords []string
}

// intentRules is evaluated top to bottom; the first matching rule wins, so
// diagnostic takes priority over identification.
var intentRules = []intentRule{
	{IntentDiagnostic, symptomKeywords},
	{IntentIdentification, identificationKeywords},
}

// ClassifyIntent returns the first rule whose keyword appears in the
// normalized message, defaulting to general care.
func ClassifyIntent(message string) Intent {
	msg := Normalize(message)
	for _, rule := range intentRules {
		if containsAny(msg, rule.keywords) {
			return rule.label
		}
	}
	return IntentEntretien
}

// IsGreeting reports whether the normalized message is exactly one of, or
// begins with, a greeting word.
func IsGreeting(message string) bool {
	msg := Normalize(message)
	if msg == "" {
		return false
	}
	for _, g := range greetingWords {
		if msg == g || strings.HasPrefix(msg, g) {
			return true
		}
	}
	return false
}

// LooksLikePlantTopic guards retrieval so greetings and off-topic chatter do
// not trigger it.
func LooksLikePlantTopic(message string) bool {
	return containsAny(Normalize(message), plantTopicKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
