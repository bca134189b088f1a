package nlu

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"yellowing leaves", "Mes feuilles jaunissent", IntentDiagnostic},
		{"spots", "Il y a des taches sur ma plante", IntentDiagnostic},
		{"rot", "Les racines pourrissent je crois, c'est pourri", IntentDiagnostic},
		{"what is this", "C'est quoi cette plante ?", IntentIdentification},
		{"identify", "Peux-tu identifier ma plante ?", IntentIdentification},
		{"general care", "Comment entretenir un ficus ?", IntentEntretien},
		{"empty", "", IntentEntretien},
		// Diagnostic wins over identification when both match.
		{"priority", "C'est quoi ces taches ?", IntentDiagnostic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.message); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Bonjour", true},
		{"salut", true},
		{"Bonjour tout le monde", true},
		{"Hello!", true},
		{"", false},
		{"Ma monstera va mal", false},
		{"Au revoir", false},
	}

	for _, tt := range tests {
		if got := IsGreeting(tt.message); got != tt.want {
			t.Errorf("IsGreeting(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestLooksLikePlantTopic(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Ma plante perd ses feuilles", true},
		{"Quel terreau pour le rempotage ?", true},
		{"J'ai des cochenilles", true},
		{"Bonjour", false},
		{"Quelle heure est-il ?", false},
	}

	for _, tt := range tests {
		if got := LooksLikePlantTopic(tt.message); got != tt.want {
			t.Errorf("LooksLikePlantTopic(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
