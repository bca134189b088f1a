package nlu

import "testing"

func TestExtractPlantDictionary(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"monstera", "Ma monstera a des feuilles jaunes", "monstera-deliciosa"},
		{"accented vernacular", "Mon orchidée ne fleurit plus", "phalaenopsis"},
		{"single word canonical", "J'ai un ficus depuis deux ans", "ficus"},
		{"pothos", "Le pothos pousse vite", "epipremnum-aureum"},
		{"capitalized", "MONSTERA", "monstera-deliciosa"},
		{"no plant", "Il fait beau aujourd'hui", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlant(tt.message); got != tt.want {
				t.Errorf("ExtractPlant(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractPlantPossessiveFallback(t *testing.T) {
	// Unknown plant name caught by the "mon/ma/mes" pattern; raw token comes
	// back as-is.
	if got := ExtractPlant("ma capucine ne pousse plus"); got != "capucine" {
		t.Errorf("possessive fallback = %q, want %q", got, "capucine")
	}

	// Generic nouns are stoplisted.
	for _, msg := range []string{"ma plante est triste", "mes feuilles tombent", "mon pot est cassé"} {
		if got := ExtractPlant(msg); got != "" {
			t.Errorf("ExtractPlant(%q) = %q, want stoplisted empty", msg, got)
		}
	}
}

func TestExtractPlantDictionaryBeatsPossessive(t *testing.T) {
	// Dictionary hit anywhere in the message outranks the possessive pattern.
	if got := ExtractPlant("mon bellissima est en fait un monstera"); got != "monstera-deliciosa" {
		t.Errorf("dictionary priority = %q, want %q", got, "monstera-deliciosa")
	}
}

func TestPlantDictionaryBuckets(t *testing.T) {
	// Bucket key must match the first letter of each vernacular entry.
	for letter, bucket := range plantDictionary {
		for _, e := range bucket {
			if e.vernacular[0] != letter {
				t.Errorf("entry %q filed under bucket %q", e.vernacular, string(letter))
			}
			if e.vernacular != Normalize(e.vernacular) {
				t.Errorf("entry %q is not in normalized form", e.vernacular)
			}
		}
	}
}
