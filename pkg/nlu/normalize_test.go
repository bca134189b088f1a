package nlu

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   \t ", want: ""},
		{name: "lowercases", input: "Monstera Deliciosa", want: "monstera deliciosa"},
		{name: "strips accents", input: "Orchidée à l'ombre", want: "orchidee a l ombre"},
		{name: "punctuation to space", input: "c'est quoi, cette plante ?", want: "c est quoi cette plante"},
		{name: "keeps hyphens", input: "aloe-vera", want: "aloe-vera"},
		{name: "collapses whitespace", input: "ficus   \t  benjamina", want: "ficus benjamina"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Bonjour", "Ma monstera a des feuilles jaunes !",
		"Orchidée phalaenopsis", "aloe-vera", "2x/semaine", "été très sec",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Monstera Deliciosa", "monstera-deliciosa"},
		{"orchidée", "orchidee"},
		{"  ficus  ", "ficus"},
		{"rose - trémière", "rose-tremiere"},
		{"", ""},
		{"???", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
