package nlu

import (
	"regexp"
	"strings"
)

// plantEntry maps a vernacular name (normalized form) to its canonical
// identifier. Canonical ids are URL-safe Latin names, hyphenated.
type plantEntry struct {
	vernacular string
	canonical  string
}

// plantDictionary is bucketed by the first letter of the vernacular name so
// a token lookup only scans one bucket. Entries within a bucket are in
// alphabetical order.
var plantDictionary = map[byte][]plantEntry{
	'a': {
		{"aloe", "aloe vera"},
		{"anthurium", "anthurium"},
		{"areca", "dypsis lutescens"},
	},
	'b': {
		{"bambou", "bambusa"},
		{"basilic", "ocimum basilicum"},
		{"begonia", "begonia"},
	},
	'c': {
		{"cactus", "cactus"},
		{"calathea", "calathea"},
		{"chlorophytum", "chlorophytum comosum"},
		{"citronnier", "citrus limon"},
		{"crassula", "crassula ovata"},
		{"cyclamen", "cyclamen"},
	},
	'd': {
		{"dracaena", "dracaena"},
	},
	'e': {
		{"echeveria", "echeveria"},
	},
	'f': {
		{"ficus", "ficus"},
		{"fougere", "nephrolepis"},
	},
	'g': {
		{"geranium", "pelargonium"},
	},
	'h': {
		{"hibiscus", "hibiscus"},
		{"hortensia", "hydrangea"},
	},
	'j': {
		{"jasmin", "jasminum"},
	},
	'k': {
		{"kentia", "howea forsteriana"},
	},
	'l': {
		{"laurier", "laurus nobilis"},
		{"lavande", "lavandula"},
		{"lierre", "hedera helix"},
	},
	'm': {
		{"menthe", "mentha"},
		{"monstera", "monstera deliciosa"},
		{"muguet", "convallaria majalis"},
	},
	'o': {
		{"olivier", "olea europaea"},
		{"orchidee", "phalaenopsis"},
	},
	'p': {
		{"philodendron", "philodendron"},
		{"pothos", "epipremnum aureum"},
	},
	'r': {
		{"romarin", "rosmarinus officinalis"},
		{"rose", "rosa"},
		{"rosier", "rosa"},
	},
	's': {
		{"sansevieria", "sansevieria trifasciata"},
		{"sauge", "salvia"},
		{"schefflera", "schefflera"},
		{"succulente", "succulente"},
	},
	't': {
		{"thym", "thymus"},
		{"tomate", "solanum lycopersicum"},
		{"tournesol", "helianthus annuus"},
		{"tulipe", "tulipa"},
	},
	'v': {
		{"violette", "viola"},
	},
	'y': {
		{"yucca", "yucca"},
	},
	'z': {
		{"zamioculcas", "zamioculcas zamiifolia"},
	},
}

// possessivePattern catches "mon/ma/mes X" constructions on normalized text.
var possessivePattern = regexp.MustCompile(`\b(mon|ma|mes)\s+([a-z][a-z-]{2,})\b`)

// possessiveStoplist rejects generic nouns the possessive fallback would
// otherwise mistake for a plant name.
var possessiveStoplist = map[string]bool{
	"plante":   true,
	"plantes":  true,
	"feuille":  true,
	"feuilles": true,
	"pot":      true,
	"terreau":  true,
	"arrosage": true,
}

// ExtractPlant finds a plant name in a message. Dictionary lookup always
// takes priority: each token of the normalized message is checked against
// its alphabetical bucket, and a hit returns the canonical identifier with
// spaces hyphenated (directly usable as a URL slug). When the dictionary
// misses, a possessive-construction fallback returns the raw candidate
// token. Empty string means no plant found.
func ExtractPlant(message string) string {
	msg := Normalize(message)
	if msg == "" {
		return ""
	}

	for _, token := range strings.Fields(msg) {
		bucket, ok := plantDictionary[token[0]]
		if !ok {
			continue
		}
		for _, entry := range bucket {
			if entry.vernacular == token {
				return strings.ReplaceAll(entry.canonical, " ", "-")
			}
		}
	}

	if m := possessivePattern.FindStringSubmatch(msg); m != nil {
		if candidate := m[2]; !possessiveStoplist[candidate] {
			return candidate
		}
	}

	return ""
}
