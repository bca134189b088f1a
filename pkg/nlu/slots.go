package nlu

import (
	"regexp"
	"strings"

	"floria-be/pkg/store"
)

// Watering frequency shapes. The first pattern is checked before the
// second and the first match wins. They run on the lowercased raw message
// because normalization would eat the "/" separator.
var (
	wateringTimesPer = regexp.MustCompile(`\b(\d+)\s*(x|fois)\s*(/|par)\s*(semaine|mois|jour|jours)\b`)
	wateringEveryN   = regexp.MustCompile(`\btous\s+les\s+(\d+)\s+(jour|jours|semaine|semaines)\b`)
)

// symptomCandidates is checked in order; each phrase at most once, so the
// extracted list is ordered and duplicate-free by construction.
var symptomCandidates = []string{
	"feuilles jaunes",
	"feuilles brunes",
	"taches",
	"feuilles molles",
	"chute de feuilles",
	"pourriture",
	"moisi",
	"parasites",
}

// ExtractSlots pulls structured facts from one message. Each fact is
// extracted independently; a key only appears in the result when the
// message actually carries it.
func ExtractSlots(message string) store.SlotMap {
	msg := Normalize(message)
	raw := strings.ToLower(message)
	slots := store.SlotMap{}

	switch {
	case strings.Contains(msg, "lumiere directe"):
		slots[store.SlotExposition] = "directe"
	case strings.Contains(msg, "lumiere indirecte"):
		slots[store.SlotExposition] = "indirecte"
	case strings.Contains(msg, "ombre"):
		slots[store.SlotExposition] = "ombre"
	}

	if m := wateringTimesPer.FindString(raw); m != "" {
		slots[store.SlotArrosage] = m
	} else if m := wateringEveryN.FindString(raw); m != "" {
		slots[store.SlotArrosage] = m
	}

	if strings.Contains(msg, "trop arros") {
		slots[store.SlotArrosageNote] = "trop"
	}
	if strings.Contains(msg, "pas assez arros") {
		slots[store.SlotArrosageNote] = "pas assez"
	}

	var symptoms []string
	for _, s := range symptomCandidates {
		if strings.Contains(msg, s) {
			symptoms = append(symptoms, s)
		}
	}
	if len(symptoms) > 0 {
		slots[store.SlotSymptomes] = symptoms
	}

	return slots
}
