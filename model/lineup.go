package model

import "strings"

// Slot is one of the five fixed lineup positions.
type Slot string

const (
	SlotPassing   Slot = "Passing"
	SlotRushing   Slot = "Rushing"
	SlotReceiving Slot = "Receiving"
	SlotDefense   Slot = "Defense"
	SlotKicking   Slot = "Kicking"
)

// Slots lists every slot in canonical order. The order matters: default
// lineup construction and leading-scorer tie-breaks both iterate it.
var Slots = []Slot{SlotPassing, SlotRushing, SlotReceiving, SlotDefense, SlotKicking}

// ParseSlot maps a raw string onto a canonical slot, case-insensitively.
// Unknown values map to the empty Slot.
func ParseSlot(raw string) Slot {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "passing":
		return SlotPassing
	case "rushing":
		return SlotRushing
	case "receiving":
		return SlotReceiving
	case "defense":
		return SlotDefense
	case "kicking":
		return SlotKicking
	default:
		return ""
	}
}

// Lineup maps a slot to the id of the starting player. Empty slots are
// omitted, never stored as blanks.
type Lineup map[Slot]string

// NormalizeLineup keeps only canonical slot keys whose value is a non-blank
// player id. Unknown keys and blank or whitespace values are dropped.
func NormalizeLineup(raw map[string]string) Lineup {
	lineup := make(Lineup)
	for key, value := range raw {
		slot := ParseSlot(key)
		if slot == "" {
			continue
		}
		id := strings.TrimSpace(value)
		if id == "" {
			continue
		}
		lineup[slot] = id
	}
	return lineup
}
