package model

import (
	"reflect"
	"testing"
)

func TestParseSlot(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Slot
	}{
		"canonical":   {input: "Passing", want: SlotPassing},
		"lower case":  {input: "rushing", want: SlotRushing},
		"upper case":  {input: "RECEIVING", want: SlotReceiving},
		"with spaces": {input: " Defense ", want: SlotDefense},
		"kicking":     {input: "kicking", want: SlotKicking},
		"unknown":     {input: "Quarterback", want: ""},
		"empty":       {input: "", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseSlot(tc.input); got != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeLineup(t *testing.T) {
	tests := map[string]struct {
		input map[string]string
		want  Lineup
	}{
		"full lineup": {
			input: map[string]string{
				"Passing":   "p1",
				"Rushing":   "p2",
				"Receiving": "p3",
				"Defense":   "p4",
				"Kicking":   "p5",
			},
			want: Lineup{
				SlotPassing:   "p1",
				SlotRushing:   "p2",
				SlotReceiving: "p3",
				SlotDefense:   "p4",
				SlotKicking:   "p5",
			},
		},
		"mixed case keys": {
			input: map[string]string{"passing": "p1", "KICKING": "p5"},
			want:  Lineup{SlotPassing: "p1", SlotKicking: "p5"},
		},
		"blank values dropped": {
			input: map[string]string{"Passing": "", "Rushing": "   ", "Defense": "p4"},
			want:  Lineup{SlotDefense: "p4"},
		},
		"unknown keys dropped": {
			input: map[string]string{"Quarterback": "p1", "Rushing": "p2"},
			want:  Lineup{SlotRushing: "p2"},
		},
		"values trimmed": {
			input: map[string]string{"Passing": " p1 "},
			want:  Lineup{SlotPassing: "p1"},
		},
		"empty input": {
			input: map[string]string{},
			want:  Lineup{},
		},
		"nil input": {
			input: nil,
			want:  Lineup{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := NormalizeLineup(tc.input)
			if !reflect.DeepEqual(tc.want, got) {
				t.Errorf("wanted %v, got %v", tc.want, got)
			}
		})
	}
}
