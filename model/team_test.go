package model

import (
	"reflect"
	"testing"
)

func TestParseResult(t *testing.T) {
	tests := map[string]struct {
		input  string
		want   Result
		wantOK bool
	}{
		"win":           {input: "W", want: ResultWin, wantOK: true},
		"loss":          {input: "L", want: ResultLoss, wantOK: true},
		"lower case":    {input: "w", want: ResultWin, wantOK: true},
		"with spaces":   {input: " l ", want: ResultLoss, wantOK: true},
		"empty":         {input: "", wantOK: false},
		"full word":     {input: "Win", wantOK: false},
		"other letters": {input: "T", wantOK: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseResult(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("wanted ok=%v, got ok=%v", tc.wantOK, ok)
			}
			if ok && got != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTeamCurrentLineup(t *testing.T) {
	tests := map[string]struct {
		lineups map[string]Lineup
		want    Lineup
	}{
		"no lineups": {
			lineups: nil,
			want:    nil,
		},
		"single week": {
			lineups: map[string]Lineup{"week3": {SlotPassing: "p1"}},
			want:    Lineup{SlotPassing: "p1"},
		},
		"lowest week wins": {
			lineups: map[string]Lineup{
				"week5": {SlotPassing: "late"},
				"week2": {SlotPassing: "early"},
				"week9": {SlotPassing: "later"},
			},
			want: Lineup{SlotPassing: "early"},
		},
		"empty weeks skipped": {
			lineups: map[string]Lineup{
				"week1": {},
				"week4": {SlotKicking: "p5"},
			},
			want: Lineup{SlotKicking: "p5"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			team := Team{ID: "t1", Name: "Team One", Lineups: tc.lineups}
			got := team.CurrentLineup()
			if !reflect.DeepEqual(tc.want, got) {
				t.Errorf("wanted %v, got %v", tc.want, got)
			}
		})
	}
}
