package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/JoshuaNogues/fantasy-basic/model"
	"github.com/JoshuaNogues/fantasy-basic/testutils"
)

func TestBuildWeekMatchups(t *testing.T) {
	tests := map[string]struct {
		pairings []model.Pairing
		want     model.WeekMatchups
		exErrMsg string
	}{
		"empty list": {
			pairings: nil,
			want:     model.WeekMatchups{},
		},
		"single pairing": {
			pairings: []model.Pairing{{TeamA: "a", TeamB: "b"}},
			want:     model.WeekMatchups{"a": "b", "b": "a"},
		},
		"two pairings": {
			pairings: []model.Pairing{
				{TeamA: "a", TeamB: "b"},
				{TeamA: "c", TeamB: "d"},
			},
			want: model.WeekMatchups{"a": "b", "b": "a", "c": "d", "d": "c"},
		},
		"ids trimmed": {
			pairings: []model.Pairing{{TeamA: " a ", TeamB: " b "}},
			want:     model.WeekMatchups{"a": "b", "b": "a"},
		},
		"blank team": {
			pairings: []model.Pairing{{TeamA: "a", TeamB: " "}},
			exErrMsg: "each pairing needs two team ids",
		},
		"self pairing": {
			pairings: []model.Pairing{{TeamA: "a", TeamB: "a"}},
			exErrMsg: "team a cannot be matched against itself",
		},
		"duplicate across pairings": {
			pairings: []model.Pairing{
				{TeamA: "a", TeamB: "b"},
				{TeamA: "a", TeamB: "c"},
			},
			exErrMsg: "team a appears in more than one pairing",
		},
		"duplicate as second member": {
			pairings: []model.Pairing{
				{TeamA: "a", TeamB: "b"},
				{TeamA: "c", TeamB: "b"},
			},
			exErrMsg: "team b appears in more than one pairing",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := buildWeekMatchups(tc.pairings)
			if tc.exErrMsg != "" {
				if err == nil {
					t.Fatalf("expected error %q, got %v", tc.exErrMsg, got)
				}
				if err.Error() != tc.exErrMsg {
					t.Errorf("wanted error %q, got %q", tc.exErrMsg, err.Error())
				}
				var validation ValidationError
				if !errors.As(err, &validation) {
					t.Errorf("expected a validation error, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(tc.want, got) {
				t.Errorf("wanted %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSaveWeekMatchupsReplacesWeek(t *testing.T) {
	ctx := context.Background()
	store := testutils.NewMemStore()
	ctrl, err := New(store)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	first, err := ctrl.SaveWeekMatchups(ctx, "week1", []model.Pairing{
		{TeamA: "a", TeamB: "b"},
		{TeamA: "c", TeamB: "d"},
	})
	if err != nil {
		t.Fatalf("error saving matchups: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(first))
	}

	// A second save fully replaces the week, nothing merges.
	second, err := ctrl.SaveWeekMatchups(ctx, "week1", []model.Pairing{
		{TeamA: "a", TeamB: "c"},
	})
	if err != nil {
		t.Fatalf("error replacing matchups: %v", err)
	}
	want := model.WeekMatchups{"a": "c", "c": "a"}
	if !reflect.DeepEqual(want, second) {
		t.Errorf("wanted %v, got %v", want, second)
	}

	stored, err := ctrl.GetWeekMatchups(ctx, "week1")
	if err != nil {
		t.Fatalf("error loading matchups: %v", err)
	}
	if !reflect.DeepEqual(want, stored) {
		t.Errorf("wanted %v, got %v", want, stored)
	}
}

func TestSaveWeekMatchupsEmptyClearsWeek(t *testing.T) {
	ctx := context.Background()
	store := testutils.NewMemStore()
	ctrl, err := New(store)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	if _, err := ctrl.SaveWeekMatchups(ctx, "week2", []model.Pairing{{TeamA: "a", TeamB: "b"}}); err != nil {
		t.Fatalf("error saving matchups: %v", err)
	}
	if _, err := ctrl.SaveWeekMatchups(ctx, "week2", nil); err != nil {
		t.Fatalf("error clearing matchups: %v", err)
	}

	all, err := ctrl.GetMatchups(ctx)
	if err != nil {
		t.Fatalf("error loading matchups: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no weeks, got %v", all)
	}
}

func TestWeekMatchupsValidation(t *testing.T) {
	ctx := context.Background()
	store := testutils.NewMemStore()
	ctrl, err := New(store)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	if _, err := ctrl.GetWeekMatchups(ctx, "not-a-week"); err == nil {
		t.Errorf("expected an error for a malformed week")
	}
	if _, err := ctrl.SaveWeekMatchups(ctx, "", nil); err == nil {
		t.Errorf("expected an error for an empty week")
	}

	// Normalized weeks read back the same regardless of input casing.
	if _, err := ctrl.SaveWeekMatchups(ctx, "Week3", []model.Pairing{{TeamA: "a", TeamB: "b"}}); err != nil {
		t.Fatalf("error saving matchups: %v", err)
	}
	got, err := ctrl.GetWeekMatchups(ctx, "week3")
	if err != nil {
		t.Fatalf("error loading matchups: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries, got %v", got)
	}
}
