package model

import "testing"

func TestNormalizeWeek(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"already normalized": {input: "week3", want: "week3"},
		"upper case":         {input: "Week3", want: "week3"},
		"all caps":           {input: "WEEK12", want: "week12"},
		"surrounding spaces": {input: " week3 ", want: "week3"},
		"multi digit":        {input: "week17", want: "week17"},
		"empty":              {input: "", wantErr: true},
		"no number":          {input: "week", wantErr: true},
		"number only":        {input: "3", wantErr: true},
		"trailing garbage":   {input: "week3a", wantErr: true},
		"internal space":     {input: "week 3", wantErr: true},
		"negative":           {input: "week-1", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NormalizeWeek(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q, got %q", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, got)
			}
		})
	}
}

func TestWeekNumber(t *testing.T) {
	tests := map[string]struct {
		input  string
		want   int
		wantOK bool
	}{
		"week1":       {input: "week1", want: 1, wantOK: true},
		"week17":      {input: "week17", want: 17, wantOK: true},
		"mixed case":  {input: "Week4", want: 4, wantOK: true},
		"not a week":  {input: "wk3", wantOK: false},
		"empty":       {input: "", wantOK: false},
		"bare number": {input: "7", wantOK: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := WeekNumber(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("wanted ok=%v, got ok=%v", tc.wantOK, ok)
			}
			if ok && got != tc.want {
				t.Errorf("wanted %d, got %d", tc.want, got)
			}
		})
	}
}
