package controller

import (
	"testing"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

func TestStandings(t *testing.T) {
	teams := []model.Team{
		{
			ID:   "t-winless",
			Name: "Winless",
			Record: map[string]model.Result{
				"week1": model.ResultLoss,
				"week2": model.ResultLoss,
			},
		},
		{
			ID:   "t-perfect",
			Name: "Perfect",
			Record: map[string]model.Result{
				"week1": model.ResultWin,
				"week2": model.ResultWin,
			},
		},
		{
			ID:   "t-even",
			Name: "Even",
			Record: map[string]model.Result{
				"week1": model.ResultWin,
				"week2": model.ResultLoss,
			},
		},
	}

	rows := Standings(teams)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	wantOrder := []string{"t-perfect", "t-even", "t-winless"}
	for i, want := range wantOrder {
		if rows[i].TeamID != want {
			t.Errorf("row %d: wanted %s, got %s", i, want, rows[i].TeamID)
		}
	}

	if rows[0].WinPct != 1.0 {
		t.Errorf("wanted win pct 1.0, got %v", rows[0].WinPct)
	}
	if rows[1].WinPct != 0.5 {
		t.Errorf("wanted win pct 0.5, got %v", rows[1].WinPct)
	}
	if rows[0].Streak != "W2" {
		t.Errorf("wanted streak W2, got %q", rows[0].Streak)
	}
	if rows[2].Streak != "L2" {
		t.Errorf("wanted streak L2, got %q", rows[2].Streak)
	}

	for i, wantRank := range []int{1, 2, 3} {
		if rows[i].Rank != wantRank {
			t.Errorf("row %d: wanted rank %d, got %d", i, wantRank, rows[i].Rank)
		}
	}
}

func TestStandingsTiedTeamsShareRank(t *testing.T) {
	record := map[string]model.Result{"week1": model.ResultWin}
	teams := []model.Team{
		{ID: "t3", Name: "Charlie", Record: record},
		{ID: "t1", Name: "Alpha", Record: record},
		{ID: "t2", Name: "Bravo", Record: map[string]model.Result{"week1": model.ResultLoss}},
	}

	rows := Standings(teams)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Tied teams order by name so repeated calls agree.
	if rows[0].Name != "Alpha" || rows[1].Name != "Charlie" {
		t.Errorf("wanted Alpha then Charlie, got %s then %s", rows[0].Name, rows[1].Name)
	}

	// Competition ranking: two tied at 1, the next team is 3rd.
	if rows[0].Rank != 1 || rows[1].Rank != 1 {
		t.Errorf("wanted tied teams both rank 1, got %d and %d", rows[0].Rank, rows[1].Rank)
	}
	if rows[2].Rank != 3 {
		t.Errorf("wanted third team rank 3, got %d", rows[2].Rank)
	}
}

func TestStandingsZeroGames(t *testing.T) {
	teams := []model.Team{{ID: "t1", Name: "New Team"}}

	rows := Standings(teams)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].WinPct != 0 || rows[0].TotalGames != 0 {
		t.Errorf("wanted zeroed stats, got pct=%v games=%d", rows[0].WinPct, rows[0].TotalGames)
	}
	if rows[0].Streak != "" {
		t.Errorf("wanted empty streak, got %q", rows[0].Streak)
	}
	if rows[0].Rank != 1 {
		t.Errorf("wanted rank 1, got %d", rows[0].Rank)
	}
}
