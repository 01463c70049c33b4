package controller

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

func (c *controller) GetStandings(ctx context.Context) ([]model.TeamStanding, error) {
	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading teams for standings: %w", err)
	}
	return Standings(teams), nil
}

// Standings orders teams by win percentage, then win count, then fewest
// losses. Remaining ties break on team name and id so the output is
// reproducible across requests. Teams with identical win/loss/games totals
// share a rank and the next rank skips past the tied group (competition
// style: 1, 1, 3).
func Standings(teams []model.Team) []model.TeamStanding {
	rows := make([]model.TeamStanding, 0, len(teams))
	for i := range teams {
		t := &teams[i]
		wins, losses := recordTotals(t.Record)
		total := wins + losses
		pct := 0.0
		if total > 0 {
			pct = float64(wins) / float64(total)
		}
		rows = append(rows, model.TeamStanding{
			TeamID:     t.ID,
			Name:       t.Name,
			Wins:       wins,
			Losses:     losses,
			TotalGames: total,
			WinPct:     pct,
			Streak:     StreakLabel(t.Record),
		})
	}

	slices.SortFunc(rows, func(a, b model.TeamStanding) int {
		if a.WinPct != b.WinPct {
			if b.WinPct > a.WinPct {
				return 1
			}
			return -1
		}
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses - b.Losses
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.TeamID, b.TeamID)
	})

	lastKey := ""
	rank := 1
	for i := range rows {
		key := fmt.Sprintf("%d-%d-%d", rows[i].Wins, rows[i].Losses, rows[i].TotalGames)
		if key != lastKey {
			rank = i + 1
			lastKey = key
		}
		rows[i].Rank = rank
	}

	return rows
}

// recordTotals counts every decided week, unlike CumulativeRecord which is
// bounded by a target week.
func recordTotals(record map[string]model.Result) (wins, losses int) {
	for _, result := range record {
		switch result {
		case model.ResultWin:
			wins++
		case model.ResultLoss:
			losses++
		}
	}
	return wins, losses
}
