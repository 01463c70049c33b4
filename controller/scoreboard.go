package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/JoshuaNogues/fantasy-basic/db"
	"github.com/JoshuaNogues/fantasy-basic/model"
)

func (c *controller) GetScoreboard(ctx context.Context, week string) ([]model.TeamScore, error) {
	resolved, err := c.resolveWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading teams for scoreboard: %w", err)
	}
	players, err := c.db.ListPlayers(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error loading players for scoreboard: %w", err)
	}

	rosters := make(map[string][]model.Player, len(teams))
	for _, p := range players {
		if p.TeamID == "" {
			continue
		}
		rosters[p.TeamID] = append(rosters[p.TeamID], p)
	}

	scores := make([]model.TeamScore, 0, len(teams))
	for i := range teams {
		t := &teams[i]
		roster := rosters[t.ID]
		lineup := ResolveLineup(t.Lineups, roster, resolved)

		score := model.TeamScore{
			TeamID:       t.ID,
			Name:         t.Name,
			StarterTotal: StarterTotal(lineup, roster, resolved),
		}
		if leader, pts := LeadingScorer(lineup, roster, resolved); leader != nil {
			score.LeadingScorer = &model.ScorerInfo{
				PlayerID: leader.ID,
				Name:     leader.Name,
				Points:   pts,
			}
		}
		scores = append(scores, score)
	}

	slices.SortFunc(scores, func(a, b model.TeamScore) int {
		if a.StarterTotal != b.StarterTotal {
			if b.StarterTotal > a.StarterTotal {
				return 1
			}
			return -1
		}
		return strings.Compare(a.Name, b.Name)
	})

	return scores, nil
}

func (c *controller) GetTeamSummary(ctx context.Context, teamID, week string) (*model.TeamSummary, error) {
	resolved, err := c.resolveWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	t, err := c.db.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	roster, err := c.db.ListPlayers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("error loading roster for team %s: %w", teamID, err)
	}

	wins, losses := CumulativeRecord(t.Record, resolved)
	lineup := ResolveLineup(t.Lineups, roster, resolved)

	summary := &model.TeamSummary{
		TeamID:       t.ID,
		Week:         resolved,
		Wins:         wins,
		Losses:       losses,
		Result:       t.Record[resolved],
		StarterTotal: StarterTotal(lineup, roster, resolved),
	}

	matchups, err := c.db.GetWeekMatchups(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("error loading matchups for %s: %w", resolved, err)
	}
	if opponentID := matchups[t.ID]; opponentID != "" {
		opponent, err := c.opponentSummary(ctx, opponentID, resolved)
		if err != nil {
			return nil, err
		}
		summary.Opponent = opponent
	}

	return summary, nil
}

func (c *controller) opponentSummary(ctx context.Context, teamID, week string) (*model.OpponentSummary, error) {
	t, err := c.db.GetTeam(ctx, teamID)
	if err != nil {
		// A pairing can point at a team that has since disappeared; the
		// summary just shows no opponent then.
		if errors.Is(err, db.ErrTeamNotFound) {
			return nil, nil
		}
		return nil, err
	}
	roster, err := c.db.ListPlayers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("error loading roster for opponent %s: %w", teamID, err)
	}

	lineup := ResolveLineup(t.Lineups, roster, week)
	return &model.OpponentSummary{
		TeamID:       t.ID,
		Name:         t.Name,
		StarterTotal: StarterTotal(lineup, roster, week),
	}, nil
}
