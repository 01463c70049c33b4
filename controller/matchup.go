package controller

import (
	"context"
	"strings"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

func (c *controller) GetMatchups(ctx context.Context) (model.Matchups, error) {
	return c.db.GetMatchups(ctx)
}

func (c *controller) GetWeekMatchups(ctx context.Context, week string) (model.WeekMatchups, error) {
	normalized, err := model.NormalizeWeek(week)
	if err != nil {
		return nil, ValidationError(err.Error())
	}
	return c.db.GetWeekMatchups(ctx, normalized)
}

func (c *controller) SaveWeekMatchups(ctx context.Context, week string, pairings []model.Pairing) (model.WeekMatchups, error) {
	normalized, err := model.NormalizeWeek(week)
	if err != nil {
		return nil, ValidationError(err.Error())
	}

	matchups, err := buildWeekMatchups(pairings)
	if err != nil {
		return nil, err
	}

	if err := c.db.SaveWeekMatchups(ctx, normalized, matchups); err != nil {
		return nil, err
	}
	return matchups, nil
}

// buildWeekMatchups turns the submitted pairings into the symmetric
// team -> opponent map, rejecting blank ids, self-pairings, and teams that
// appear in more than one pairing.
func buildWeekMatchups(pairings []model.Pairing) (model.WeekMatchups, error) {
	matchups := make(model.WeekMatchups, len(pairings)*2)
	for _, p := range pairings {
		a := strings.TrimSpace(p.TeamA)
		b := strings.TrimSpace(p.TeamB)
		if a == "" || b == "" {
			return nil, invalidf("each pairing needs two team ids")
		}
		if a == b {
			return nil, invalidf("team %s cannot be matched against itself", a)
		}
		if _, ok := matchups[a]; ok {
			return nil, invalidf("team %s appears in more than one pairing", a)
		}
		if _, ok := matchups[b]; ok {
			return nil, invalidf("team %s appears in more than one pairing", b)
		}
		matchups[a] = b
		matchups[b] = a
	}
	return matchups, nil
}
