package controller

import (
	"context"
	"strings"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}

func (c *controller) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) AddTeam(ctx context.Context, name string) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("team name must be provided")
	}
	return c.db.AddTeam(ctx, name)
}

func (c *controller) UpdateLineup(ctx context.Context, teamID, week string, raw map[string]string) (*model.Team, error) {
	// A blank week keeps the historical behavior of older clients that never
	// sent one: the lineup lands on week1.
	week = strings.TrimSpace(week)
	if week == "" {
		week = model.DefaultWeek
	} else {
		normalized, err := model.NormalizeWeek(week)
		if err != nil {
			return nil, ValidationError(err.Error())
		}
		week = normalized
	}

	lineup := model.NormalizeLineup(raw)
	return c.db.SaveLineup(ctx, teamID, week, lineup)
}

func (c *controller) UpdateRecord(ctx context.Context, teamID, week, result string) (*model.Team, error) {
	normalized, err := model.NormalizeWeek(week)
	if err != nil {
		return nil, ValidationError(err.Error())
	}

	parsed, ok := model.ParseResult(result)
	if !ok {
		return nil, invalidf("result must be W or L, got: %s", result)
	}

	return c.db.SaveRecord(ctx, teamID, normalized, parsed)
}
