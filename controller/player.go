package controller

import (
	"context"
	"strings"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

func (c *controller) ListPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	return c.db.ListPlayers(ctx, teamID)
}

func (c *controller) AddPlayer(ctx context.Context, name, teamID, position string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("player name must be provided")
	}

	var slot model.Slot
	if strings.TrimSpace(position) != "" {
		slot = model.ParseSlot(position)
		if slot == "" {
			return nil, invalidf("unknown position: %s", position)
		}
	}

	teamID = strings.TrimSpace(teamID)
	if teamID != "" {
		// Fail up front instead of persisting a dangling reference.
		if _, err := c.db.GetTeam(ctx, teamID); err != nil {
			return nil, err
		}
	}

	p := &model.Player{
		Name:     name,
		TeamID:   teamID,
		Position: slot,
	}
	return c.db.AddPlayer(ctx, p)
}

func (c *controller) UpdatePoints(ctx context.Context, playerID, week string, points float64) (*model.Player, error) {
	normalized, err := model.NormalizeWeek(week)
	if err != nil {
		return nil, ValidationError(err.Error())
	}

	return c.db.SavePoints(ctx, playerID, normalized, points)
}
