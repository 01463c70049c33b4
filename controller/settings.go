package controller

import (
	"context"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

func (c *controller) GetCurrentWeek(ctx context.Context) (string, error) {
	stored, err := c.db.GetCurrentWeek(ctx)
	if err != nil {
		return "", err
	}

	week, err := model.NormalizeWeek(stored)
	if err != nil {
		// Unset or malformed, fall back to the default rather than failing
		// every reader.
		return model.DefaultWeek, nil
	}
	return week, nil
}

func (c *controller) SetCurrentWeek(ctx context.Context, week string) (string, error) {
	normalized, err := model.NormalizeWeek(week)
	if err != nil {
		return "", ValidationError(err.Error())
	}

	if err := c.db.SetCurrentWeek(ctx, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
