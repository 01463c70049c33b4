package controller

import (
	"context"
	"fmt"

	"github.com/JoshuaNogues/fantasy-basic/db"
	"github.com/JoshuaNogues/fantasy-basic/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	AddTeam(ctx context.Context, name string) (*model.Team, error)
	// UpdateLineup sanitizes the raw lineup and stores it under the given
	// week. A blank week defaults to week1. A lineup that sanitizes to empty
	// removes the week's entry instead.
	UpdateLineup(ctx context.Context, teamID, week string, raw map[string]string) (*model.Team, error)
	// UpdateRecord sets a single week's W/L result for a team.
	UpdateRecord(ctx context.Context, teamID, week, result string) (*model.Team, error)

	// ListPlayers returns all players, or only one team's when teamID != "".
	ListPlayers(ctx context.Context, teamID string) ([]model.Player, error)
	AddPlayer(ctx context.Context, name, teamID, position string) (*model.Player, error)
	// UpdatePoints sets a single week's score for a player.
	UpdatePoints(ctx context.Context, playerID, week string, points float64) (*model.Player, error)

	// GetCurrentWeek returns the league's active week, falling back to week1
	// when the setting is missing or malformed.
	GetCurrentWeek(ctx context.Context) (string, error)
	SetCurrentWeek(ctx context.Context, week string) (string, error)

	GetMatchups(ctx context.Context) (model.Matchups, error)
	GetWeekMatchups(ctx context.Context, week string) (model.WeekMatchups, error)
	// SaveWeekMatchups validates the pairings and fully replaces the week's
	// stored map. An empty list clears the week.
	SaveWeekMatchups(ctx context.Context, week string, pairings []model.Pairing) (model.WeekMatchups, error)

	// GetScoreboard computes starter totals and leading scorers for every
	// team for a week, highest total first. A blank week means the league's
	// current week.
	GetScoreboard(ctx context.Context, week string) ([]model.TeamScore, error)
	GetStandings(ctx context.Context) ([]model.TeamStanding, error)
	GetTeamSummary(ctx context.Context, teamID, week string) (*model.TeamSummary, error)
}

// ValidationError marks bad input so the web layer can map it to a 400
// response without matching on message text.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func invalidf(format string, args ...any) error {
	return ValidationError(fmt.Sprintf(format, args...))
}

type controller struct {
	db db.Store
}

func New(db db.Store) (C, error) {
	c := &controller{
		db: db,
	}
	return c, nil
}

// resolveWeek normalizes a raw week parameter, treating a blank value as the
// league's current week.
func (c *controller) resolveWeek(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return c.GetCurrentWeek(ctx)
	}
	week, err := model.NormalizeWeek(raw)
	if err != nil {
		return "", ValidationError(err.Error())
	}
	return week, nil
}
