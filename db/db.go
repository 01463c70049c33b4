package db

import (
	"context"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

type Store interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	AddTeam(ctx context.Context, name string) (*model.Team, error)
	// SaveLineup stores the lineup under the given week, overwriting only that
	// week's entry. An empty lineup removes the week's entry instead.
	SaveLineup(ctx context.Context, teamID, week string, lineup model.Lineup) (*model.Team, error)
	SaveRecord(ctx context.Context, teamID, week string, result model.Result) (*model.Team, error)

	// ListPlayers returns every player, or only the given team's players when
	// teamID is non-empty.
	ListPlayers(ctx context.Context, teamID string) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	AddPlayer(ctx context.Context, p *model.Player) (*model.Player, error)
	// SavePoints overwrites a single week's entry in the player's points map.
	SavePoints(ctx context.Context, playerID, week string, points float64) (*model.Player, error)

	// GetCurrentWeek returns the stored league week, or "" when unset.
	GetCurrentWeek(ctx context.Context) (string, error)
	SetCurrentWeek(ctx context.Context, week string) error

	GetMatchups(ctx context.Context) (model.Matchups, error)
	GetWeekMatchups(ctx context.Context, week string) (model.WeekMatchups, error)
	// SaveWeekMatchups fully replaces the pairings stored for a week. An empty
	// map deletes the week's entry.
	SaveWeekMatchups(ctx context.Context, week string, pairings model.WeekMatchups) error
}
