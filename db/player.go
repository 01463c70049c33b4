package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

const playerColumns = `id::text, name, team_id::text, position, points, created, updated`

func (db *postgresDB) ListPlayers(ctx context.Context, teamID string) ([]model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players ORDER BY created`

	const teamQuery = `SELECT ` + playerColumns + ` FROM players
		WHERE team_id=@teamID::uuid ORDER BY created`

	var rows pgx.Rows
	var err error
	if teamID == "" {
		rows, err = db.pool.Query(ctx, query)
	} else {
		rows, err = db.pool.Query(ctx, teamQuery, pgx.NamedArgs{"teamID": teamID})
	}
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}

	results := make([]model.Player, 0, 16)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with player rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE id=@id::uuid`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) AddPlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	const query = `INSERT INTO players (id, name, team_id, position, created, updated)
		VALUES (@id::uuid, @name, @teamID::uuid, @position, @now, @now)
		RETURNING ` + playerColumns

	args := pgx.NamedArgs{
		"id":   uuid.New().String(),
		"name": p.Name,
		"teamID": sql.NullString{
			String: p.TeamID,
			Valid:  p.TeamID != "",
		},
		"position": sql.NullString{
			String: string(p.Position),
			Valid:  p.Position != "",
		},
		"now": db.timestamp(),
	}
	row := db.pool.QueryRow(ctx, query, args)
	inserted, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("error inserting player: %w", err)
	}
	return inserted, nil
}

func (db *postgresDB) SavePoints(ctx context.Context, playerID, week string, points float64) (*model.Player, error) {
	// Week-local overwrite: the jsonb merge replaces only the given week's
	// entry, leaving every other week untouched.
	const query = `UPDATE players
		SET points = points || jsonb_build_object(@week::text, @points::float8),
			updated = @updated
		WHERE id=@id::uuid
		RETURNING ` + playerColumns

	args := pgx.NamedArgs{
		"id":      playerID,
		"week":    week,
		"points":  points,
		"updated": db.timestamp(),
	}
	row := db.pool.QueryRow(ctx, query, args)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error saving points for player %s: %w", playerID, err)
	}
	return p, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var teamID, position sql.NullString
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&teamID,
		&position,
		&result.Points,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.TeamID = valueOrEmpty(teamID)
	result.Position = model.ParseSlot(valueOrEmpty(position))
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
