package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

const teamColumns = `id::text, name, lineups, record, created, updated`

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams ORDER BY created`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}

	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with team rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams WHERE id=@id::uuid`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %s: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) AddTeam(ctx context.Context, name string) (*model.Team, error) {
	const query = `INSERT INTO teams (id, name, created, updated)
		VALUES (@id::uuid, @name, @now, @now)
		RETURNING ` + teamColumns

	args := pgx.NamedArgs{
		"id":   uuid.New().String(),
		"name": name,
		"now":  db.timestamp(),
	}
	row := db.pool.QueryRow(ctx, query, args)
	t, err := scanTeam(row)
	if err != nil {
		return nil, fmt.Errorf("error inserting team: %w", err)
	}
	return t, nil
}

func (db *postgresDB) SaveLineup(ctx context.Context, teamID, week string, lineup model.Lineup) (*model.Team, error) {
	// A single UPDATE keeps the write atomic: only the given week's entry in
	// the lineups map changes, every other week is untouched.
	const set = `UPDATE teams
		SET lineups = lineups || jsonb_build_object(@week::text, @lineup::jsonb),
			updated = @updated
		WHERE id=@id::uuid
		RETURNING ` + teamColumns

	const unset = `UPDATE teams
		SET lineups = lineups - @week::text,
			updated = @updated
		WHERE id=@id::uuid
		RETURNING ` + teamColumns

	args := pgx.NamedArgs{
		"id":      teamID,
		"week":    week,
		"updated": db.timestamp(),
	}
	query := unset
	if len(lineup) > 0 {
		encoded, err := json.Marshal(lineup)
		if err != nil {
			return nil, fmt.Errorf("error encoding lineup: %w", err)
		}
		args["lineup"] = string(encoded)
		query = set
	}

	row := db.pool.QueryRow(ctx, query, args)
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error saving lineup for team %s: %w", teamID, err)
	}
	return t, nil
}

func (db *postgresDB) SaveRecord(ctx context.Context, teamID, week string, result model.Result) (*model.Team, error) {
	const query = `UPDATE teams
		SET record = record || jsonb_build_object(@week::text, @result::text),
			updated = @updated
		WHERE id=@id::uuid
		RETURNING ` + teamColumns

	args := pgx.NamedArgs{
		"id":      teamID,
		"week":    week,
		"result":  string(result),
		"updated": db.timestamp(),
	}
	row := db.pool.QueryRow(ctx, query, args)
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error saving record for team %s: %w", teamID, err)
	}
	return t, nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Lineups,
		&result.Record,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func (db *postgresDB) timestamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
