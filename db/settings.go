package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JoshuaNogues/fantasy-basic/model"
)

func (db *postgresDB) GetCurrentWeek(ctx context.Context) (string, error) {
	const query = `SELECT current_week FROM league_settings WHERE id`

	var week string
	err := db.pool.QueryRow(ctx, query).Scan(&week)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Never been set, callers fall back to the default.
			return "", nil
		}
		return "", fmt.Errorf("error reading current week: %w", err)
	}
	return week, nil
}

func (db *postgresDB) SetCurrentWeek(ctx context.Context, week string) error {
	const query = `INSERT INTO league_settings (id, current_week) VALUES (TRUE, @week)
		ON CONFLICT (id) DO UPDATE SET current_week=EXCLUDED.current_week`

	if _, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"week": week}); err != nil {
		return fmt.Errorf("error setting current week: %w", err)
	}
	return nil
}

func (db *postgresDB) GetMatchups(ctx context.Context) (model.Matchups, error) {
	const query = `SELECT week, pairings FROM matchups`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing matchups: %w", err)
	}

	results := make(model.Matchups)
	for rows.Next() {
		var week string
		var pairings model.WeekMatchups
		if err := rows.Scan(&week, &pairings); err != nil {
			return nil, fmt.Errorf("error scanning matchups: %w", err)
		}
		results[week] = pairings
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with matchup rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetWeekMatchups(ctx context.Context, week string) (model.WeekMatchups, error) {
	const query = `SELECT pairings FROM matchups WHERE week=@week`

	var pairings model.WeekMatchups
	err := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"week": week}).Scan(&pairings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// An unscheduled week is an empty map, never an error.
			return model.WeekMatchups{}, nil
		}
		return nil, fmt.Errorf("error reading matchups for %s: %w", week, err)
	}
	return pairings, nil
}

func (db *postgresDB) SaveWeekMatchups(ctx context.Context, week string, pairings model.WeekMatchups) error {
	const upsert = `INSERT INTO matchups (week, pairings) VALUES (@week, @pairings::jsonb)
		ON CONFLICT (week) DO UPDATE SET pairings=EXCLUDED.pairings`

	const remove = `DELETE FROM matchups WHERE week=@week`

	if len(pairings) == 0 {
		if _, err := db.pool.Exec(ctx, remove, pgx.NamedArgs{"week": week}); err != nil {
			return fmt.Errorf("error deleting matchups for %s: %w", week, err)
		}
		return nil
	}

	encoded, err := json.Marshal(pairings)
	if err != nil {
		return fmt.Errorf("error encoding matchups: %w", err)
	}

	args := pgx.NamedArgs{
		"week":     week,
		"pairings": string(encoded),
	}
	if _, err := db.pool.Exec(ctx, upsert, args); err != nil {
		return fmt.Errorf("error saving matchups for %s: %w", week, err)
	}
	return nil
}
