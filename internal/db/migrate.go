package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		google_id TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		profile_picture_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL CHECK (category IN ('strength', 'cardio', 'flexibility')),
		muscle_groups TEXT[] NOT NULL DEFAULT '{}',
		equipment TEXT,
		instructions TEXT,
		is_custom BOOLEAN NOT NULL DEFAULT false,
		user_id TEXT REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS exercises_user_id_idx ON exercises (user_id);`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		date DATE NOT NULL,
		notes TEXT,
		duration_minutes INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS workouts_user_id_date_idx ON workouts (user_id, date DESC);`,
	`CREATE TABLE IF NOT EXISTS workout_sets (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
		exercise_id TEXT NOT NULL REFERENCES exercises (id) ON DELETE RESTRICT,
		set_number INTEGER NOT NULL,
		reps INTEGER NOT NULL CHECK (reps > 0),
		weight DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
		weight_unit TEXT NOT NULL DEFAULT 'lbs' CHECK (weight_unit IN ('lbs', 'kg')),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (workout_id, set_number)
	);`,
	`CREATE INDEX IF NOT EXISTS workout_sets_exercise_id_idx ON workout_sets (exercise_id);`,
	`CREATE TABLE IF NOT EXISTS templates (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS template_exercises (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL REFERENCES templates (id) ON DELETE CASCADE,
		exercise_id TEXT NOT NULL REFERENCES exercises (id) ON DELETE RESTRICT,
		order_index INTEGER NOT NULL,
		default_sets INTEGER CHECK (default_sets >= 0),
		default_reps INTEGER CHECK (default_reps >= 0),
		default_weight DOUBLE PRECISION CHECK (default_weight >= 0),
		notes TEXT,
		UNIQUE (template_id, order_index)
	);`,
}

// Migrate creates the schema if it does not exist yet. Safe to run on every start.
func Migrate(ctx context.Context, db Execer) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	log.Debugf("db schema migrated, %d statements", len(schema))
	return nil
}
