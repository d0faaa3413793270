package db

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Schema is idempotent, it only makes sure the tables exist.
// muscle_id columns are deliberately not foreign keys: reference data can be deleted
// without touching the exercise log.
const Schema = `
CREATE TABLE IF NOT EXISTS profile
(
    id            SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    name          VARCHAR          NOT NULL,
    height_cm     DOUBLE PRECISION NOT NULL,
    date_of_birth DATE             NOT NULL,
    updated_at    TIMESTAMPTZ      NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS daily_weight
(
    date   DATE PRIMARY KEY,
    weight DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS muscles
(
    id          SERIAL PRIMARY KEY,
    category    VARCHAR NOT NULL,
    muscle_name VARCHAR NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_muscles_category ON muscles (category);

CREATE TABLE IF NOT EXISTS exercise_library
(
    id            SERIAL PRIMARY KEY,
    muscle_id     INTEGER NOT NULL,
    exercise_name VARCHAR NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_exercise_library_muscle_id ON exercise_library (muscle_id);

CREATE TABLE IF NOT EXISTS exercises
(
    id         SERIAL PRIMARY KEY,
    date       DATE             NOT NULL,
    category   VARCHAR          NOT NULL,
    muscle_id  INTEGER,
    exercise   VARCHAR          NOT NULL,
    set_number INTEGER          NOT NULL DEFAULT 1,
    sets       INTEGER          NOT NULL,
    reps       INTEGER          NOT NULL,
    weight     DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ      NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_exercises_date ON exercises (date);
CREATE INDEX IF NOT EXISTS ix_exercises_exercise ON exercises (exercise);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}
