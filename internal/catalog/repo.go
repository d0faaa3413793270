package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db db.DB
}

func NewRepo(db db.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddMuscle(ctx context.Context, category, name string) (_ *Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscle.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	category, name = strings.TrimSpace(category), strings.TrimSpace(name)
	if category == "" || name == "" {
		return nil, ErrInvalidMuscle
	}

	m := Muscle{Category: category, Name: name}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO muscles (category, muscle_name) VALUES ($1, $2) RETURNING id;`,
		category, name,
	).Scan(&m.ID); err != nil {
		return nil, fmt.Errorf("insert muscle: %w", err)
	}
	span.SetAttributes(attribute.Int("muscle.id", m.ID))

	return &m, nil
}

func (r *Repo) ListMuscles(ctx context.Context) (_ []Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscle.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.queryMuscles(ctx, `SELECT id, category, muscle_name FROM muscles ORDER BY category, muscle_name, id;`)
}

func (r *Repo) MusclesByCategory(ctx context.Context, category string) (_ []Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscle.by_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", category))

	return r.queryMuscles(
		ctx,
		`SELECT id, category, muscle_name FROM muscles WHERE category = $1 ORDER BY muscle_name, id;`,
		category,
	)
}

func (r *Repo) queryMuscles(ctx context.Context, sql string, args ...any) ([]Muscle, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query muscles: %w", err)
	}
	defer rows.Close()

	muscles := []Muscle{}
	for rows.Next() {
		var m Muscle
		if err := rows.Scan(&m.ID, &m.Category, &m.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		muscles = append(muscles, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return muscles, nil
}

func (r *Repo) GetMuscle(ctx context.Context, id int) (_ *Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscle.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var m Muscle
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, category, muscle_name FROM muscles WHERE id = $1;`,
		id,
	).Scan(&m.ID, &m.Category, &m.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMuscleNotFound
		}
		return nil, fmt.Errorf("get muscle: %w", err)
	}

	return &m, nil
}

func (r *Repo) UpdateMuscle(ctx context.Context, m Muscle) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscle.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", m.ID))

	m.Category, m.Name = strings.TrimSpace(m.Category), strings.TrimSpace(m.Name)
	if m.Category == "" || m.Name == "" {
		return ErrInvalidMuscle
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE muscles SET category = $1, muscle_name = $2 WHERE id = $3;`,
		m.Category, m.Name, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update muscle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMuscleNotFound
	}

	return nil
}

// DeleteMuscle removes the muscle, deleting a missing id is not an error.
// Library entries and logged exercises keep their muscle_id.
func (r *Repo) DeleteMuscle(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscle.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM muscles WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete muscle: %w", err)
	}
	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))

	return nil
}

func (r *Repo) AddExercise(ctx context.Context, muscleID int, name string) (_ *LibraryExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercise.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if muscleID <= 0 || name == "" {
		return nil, ErrInvalidExercise
	}

	e := LibraryExercise{MuscleID: muscleID, Name: name}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_library (muscle_id, exercise_name) VALUES ($1, $2) RETURNING id;`,
		muscleID, name,
	).Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("insert library exercise: %w", err)
	}
	span.SetAttributes(attribute.Int("exercise.id", e.ID))

	return &e, nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []LibraryExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercise.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.queryExercises(
		ctx,
		`SELECT e.id, e.muscle_id, e.exercise_name, COALESCE(m.category, ''), COALESCE(m.muscle_name, $1)
			FROM exercise_library e
			LEFT JOIN muscles m ON m.id = e.muscle_id
			ORDER BY m.category, m.muscle_name, e.exercise_name, e.id;`,
		UnknownMuscle,
	)
}

func (r *Repo) ExercisesByMuscle(ctx context.Context, muscleID int) (_ []LibraryExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercise.by_muscle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("muscle.id", muscleID))

	return r.queryExercises(
		ctx,
		`SELECT e.id, e.muscle_id, e.exercise_name, COALESCE(m.category, ''), COALESCE(m.muscle_name, $2)
			FROM exercise_library e
			LEFT JOIN muscles m ON m.id = e.muscle_id
			WHERE e.muscle_id = $1
			ORDER BY e.exercise_name, e.id;`,
		muscleID, UnknownMuscle,
	)
}

func (r *Repo) queryExercises(ctx context.Context, sql string, args ...any) ([]LibraryExercise, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query library exercises: %w", err)
	}
	defer rows.Close()

	exercises := []LibraryExercise{}
	for rows.Next() {
		var e LibraryExercise
		if err := rows.Scan(&e.ID, &e.MuscleID, &e.Name, &e.Category, &e.MuscleName); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repo) UpdateExercise(ctx context.Context, e LibraryExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercise.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", e.ID))

	e.Name = strings.TrimSpace(e.Name)
	if e.MuscleID <= 0 || e.Name == "" {
		return ErrInvalidExercise
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_library SET muscle_id = $1, exercise_name = $2 WHERE id = $3;`,
		e.MuscleID, e.Name, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update library exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

// DeleteExercise removes the library entry, deleting a missing id is not an error.
func (r *Repo) DeleteExercise(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercise.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_library WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete library exercise: %w", err)
	}
	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))

	return nil
}
