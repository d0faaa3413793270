package workouts

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/fitness"
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

// Log appends the sets to the exercise log and returns the number of rows written.
// Either every set is stored or none is.
func (r *Repo) Log(ctx context.Context, req LogRequest) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req.Category, req.Exercise = strings.TrimSpace(req.Category), strings.TrimSpace(req.Exercise)
	if req.Date.IsZero() || req.Category == "" || req.Exercise == "" {
		return 0, ErrInvalidLog
	}

	rows, err := req.Sets.rows()
	if err != nil {
		return 0, err
	}
	span.SetAttributes(
		attribute.String("exercise", req.Exercise),
		attribute.Int("rows", len(rows)),
	)

	if err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, row := range rows {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO exercises (date, category, muscle_id, exercise, set_number, sets, reps, weight)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
				req.Date, req.Category, req.MuscleID, req.Exercise, row.setNumber, row.sets, row.reps, row.weight,
			); err != nil {
				return fmt.Errorf("insert set %d: %w", row.setNumber, err)
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// List returns the log newest first.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", params.Limit))

	sql := `
		SELECT
			e.id, e.date, e.category, e.muscle_id, COALESCE(m.muscle_name, $1),
			e.exercise, e.set_number, e.sets, e.reps, e.weight, e.created_at
		FROM exercises e
		LEFT JOIN muscles m ON m.id = e.muscle_id
		ORDER BY e.date DESC, e.id DESC`
	args := []any{catalog.UnknownMuscle}
	if params.Limit > 0 {
		sql += ` LIMIT $2`
		args = append(args, params.Limit)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercise log: %w", err)
	}
	defer rows.Close()

	entries := []LogEntry{}
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(
			&e.ID, &e.Date, &e.Category, &e.MuscleID, &e.Muscle,
			&e.Exercise, &e.SetNumber, &e.Sets, &e.Reps, &e.Weight, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		e.Display = fitness.FormatDateTime(e.CreatedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
