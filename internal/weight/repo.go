package weight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db db.Querier
}

// NewRepo accepts the pool, or a pgx.Tx when the write is part of a larger transaction.
func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert records the weight for the given day, replacing an existing entry for that day.
func (r *Repo) Upsert(ctx context.Context, date time.Time, weight float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format("2006-01-02")))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO daily_weight (date, weight) VALUES ($1, $2)
			ON CONFLICT (date) DO UPDATE SET weight = EXCLUDED.weight;`,
		date, weight,
	); err != nil {
		return fmt.Errorf("upsert daily weight: %w", err)
	}

	return nil
}

// Latest returns the most recent entry, or nil (and no error) when nothing is recorded yet.
func (r *Repo) Latest(ctx context.Context) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var entry Entry
	if err := r.db.QueryRow(
		ctx,
		`SELECT date, weight FROM daily_weight ORDER BY date DESC LIMIT 1;`,
	).Scan(&entry.Date, &entry.Weight); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest daily weight: %w", err)
	}

	return &entry, nil
}

// History returns all entries, oldest first.
func (r *Repo) History(ctx context.Context) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT date, weight FROM daily_weight ORDER BY date ASC;`)
	if err != nil {
		return nil, fmt.Errorf("query daily weight: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Date, &entry.Weight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}
