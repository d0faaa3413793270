package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// Repo stores the single profile row (id = 1).
type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// Seed writes p only if no profile exists yet, so edits made through the app survive restarts.
func (r *Repo) Seed(ctx context.Context, p Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO profile (id, name, height_cm, date_of_birth) VALUES (1, $1, $2, $3)
			ON CONFLICT (id) DO NOTHING;`,
		p.Name, p.HeightCm, p.DateOfBirth,
	)
	if err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	span.SetAttributes(attribute.Bool("seeded", tag.RowsAffected() > 0))

	return nil
}

func (r *Repo) Get(ctx context.Context) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p Profile
	if err := r.db.QueryRow(
		ctx,
		`SELECT name, height_cm, date_of_birth, updated_at FROM profile WHERE id = 1;`,
	).Scan(&p.Name, &p.HeightCm, &p.DateOfBirth, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &p, nil
}

func (r *Repo) UpdateHeight(ctx context.Context, heightCm float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update_height")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if heightCm <= 0 {
		return ErrInvalidHeight
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile SET height_cm = $1, updated_at = now() WHERE id = 1;`,
		heightCm,
	)
	if err != nil {
		return fmt.Errorf("update profile height: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}
