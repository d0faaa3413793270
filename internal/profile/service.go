package profile

import (
	"context"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/weight"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	db   db.DB
	repo *Repo
}

func NewService(db db.DB) *Service {
	return &Service{
		db:   db,
		repo: NewRepo(db),
	}
}

func (s *Service) Get(ctx context.Context) (*Profile, error) {
	return s.repo.Get(ctx)
}

// Update applies the height change and records the weight in one transaction.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.HeightCm != nil && *req.HeightCm <= 0 {
		return ErrInvalidHeight
	}
	if req.HeightCm == nil && req.Weight == nil {
		return nil
	}

	return db.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		if req.HeightCm != nil {
			if err := NewRepo(tx).UpdateHeight(ctx, *req.HeightCm); err != nil {
				return err
			}
		}
		if req.Weight != nil {
			if err := weight.NewRepo(tx).Upsert(ctx, req.Date, *req.Weight); err != nil {
				return err
			}
		}
		return nil
	})
}
