package stats

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/weight"
	"github.com/2beens/fittrack/internal/workouts"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats

type statsRepo interface {
	DailyTotals(ctx context.Context, limit int) ([]DailyTotal, error)
	PersonalRecords(ctx context.Context) ([]PersonalRecord, error)
	WeeklySummaries(ctx context.Context, today time.Time, weeks int) ([]WeeklySummary, error)
	MonthlySummaries(ctx context.Context, today time.Time, months int) ([]MonthlySummary, error)
	MuscleDistribution(ctx context.Context) ([]MuscleShare, error)
	Progression(ctx context.Context) ([]ProgressionPoint, error)
}

type logLister interface {
	List(ctx context.Context, params workouts.ListParams) ([]workouts.LogEntry, error)
}

type weightReader interface {
	Latest(ctx context.Context) (*weight.Entry, error)
	History(ctx context.Context) ([]weight.Entry, error)
}

type profileGetter interface {
	Get(ctx context.Context) (*profile.Profile, error)
}

type Service struct {
	repo     statsRepo
	log      logLister
	weights  weightReader
	profiles profileGetter
	cache    *Cache
	now      func() time.Time
}

func NewService(
	repo statsRepo,
	log logLister,
	weights weightReader,
	profiles profileGetter,
	cache *Cache,
) *Service {
	return &Service{
		repo:     repo,
		log:      log,
		weights:  weights,
		profiles: profiles,
		cache:    cache,
		now:      time.Now,
	}
}

// today is the current calendar date, the unit the cache keys and period queries work in.
func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) Stats(ctx context.Context) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.today()
	key := "stats:" + today.Format("2006-01-02")

	var stats Stats
	if s.cache.load(key, &stats) {
		return &stats, nil
	}

	if stats.Daily, err = s.repo.DailyTotals(ctx, DailyTotalsLimit); err != nil {
		return nil, err
	}
	if stats.PersonalRecords, err = s.repo.PersonalRecords(ctx); err != nil {
		return nil, err
	}
	if stats.Weekly, err = s.repo.WeeklySummaries(ctx, today, WeeklyPeriods); err != nil {
		return nil, err
	}
	if stats.Monthly, err = s.repo.MonthlySummaries(ctx, today, MonthlyPeriods); err != nil {
		return nil, err
	}
	if stats.MuscleDistribution, err = s.repo.MuscleDistribution(ctx); err != nil {
		return nil, err
	}

	s.cache.store(key, stats)
	return &stats, nil
}

func (s *Service) Analytics(ctx context.Context) (_ *Analytics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.analytics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := "analytics:" + s.today().Format("2006-01-02")

	var analytics Analytics
	if s.cache.load(key, &analytics) {
		return &analytics, nil
	}

	// without a profile there is no height, the weight series is still shown
	heightCm := 0.0
	if p, err := s.profiles.Get(ctx); err == nil {
		heightCm = p.HeightCm
	} else if !errors.Is(err, profile.ErrProfileNotFound) {
		log.Warnf("analytics, get profile (bmi series skipped): %s", err)
	}

	history, err := s.weights.History(ctx)
	if err != nil {
		return nil, err
	}
	analytics.WeightHistory = make([]WeightPoint, 0, len(history))
	for _, entry := range history {
		analytics.WeightHistory = append(analytics.WeightHistory, WeightPoint{
			Date:    entry.Date,
			Weight:  entry.Weight,
			BMI:     fitness.BMIPtr(&entry.Weight, heightCm),
			Display: fitness.FormatDateTime(entry.Date),
		})
	}

	if analytics.MuscleDistribution, err = s.repo.MuscleDistribution(ctx); err != nil {
		return nil, err
	}
	if analytics.Recent, err = s.log.List(ctx, workouts.ListParams{Limit: RecentEntries}); err != nil {
		return nil, err
	}
	if analytics.Progression, err = s.repo.Progression(ctx); err != nil {
		return nil, err
	}

	s.cache.store(key, analytics)
	return &analytics, nil
}

// LatestWeight is not cached, it is a single indexed row.
func (s *Service) LatestWeight(ctx context.Context) (*weight.Entry, error) {
	return s.weights.Latest(ctx)
}
