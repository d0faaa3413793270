package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// Repo aggregates the exercise log in SQL, nothing is summed in Go.
type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// DailyTotals returns one row per logged date, newest first. Dates without any log row
// do not appear.
func (r *Repo) DailyTotals(ctx context.Context, limit int) (_ []DailyTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.daily_totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT date, SUM(sets), SUM(reps), SUM(weight * sets * reps)
			FROM exercises
			GROUP BY date
			ORDER BY date DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query daily totals: %w", err)
	}

	return collect(rows, func(row pgx.Rows) (DailyTotal, error) {
		var d DailyTotal
		err := row.Scan(&d.Date, &d.TotalSets, &d.TotalReps, &d.TotalVolume)
		d.Display = fitness.FormatDateTime(d.Date)
		return d, err
	})
}

func (r *Repo) PersonalRecords(ctx context.Context) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.personal_records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT e.exercise, e.weight, e.date
			FROM exercises e
			JOIN (
				SELECT exercise, MAX(weight) AS max_weight FROM exercises GROUP BY exercise
			) pr ON pr.exercise = e.exercise AND pr.max_weight = e.weight
			ORDER BY e.exercise, e.date, e.id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query personal records: %w", err)
	}

	records, err := collect(rows, func(row pgx.Rows) (PersonalRecord, error) {
		var pr PersonalRecord
		err := row.Scan(&pr.Exercise, &pr.Weight, &pr.Date)
		pr.Display = fitness.FormatDateTime(pr.Date)
		return pr, err
	})
	span.SetAttributes(attribute.Int("records", len(records)))
	return records, err
}

// WeeklySummaries covers the week of today and the weeks-1 weeks before it, newest first.
// Rows dated after the current week are left out.
// Weeks start on Monday, Year and Week are ISO-8601.
func (r *Repo) WeeklySummaries(ctx context.Context, today time.Time, weeks int) (_ []WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				week_start,
				EXTRACT(ISOYEAR FROM week_start)::int,
				EXTRACT(WEEK FROM week_start)::int,
				workout_days, total_sets, total_reps, total_volume
			FROM (
				SELECT
					date_trunc('week', date::timestamp)::date AS week_start,
					COUNT(DISTINCT date) AS workout_days,
					SUM(sets) AS total_sets,
					SUM(reps) AS total_reps,
					SUM(weight * sets * reps) AS total_volume
				FROM exercises
				WHERE date >= (date_trunc('week', $1::timestamp) - make_interval(weeks => $2::int - 1))::date
					AND date < (date_trunc('week', $1::timestamp) + interval '1 week')::date
				GROUP BY 1
			) w
			ORDER BY week_start DESC;`,
		today, weeks,
	)
	if err != nil {
		return nil, fmt.Errorf("query weekly summaries: %w", err)
	}

	return collect(rows, func(row pgx.Rows) (WeeklySummary, error) {
		var s WeeklySummary
		err := row.Scan(&s.WeekStart, &s.Year, &s.Week, &s.WorkoutDays, &s.TotalSets, &s.TotalReps, &s.TotalVolume)
		s.Display = fitness.FormatDateTime(s.WeekStart)
		return s, err
	})
}

// MonthlySummaries covers the month of today and the months-1 months before it, newest first.
func (r *Repo) MonthlySummaries(ctx context.Context, today time.Time, months int) (_ []MonthlySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				month_start,
				EXTRACT(YEAR FROM month_start)::int,
				EXTRACT(MONTH FROM month_start)::int,
				workout_days, total_sets, total_reps, total_volume
			FROM (
				SELECT
					date_trunc('month', date::timestamp)::date AS month_start,
					COUNT(DISTINCT date) AS workout_days,
					SUM(sets) AS total_sets,
					SUM(reps) AS total_reps,
					SUM(weight * sets * reps) AS total_volume
				FROM exercises
				WHERE date >= (date_trunc('month', $1::timestamp) - make_interval(months => $2::int - 1))::date
					AND date < (date_trunc('month', $1::timestamp) + interval '1 month')::date
				GROUP BY 1
			) m
			ORDER BY month_start DESC;`,
		today, months,
	)
	if err != nil {
		return nil, fmt.Errorf("query monthly summaries: %w", err)
	}

	return collect(rows, func(row pgx.Rows) (MonthlySummary, error) {
		var s MonthlySummary
		var monthStart time.Time
		err := row.Scan(&monthStart, &s.Year, &s.Month, &s.WorkoutDays, &s.TotalSets, &s.TotalReps, &s.TotalVolume)
		s.MonthName = time.Month(s.Month).String()
		s.Display = fitness.FormatDateTime(monthStart)
		return s, err
	})
}

// MuscleDistribution counts log rows per muscle, most trained first.
func (r *Repo) MuscleDistribution(ctx context.Context) (_ []MuscleShare, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.muscle_distribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT COALESCE(m.muscle_name, $1) AS muscle, COUNT(*)
			FROM exercises e
			LEFT JOIN muscles m ON m.id = e.muscle_id
			GROUP BY 1
			ORDER BY 2 DESC, 1;`,
		catalog.UnknownMuscle,
	)
	if err != nil {
		return nil, fmt.Errorf("query muscle distribution: %w", err)
	}

	return collect(rows, func(row pgx.Rows) (MuscleShare, error) {
		var s MuscleShare
		err := row.Scan(&s.Muscle, &s.Count)
		return s, err
	})
}

// Progression returns the heaviest weight per exercise per logged date.
func (r *Repo) Progression(ctx context.Context) (_ []ProgressionPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise, date, MAX(weight)
			FROM exercises
			GROUP BY exercise, date
			ORDER BY exercise, date;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query progression: %w", err)
	}

	return collect(rows, func(row pgx.Rows) (ProgressionPoint, error) {
		var p ProgressionPoint
		err := row.Scan(&p.Exercise, &p.Date, &p.MaxWeight)
		p.Display = fitness.FormatDateTime(p.Date)
		return p, err
	})
}

func collect[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
