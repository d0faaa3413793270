package stats

import (
	"time"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/workouts"
)

const (
	DailyTotalsLimit = 30
	WeeklyPeriods    = 4
	MonthlyPeriods   = 6
	RecentEntries    = 10
)

type DailyTotal struct {
	Date        time.Time        `json:"date"`
	TotalSets   int              `json:"totalSets"`
	TotalReps   int              `json:"totalReps"`
	TotalVolume float64          `json:"totalVolume"`
	Display     fitness.DateTime `json:"display"`
}

// PersonalRecord is a log row carrying the heaviest weight ever used for its exercise.
// Several rows of one exercise are returned when they share that weight.
type PersonalRecord struct {
	Exercise string           `json:"exercise"`
	Weight   float64          `json:"weight"`
	Date     time.Time        `json:"date"`
	Display  fitness.DateTime `json:"display"`
}

type WeeklySummary struct {
	Year        int              `json:"year"`
	Week        int              `json:"week"`
	WeekStart   time.Time        `json:"weekStart"`
	WorkoutDays int              `json:"workoutDays"`
	TotalSets   int              `json:"totalSets"`
	TotalReps   int              `json:"totalReps"`
	TotalVolume float64          `json:"totalVolume"`
	Display     fitness.DateTime `json:"display"`
}

type MonthlySummary struct {
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	MonthName   string           `json:"monthName"`
	WorkoutDays int              `json:"workoutDays"`
	TotalSets   int              `json:"totalSets"`
	TotalReps   int              `json:"totalReps"`
	TotalVolume float64          `json:"totalVolume"`
	Display     fitness.DateTime `json:"display"`
}

type MuscleShare struct {
	Muscle string `json:"muscle"`
	Count  int    `json:"count"`
}

type ProgressionPoint struct {
	Exercise  string           `json:"exercise"`
	Date      time.Time        `json:"date"`
	MaxWeight float64          `json:"maxWeight"`
	Display   fitness.DateTime `json:"display"`
}

type WeightPoint struct {
	Date    time.Time        `json:"date"`
	Weight  float64          `json:"weight"`
	BMI     *float64         `json:"bmi"`
	Display fitness.DateTime `json:"display"`
}

// Stats is the /stats view model.
type Stats struct {
	Daily              []DailyTotal     `json:"daily"`
	PersonalRecords    []PersonalRecord `json:"personalRecords"`
	Weekly             []WeeklySummary  `json:"weekly"`
	Monthly            []MonthlySummary `json:"monthly"`
	MuscleDistribution []MuscleShare    `json:"muscleDistribution"`
}

// Analytics is the /analytics view model.
type Analytics struct {
	WeightHistory      []WeightPoint       `json:"weightHistory"`
	MuscleDistribution []MuscleShare       `json:"muscleDistribution"`
	Recent             []workouts.LogEntry `json:"recent"`
	Progression        []ProgressionPoint  `json:"progression"`
}
