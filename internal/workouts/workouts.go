package workouts

import (
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/pkg"
)

var (
	ErrInvalidSets = fmt.Errorf("invalid sets: %w", pkg.ErrBadRequest)
	ErrInvalidLog  = fmt.Errorf("date, category and exercise are required: %w", pkg.ErrBadRequest)
)

// LogEntry is one row of the exercise log. MuscleID is nil for entries without a muscle,
// Muscle is the resolved display name.
type LogEntry struct {
	ID        int              `json:"id"`
	Date      time.Time        `json:"date"`
	Category  string           `json:"category"`
	MuscleID  *int             `json:"muscleId"`
	Muscle    string           `json:"muscle"`
	Exercise  string           `json:"exercise"`
	SetNumber int              `json:"setNumber"`
	Sets      int              `json:"sets"`
	Reps      int              `json:"reps"`
	Weight    float64          `json:"weight"`
	CreatedAt time.Time        `json:"createdAt"`
	Display   fitness.DateTime `json:"display"`
}

// SetsSpec describes what was done: either a single sets x reps @ weight triple (Scalar, one
// reps and one weight value), or one reps/weight pair per set.
type SetsSpec struct {
	Scalar  bool
	Sets    int
	Reps    []int
	Weights []float64
}

func ScalarSets(sets, reps int, weight float64) SetsSpec {
	return SetsSpec{
		Scalar:  true,
		Sets:    sets,
		Reps:    []int{reps},
		Weights: []float64{weight},
	}
}

func PerSet(reps []int, weights []float64) SetsSpec {
	return SetsSpec{
		Reps:    reps,
		Weights: weights,
	}
}

type setRow struct {
	setNumber int
	sets      int
	reps      int
	weight    float64
}

func (s SetsSpec) rows() ([]setRow, error) {
	if len(s.Reps) == 0 || len(s.Reps) != len(s.Weights) {
		return nil, ErrInvalidSets
	}
	for i := range s.Reps {
		if s.Reps[i] < 0 || s.Weights[i] < 0 {
			return nil, ErrInvalidSets
		}
	}

	if s.Scalar {
		if s.Sets <= 0 || len(s.Reps) != 1 {
			return nil, ErrInvalidSets
		}
		return []setRow{{setNumber: 1, sets: s.Sets, reps: s.Reps[0], weight: s.Weights[0]}}, nil
	}
	if s.Sets != 0 {
		return nil, ErrInvalidSets
	}

	rows := make([]setRow, len(s.Reps))
	for i := range s.Reps {
		rows[i] = setRow{setNumber: i + 1, sets: 1, reps: s.Reps[i], weight: s.Weights[i]}
	}
	return rows, nil
}

type LogRequest struct {
	Date     time.Time
	Category string
	MuscleID *int
	Exercise string
	Sets     SetsSpec
}

type ListParams struct {
	// Limit of 0 lists everything.
	Limit int
}

type MusclePickerPage struct {
	Category string           `json:"category"`
	Muscles  []catalog.Muscle `json:"muscles"`
}

type ExercisePickerPage struct {
	Category  string                    `json:"category"`
	MuscleID  int                       `json:"muscleId"`
	Muscle    string                    `json:"muscle"`
	Exercises []catalog.LibraryExercise `json:"exercises"`
	Today     string                    `json:"today"`
	// SetSlots numbers the empty per-set inputs on the log form.
	SetSlots []int `json:"-"`
}
