package catalog

import (
	"fmt"

	"github.com/2beens/fittrack/pkg"
)

var (
	ErrMuscleNotFound   = fmt.Errorf("muscle %w", pkg.ErrNotFound)
	ErrExerciseNotFound = fmt.Errorf("exercise %w", pkg.ErrNotFound)
	ErrInvalidMuscle    = fmt.Errorf("muscle category and name are required: %w", pkg.ErrBadRequest)
	ErrInvalidExercise  = fmt.Errorf("exercise muscle and name are required: %w", pkg.ErrBadRequest)
)

// UnknownMuscle is displayed for rows pointing to a muscle that no longer exists.
const UnknownMuscle = "Unknown"

type Muscle struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Name     string `json:"muscleName"`
}

// LibraryExercise is an exercise_library row, joined with its muscle when listed.
type LibraryExercise struct {
	ID         int    `json:"id"`
	MuscleID   int    `json:"muscleId"`
	Name       string `json:"exerciseName"`
	Category   string `json:"category,omitempty"`
	MuscleName string `json:"muscleName,omitempty"`
}

type AdminPage struct {
	Muscles         []Muscle          `json:"muscles"`
	Exercises       []LibraryExercise `json:"exercises"`
	MuscleSuccess   bool              `json:"muscleSuccess"`
	ExerciseSuccess bool              `json:"exerciseSuccess"`
	Failed          bool              `json:"failed"`
}

type AddMusclePage struct {
	Category string `json:"category"`
}
