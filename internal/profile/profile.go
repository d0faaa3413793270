package profile

import (
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/pkg"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile %w", pkg.ErrNotFound)
	ErrInvalidHeight   = fmt.Errorf("height must be positive: %w", pkg.ErrBadRequest)
)

type Profile struct {
	Name        string    `json:"name"`
	HeightCm    float64   `json:"height"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromConfig(p config.Profile) (Profile, error) {
	dob, err := p.DOB()
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Name:        p.Name,
		HeightCm:    p.HeightCm,
		DateOfBirth: dob,
	}, nil
}

// Page is the profile view model; the derived fields stay nil when they cannot be computed.
type Page struct {
	Profile       Profile  `json:"profile"`
	Age           *int     `json:"age"`
	CurrentWeight *float64 `json:"currentWeight"`
	BMI           *float64 `json:"bmi"`
	BMICategory   string   `json:"bmiCategory,omitempty"`
	Today         string   `json:"today"`
}

// UpdateRequest holds the optional parts of a profile update.
type UpdateRequest struct {
	HeightCm *float64
	Weight   *float64
	// Date the weight is recorded for.
	Date time.Time
}
