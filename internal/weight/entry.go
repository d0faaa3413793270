package weight

import "time"

// Entry is a single day's body weight in kilograms. There is at most one per date.
type Entry struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

type FormPage struct {
	Today  string `json:"today"`
	Latest *Entry `json:"latest"`
}
