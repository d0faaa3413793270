package fitness

import "time"

// Age returns the number of whole years between dob and today. Only calendar dates are
// compared, the time of day and location of both arguments are ignored.
func Age(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}
