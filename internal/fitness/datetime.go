package fitness

import (
	"fmt"
	"time"
)

// DateTime is the display form of a timestamp, shared by every rendered row.
type DateTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// FormatDateTime renders ts as YYYY-MM-DD plus a 12-hour clock, e.g. "4:30 PM".
func FormatDateTime(ts time.Time) DateTime {
	hour := ts.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return DateTime{
		Date: ts.Format("2006-01-02"),
		Time: fmt.Sprintf("%d:%02d %s", hour, ts.Minute(), period),
	}
}
