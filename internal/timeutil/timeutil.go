package timeutil

import (
	"time"

	"fitclub/internal/apperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperr.Newf(apperr.KindFormat, "invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseTime parses a HH:MM clock time string.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, apperr.Newf(apperr.KindFormat, "invalid time %q, use HH:MM", s)
	}
	return t, nil
}

// DayOfWeek returns 0..6 with 0=Sunday.
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// AddMinutes shifts a clock time forward by n minutes.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// DayName converts a 0..6 day number to its English name.
func DayName(day int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day < 0 || day > 6 {
		return "Invalid"
	}
	return names[day]
}
