package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/momentum/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// CivilDate drops the clock reading from t and returns its calendar date at UTC midnight.
// All date arithmetic in momentum happens on these values so day steps never cross a DST change.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ISOWeekdayOffset returns 0 for Monday through 6 for Sunday.
func ISOWeekdayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfWeek returns the Monday of the ISO week containing day.
func StartOfWeek(day time.Time) time.Time {
	d := CivilDate(day)
	return d.AddDate(0, 0, -ISOWeekdayOffset(d))
}

// StartOfMonth returns the first day of the month containing day.
func StartOfMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	return int(math.Round(CivilDate(b).Sub(CivilDate(a)).Hours() / 24))
}
