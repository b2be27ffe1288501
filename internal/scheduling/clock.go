package scheduling

import (
	"fmt"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour

	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// ClockTime is a time of day expressed as minutes from midnight.
// Keeping times of day as plain minutes avoids string slicing and makes
// window arithmetic cheap.
type ClockTime int

// ParseClock parses an HH:MM string into a ClockTime.
func ParseClock(value string) (ClockTime, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}

	return ClockTime(parsed.Hour()*minutesPerHour + parsed.Minute()), nil
}

// ClockOf extracts the time of day from a naive local datetime.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*minutesPerHour + t.Minute())
}

func (c ClockTime) Hour() int {
	return int(c) / minutesPerHour
}

func (c ClockTime) Minute() int {
	return int(c) % minutesPerHour
}

// String renders the clock time back as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Valid reports whether the clock time falls within a single day.
func (c ClockTime) Valid() bool {
	return c >= 0 && c < minutesPerDay
}

// DateOf truncates a naive local datetime to its calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two naive local datetimes fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DateKey renders the calendar date of t as YYYY-MM-DD, the key used for
// date exception lookups.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}
