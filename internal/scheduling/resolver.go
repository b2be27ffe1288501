package scheduling

import "time"

const (
	// WindowSourceException and WindowSourceWeekly identify which rule
	// produced a resolved day window.
	WindowSourceException = "exception"
	WindowSourceWeekly    = "weekly"
)

// DayWindow is the effective open/close window for one calendar date.
// Reason carries the exception's free text when an exception closed the day.
type DayWindow struct {
	IsOpen bool
	Open   ClockTime
	Close  ClockTime
	Source string
	Reason string
}

// ResolveDay determines whether the tenant is open on the given date and
// what the effective window is. A date exception wins entirely over the
// weekly entry, in both directions. Pure function of its inputs.
func ResolveDay(cfg CalendarConfig, date time.Time) DayWindow {
	if exception, ok := cfg.Exceptions[DateKey(date)]; ok {
		if !exception.IsOpen {
			return DayWindow{Source: WindowSourceException, Reason: exception.Reason}
		}

		return DayWindow{
			IsOpen: true,
			Open:   exception.Open,
			Close:  exception.Close,
			Source: WindowSourceException,
			Reason: exception.Reason,
		}
	}

	hours := cfg.Hours[date.Weekday()]
	if !hours.IsOpen {
		return DayWindow{Source: WindowSourceWeekly}
	}

	return DayWindow{
		IsOpen: true,
		Open:   hours.Open,
		Close:  hours.Close,
		Source: WindowSourceWeekly,
	}
}
