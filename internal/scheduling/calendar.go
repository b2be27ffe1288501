package scheduling

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinSlotDurationMinutes and MaxSlotDurationMinutes bound the sane range
	// for a single appointment duration.
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480
)

var (
	ErrInvalidInterval = errors.New("interval end must be after start")
	ErrInvalidDuration = errors.New("duration is out of range")
	ErrInvalidWeekday  = errors.New("weekday must be between 0 and 6")
	ErrInvalidWindow   = errors.New("open time must be before close time")
	ErrInvalidPolicy   = errors.New("booking policy values must not be negative")
)

// WeeklyHours is the default open/close schedule for one day of week.
// Weekday follows time.Weekday numbering (Sunday = 0).
type WeeklyHours struct {
	Weekday time.Weekday
	IsOpen  bool
	Open    ClockTime
	Close   ClockTime
}

// Validate checks the per-day invariant: an open day carries an ordered window.
func (h WeeklyHours) Validate() error {
	if h.Weekday < time.Sunday || h.Weekday > time.Saturday {
		return ErrInvalidWeekday
	}

	if h.IsOpen && (!h.Open.Valid() || !h.Close.Valid() || h.Open >= h.Close) {
		return fmt.Errorf("weekday %d: %w", h.Weekday, ErrInvalidWindow)
	}

	return nil
}

// DateException is a one-off override for a specific calendar date. When
// present it fully replaces the weekly entry for that date, including
// forcing an otherwise-open weekday closed.
type DateException struct {
	Date   time.Time
	IsOpen bool
	Open   ClockTime
	Close  ClockTime
	Reason string
}

func (e DateException) Validate() error {
	if e.IsOpen && (!e.Open.Valid() || !e.Close.Valid() || e.Open >= e.Close) {
		return fmt.Errorf("exception %s: %w", DateKey(e.Date), ErrInvalidWindow)
	}

	return nil
}

// BookingPolicy holds the per-tenant booking rules applied by Validate.
type BookingPolicy struct {
	DefaultDurationMinutes int
	BufferMinutes          int
	MaxAdvanceBookingDays  int
	MinAdvanceBookingHours int
	AllowSameDayBooking    bool
}

func (p BookingPolicy) Validate() error {
	if p.BufferMinutes < 0 || p.MaxAdvanceBookingDays < 0 || p.MinAdvanceBookingHours < 0 {
		return ErrInvalidPolicy
	}

	if p.DefaultDurationMinutes < MinSlotDurationMinutes || p.DefaultDurationMinutes > MaxSlotDurationMinutes {
		return ErrInvalidDuration
	}

	return nil
}

// CalendarConfig is an immutable-per-request snapshot of one tenant's
// calendar: weekly defaults, dated exceptions and booking policy. The caller
// assembles it from storage; the engine never loads anything itself.
type CalendarConfig struct {
	Hours      [7]WeeklyHours
	Exceptions map[string]DateException
	Policy     BookingPolicy
}

// NewCalendarConfig assembles a snapshot from its parts, indexing exceptions
// by calendar date. Hours entries land on their own weekday regardless of
// slice order; days without an entry stay closed.
func NewCalendarConfig(hours []WeeklyHours, exceptions []DateException, policy BookingPolicy) (CalendarConfig, error) {
	cfg := CalendarConfig{
		Exceptions: make(map[string]DateException, len(exceptions)),
		Policy:     policy,
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		cfg.Hours[day] = WeeklyHours{Weekday: day}
	}

	for _, entry := range hours {
		if err := entry.Validate(); err != nil {
			return CalendarConfig{}, err
		}

		cfg.Hours[entry.Weekday] = entry
	}

	for _, exception := range exceptions {
		if err := exception.Validate(); err != nil {
			return CalendarConfig{}, err
		}

		cfg.Exceptions[DateKey(exception.Date)] = exception
	}

	if err := policy.Validate(); err != nil {
		return CalendarConfig{}, err
	}

	return cfg, nil
}
