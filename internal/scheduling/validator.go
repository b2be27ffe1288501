package scheduling

import (
	"fmt"
	"math"
	"time"
)

// RejectReason is a stable machine-readable code for a booking rejection.
// Callers key user-facing copy off these, so they must never change.
type RejectReason string

const (
	ReasonDayClosed         RejectReason = "DAY_CLOSED"
	ReasonOutsideHours      RejectReason = "OUTSIDE_HOURS"
	ReasonTooSoon           RejectReason = "TOO_SOON"
	ReasonTooFar            RejectReason = "TOO_FAR"
	ReasonSameDayDisallowed RejectReason = "SAME_DAY_DISALLOWED"
	ReasonConflict          RejectReason = "CONFLICT"

	// ReasonConfigNotFound is reserved for the calling layer: a tenant with
	// no booking policy configured is a bootstrap problem, never something
	// the engine defaults around.
	ReasonConfigNotFound RejectReason = "CONFIG_NOT_FOUND"
)

// Rejection is an expected negative validation outcome. It carries the code
// plus the concrete boundary values that tripped the rule, so the caller can
// render a specific message without parsing prose.
type Rejection struct {
	Reason  RejectReason `json:"reason"`
	Message string       `json:"message"`

	Open           string  `json:"open,omitempty"`
	Close          string  `json:"close,omitempty"`
	RequiredHours  float64 `json:"required_hours,omitempty"`
	RequestedHours float64 `json:"requested_hours,omitempty"`
	MaxDays        int     `json:"max_days,omitempty"`
	RequestedDays  int     `json:"requested_days,omitempty"`
	ConflictStart  string  `json:"conflict_start,omitempty"`
	ConflictEnd    string  `json:"conflict_end,omitempty"`
}

// Result is the outcome of Validate: Ok, or a single rejection from the
// first failing rule. Rejections are normal negative results, not errors.
type Result struct {
	Rejection *Rejection
}

func (r Result) Ok() bool {
	return r.Rejection == nil
}

func ok() Result {
	return Result{}
}

func rejected(rejection Rejection) Result {
	return Result{Rejection: &rejection}
}

// Appointment is the engine's view of an already-committed booking, enough
// to run conflict checks against.
type Appointment struct {
	ID     string
	Start  time.Time
	End    time.Time
	Status Status
}

// Validate applies the full booking rule chain to a proposed interval. The
// rules run in a fixed order and the first failure determines the rejection
// reason, keeping error messages deterministic:
//
//	day resolution, time-of-day containment, advance-notice floor,
//	advance-notice ceiling, same-day policy, conflict check.
//
// existing is the tenant's committed appointments around the proposed date;
// the engine itself drops cancelled/no-show entries and, when rescheduling,
// the appointment identified by excludeID. A malformed interval is a
// precondition violation returned as an error, never as a rejection. No side
// effects; persistence is the caller's job.
func Validate(cfg CalendarConfig, existing []Appointment, start, end, now time.Time, excludeID string) (Result, error) {
	if !end.After(start) {
		return Result{}, ErrInvalidInterval
	}

	window := ResolveDay(cfg, start)
	if !window.IsOpen {
		message := fmt.Sprintf("closed on %s", DateKey(start))
		if window.Reason != "" {
			message += ": " + window.Reason
		}

		return rejected(Rejection{Reason: ReasonDayClosed, Message: message}), nil
	}

	startClock := ClockOf(start)
	endClock := ClockOf(end)

	if startClock < window.Open || endClock > window.Close || !SameDate(start, end) {
		return rejected(Rejection{
			Reason: ReasonOutsideHours,
			Message: fmt.Sprintf("requested %s-%s is outside business hours %s-%s",
				startClock, endClock, window.Open, window.Close),
			Open:  window.Open.String(),
			Close: window.Close.String(),
		}), nil
	}

	policy := cfg.Policy
	leadHours := start.Sub(now).Hours()

	if leadHours < float64(policy.MinAdvanceBookingHours) {
		return rejected(Rejection{
			Reason: ReasonTooSoon,
			Message: fmt.Sprintf("requires at least %d hours advance notice, requested %.1f hours",
				policy.MinAdvanceBookingHours, leadHours),
			RequiredHours:  float64(policy.MinAdvanceBookingHours),
			RequestedHours: leadHours,
		}), nil
	}

	leadDays := int(math.Ceil(leadHours / 24))
	if leadDays > policy.MaxAdvanceBookingDays {
		return rejected(Rejection{
			Reason: ReasonTooFar,
			Message: fmt.Sprintf("bookings open at most %d days ahead, requested %d days",
				policy.MaxAdvanceBookingDays, leadDays),
			MaxDays:       policy.MaxAdvanceBookingDays,
			RequestedDays: leadDays,
		}), nil
	}

	if !policy.AllowSameDayBooking && SameDate(start, now) {
		return rejected(Rejection{
			Reason:  ReasonSameDayDisallowed,
			Message: fmt.Sprintf("same-day booking is not allowed for %s", DateKey(start)),
		}), nil
	}

	for _, appointment := range existing {
		if appointment.ID == excludeID && excludeID != "" {
			continue
		}

		if !appointment.Status.CountsForConflict() {
			continue
		}

		if Overlaps(start, end, appointment.Start, appointment.End) {
			return rejected(Rejection{
				Reason: ReasonConflict,
				Message: fmt.Sprintf("overlaps an existing appointment from %s to %s",
					ClockOf(appointment.Start), ClockOf(appointment.End)),
				ConflictStart: appointment.Start.Format(time.DateTime),
				ConflictEnd:   appointment.End.Format(time.DateTime),
			}), nil
		}
	}

	return ok(), nil
}
