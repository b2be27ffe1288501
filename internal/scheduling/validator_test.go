package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly/internal/scheduling"
)

// monday 2024-08-19 is open 09:00-18:00 in the test calendar.
var (
	testNow = time.Date(2024, 8, 12, 8, 0, 0, 0, time.UTC)
	monday  = time.Date(2024, 8, 19, 0, 0, 0, 0, time.UTC)
)

func mondayAt(hour, minute int) time.Time {
	return time.Date(2024, 8, 19, hour, minute, 0, 0, time.UTC)
}

func TestValidate_RuleChain(t *testing.T) {
	sunday := time.Date(2024, 8, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		cfg        scheduling.CalendarConfig
		existing   []scheduling.Appointment
		start, end time.Time
		now        time.Time
		wantOk     bool
		wantReason scheduling.RejectReason
	}{
		{
			name:   "valid booking on open day",
			cfg:    calendar(t),
			start:  mondayAt(10, 0),
			end:    mondayAt(10, 30),
			now:    testNow,
			wantOk: true,
		},
		{
			name:       "closed weekday",
			cfg:        calendar(t),
			start:      sunday,
			end:        sunday.Add(30 * time.Minute),
			now:        testNow,
			wantReason: scheduling.ReasonDayClosed,
		},
		{
			name: "exception closes the day",
			cfg: calendar(t, scheduling.DateException{
				Date: monday, IsOpen: false, Reason: "maintenance",
			}),
			start:      mondayAt(10, 0),
			end:        mondayAt(10, 30),
			now:        testNow,
			wantReason: scheduling.ReasonDayClosed,
		},
		{
			name:       "starts before opening",
			cfg:        calendar(t),
			start:      mondayAt(8, 30),
			end:        mondayAt(9, 0),
			now:        testNow,
			wantReason: scheduling.ReasonOutsideHours,
		},
		{
			name:       "ends after closing",
			cfg:        calendar(t),
			start:      mondayAt(17, 45),
			end:        mondayAt(18, 15),
			now:        testNow,
			wantReason: scheduling.ReasonOutsideHours,
		},
		{
			name:   "ends exactly at closing",
			cfg:    calendar(t),
			start:  mondayAt(17, 30),
			end:    mondayAt(18, 0),
			now:    testNow,
			wantOk: true,
		},
		{
			name:       "insufficient advance notice",
			cfg:        calendar(t),
			start:      mondayAt(9, 0),
			end:        mondayAt(9, 30),
			now:        mondayAt(8, 0),
			wantReason: scheduling.ReasonTooSoon,
		},
		{
			name:       "conflicting appointment",
			cfg:        calendar(t),
			existing:   []scheduling.Appointment{{ID: "a1", Start: mondayAt(10, 0), End: mondayAt(10, 30), Status: scheduling.StatusConfirmed}},
			start:      mondayAt(10, 15),
			end:        mondayAt(10, 45),
			now:        testNow,
			wantReason: scheduling.ReasonConflict,
		},
		{
			name:     "cancelled appointment does not conflict",
			cfg:      calendar(t),
			existing: []scheduling.Appointment{{ID: "a1", Start: mondayAt(10, 0), End: mondayAt(10, 30), Status: scheduling.StatusCancelled}},
			start:    mondayAt(10, 0),
			end:      mondayAt(10, 30),
			now:      testNow,
			wantOk:   true,
		},
		{
			name:     "no-show appointment does not conflict",
			cfg:      calendar(t),
			existing: []scheduling.Appointment{{ID: "a1", Start: mondayAt(10, 0), End: mondayAt(10, 30), Status: scheduling.StatusNoShow}},
			start:    mondayAt(10, 0),
			end:      mondayAt(10, 30),
			now:      testNow,
			wantOk:   true,
		},
		{
			name:     "back to back booking is legal",
			cfg:      calendar(t),
			existing: []scheduling.Appointment{{ID: "a1", Start: mondayAt(10, 0), End: mondayAt(10, 30), Status: scheduling.StatusConfirmed}},
			start:    mondayAt(10, 30),
			end:      mondayAt(11, 0),
			now:      testNow,
			wantOk:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scheduling.Validate(tt.cfg, tt.existing, tt.start, tt.end, tt.now, "")
			require.NoError(t, err)

			if tt.wantOk {
				assert.True(t, result.Ok(), "expected Ok, got %+v", result.Rejection)
			} else {
				require.NotNil(t, result.Rejection)
				assert.Equal(t, tt.wantReason, result.Rejection.Reason)
				assert.NotEmpty(t, result.Rejection.Message)
			}
		})
	}
}

func TestValidate_AdvanceNotice(t *testing.T) {
	t.Run("too soon carries boundary values", func(t *testing.T) {
		// minAdvanceBookingHours=2, now=08:00, start=09:00 on the same day
		result, err := scheduling.Validate(calendar(t), nil, mondayAt(9, 0), mondayAt(9, 30), mondayAt(8, 0), "")
		require.NoError(t, err)

		require.NotNil(t, result.Rejection)
		assert.Equal(t, scheduling.ReasonTooSoon, result.Rejection.Reason)
		assert.Equal(t, float64(2), result.Rejection.RequiredHours)
		assert.InDelta(t, 1.0, result.Rejection.RequestedHours, 0.01)
	})

	t.Run("thirty days out is accepted", func(t *testing.T) {
		now := time.Date(2024, 8, 19, 10, 0, 0, 0, time.UTC)
		start := now.AddDate(0, 0, 30)

		result, err := scheduling.Validate(calendar(t), nil, start, start.Add(30*time.Minute), now, "")
		require.NoError(t, err)
		assert.True(t, result.Ok())
	})

	t.Run("thirty one days out is too far", func(t *testing.T) {
		now := time.Date(2024, 8, 19, 10, 0, 0, 0, time.UTC)
		start := now.AddDate(0, 0, 31) // lands on a Thursday

		result, err := scheduling.Validate(calendar(t), nil, start, start.Add(30*time.Minute), now, "")
		require.NoError(t, err)

		require.NotNil(t, result.Rejection)
		assert.Equal(t, scheduling.ReasonTooFar, result.Rejection.Reason)
		assert.Equal(t, 30, result.Rejection.MaxDays)
		assert.Equal(t, 31, result.Rejection.RequestedDays)
	})
}

func TestValidate_SameDayPolicy(t *testing.T) {
	policy := defaultPolicy()
	policy.AllowSameDayBooking = false
	policy.MinAdvanceBookingHours = 0

	cfg, err := scheduling.NewCalendarConfig(weekdayHours(t), nil, policy)
	require.NoError(t, err)

	result, err := scheduling.Validate(cfg, nil, mondayAt(15, 0), mondayAt(15, 30), mondayAt(8, 0), "")
	require.NoError(t, err)

	require.NotNil(t, result.Rejection)
	assert.Equal(t, scheduling.ReasonSameDayDisallowed, result.Rejection.Reason)

	// the same window a day earlier is fine
	result, err = scheduling.Validate(cfg, nil, mondayAt(15, 0), mondayAt(15, 30), mondayAt(8, 0).AddDate(0, 0, -1), "")
	require.NoError(t, err)
	assert.True(t, result.Ok())
}

func TestValidate_RescheduleSelfExclusion(t *testing.T) {
	existing := []scheduling.Appointment{
		{ID: "appt-1", Start: mondayAt(10, 0), End: mondayAt(10, 30), Status: scheduling.StatusConfirmed},
	}

	// moving appt-1 to a window that only conflicts with its own record
	result, err := scheduling.Validate(calendar(t), existing, mondayAt(10, 15), mondayAt(10, 45), testNow, "appt-1")
	require.NoError(t, err)
	assert.True(t, result.Ok())

	// without the exclusion the same move conflicts
	result, err = scheduling.Validate(calendar(t), existing, mondayAt(10, 15), mondayAt(10, 45), testNow, "")
	require.NoError(t, err)
	require.NotNil(t, result.Rejection)
	assert.Equal(t, scheduling.ReasonConflict, result.Rejection.Reason)
}

func TestValidate_Idempotent(t *testing.T) {
	existing := []scheduling.Appointment{
		{ID: "a1", Start: mondayAt(11, 0), End: mondayAt(11, 30), Status: scheduling.StatusPending},
	}

	first, err := scheduling.Validate(calendar(t), existing, mondayAt(11, 15), mondayAt(11, 45), testNow, "")
	require.NoError(t, err)

	second, err := scheduling.Validate(calendar(t), existing, mondayAt(11, 15), mondayAt(11, 45), testNow, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidate_MalformedInterval(t *testing.T) {
	_, err := scheduling.Validate(calendar(t), nil, mondayAt(10, 0), mondayAt(10, 0), testNow, "")
	assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)

	_, err = scheduling.Validate(calendar(t), nil, mondayAt(10, 30), mondayAt(10, 0), testNow, "")
	assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)
}
