package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly/internal/scheduling"
)

func openWindow(t *testing.T, open, close string) scheduling.DayWindow {
	t.Helper()

	return scheduling.DayWindow{
		IsOpen: true,
		Open:   clock(t, open),
		Close:  clock(t, close),
		Source: scheduling.WindowSourceWeekly,
	}
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	slots, err := scheduling.GenerateSlots(scheduling.DayWindow{}, 30, 5, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_Scenario(t *testing.T) {
	// open 09:00-18:00, duration 30, buffer 5, one booking 10:00-10:30
	existing := []scheduling.Appointment{
		{ID: "a1", Start: mondayAt(10, 0), End: mondayAt(10, 30), Status: scheduling.StatusConfirmed},
	}

	slots, err := scheduling.GenerateSlots(openWindow(t, "09:00", "18:00"), 30, 5, existing)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	byTime := map[string]scheduling.Slot{}
	for _, slot := range slots {
		byTime[slot.Time] = slot
	}

	assert.True(t, byTime["09:00"].Available)

	// [09:35,10:05) overlaps the 10:00-10:30 booking
	blocked := byTime["09:35"]
	assert.False(t, blocked.Available)
	assert.Equal(t, "booked", blocked.Reason)

	occupied, ok := byTime["10:10"]
	require.True(t, ok, "cursor lands at 10:10 after two slots with buffer")
	assert.False(t, occupied.Available)
	assert.Equal(t, "booked", occupied.Reason)

	next := byTime["10:45"]
	assert.True(t, next.Available, "buffer advances the cursor past the occupied slot")

	// no slot may end past closing
	last := slots[len(slots)-1]
	lastStart, err := scheduling.ParseClock(last.Time)
	require.NoError(t, err)
	assert.LessOrEqual(t, int(lastStart)+30, int(clock(t, "18:00")))
}

func TestGenerateSlots_Spacing(t *testing.T) {
	slots, err := scheduling.GenerateSlots(openWindow(t, "09:00", "12:00"), 30, 5, nil)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	previous := scheduling.ClockTime(-1)
	for _, slot := range slots {
		start, err := scheduling.ParseClock(slot.Time)
		require.NoError(t, err)

		if previous >= 0 {
			assert.Equal(t, 35, int(start-previous), "slots spaced by duration+buffer")
		}

		assert.Greater(t, int(start), int(previous), "strictly increasing start times")
		previous = start
	}
}

func TestGenerateSlots_ZeroBuffer(t *testing.T) {
	slots, err := scheduling.GenerateSlots(openWindow(t, "09:00", "10:00"), 30, 0, nil)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "09:30", slots[1].Time)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	_, err := scheduling.GenerateSlots(openWindow(t, "09:00", "18:00"), 0, 5, nil)
	assert.ErrorIs(t, err, scheduling.ErrInvalidDuration)

	_, err = scheduling.GenerateSlots(openWindow(t, "09:00", "18:00"), 30, -1, nil)
	assert.ErrorIs(t, err, scheduling.ErrInvalidDuration)
}

// Every slot marked available must independently pass Validate for the same
// window: the two read paths stay consistent.
func TestGenerateSlots_AvailableSlotsPassValidation(t *testing.T) {
	existing := []scheduling.Appointment{
		{ID: "a1", Start: mondayAt(10, 0), End: mondayAt(10, 30), Status: scheduling.StatusConfirmed},
		{ID: "a2", Start: mondayAt(14, 0), End: mondayAt(15, 0), Status: scheduling.StatusPending},
		{ID: "a3", Start: mondayAt(16, 0), End: mondayAt(16, 30), Status: scheduling.StatusCancelled},
	}

	cfg := calendar(t)
	window := scheduling.ResolveDay(cfg, monday)

	slots, err := scheduling.GenerateSlots(window, 30, 5, existing)
	require.NoError(t, err)

	for _, slot := range slots {
		if !slot.Available {
			continue
		}

		start, err := scheduling.ParseClock(slot.Time)
		require.NoError(t, err)

		proposed := mondayAt(start.Hour(), start.Minute())
		result, err := scheduling.Validate(cfg, existing, proposed, proposed.Add(30*time.Minute), testNow, "")
		require.NoError(t, err)

		assert.True(t, result.Ok(), "slot %s marked available but validate rejected: %+v", slot.Time, result.Rejection)
	}
}
