package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly/internal/scheduling"
)

func clock(t *testing.T, value string) scheduling.ClockTime {
	t.Helper()

	parsed, err := scheduling.ParseClock(value)
	require.NoError(t, err)

	return parsed
}

// weekdayHours opens Monday through Friday 09:00-18:00.
func weekdayHours(t *testing.T) []scheduling.WeeklyHours {
	t.Helper()

	hours := []scheduling.WeeklyHours{}
	for day := time.Monday; day <= time.Friday; day++ {
		hours = append(hours, scheduling.WeeklyHours{
			Weekday: day,
			IsOpen:  true,
			Open:    clock(t, "09:00"),
			Close:   clock(t, "18:00"),
		})
	}

	return hours
}

func defaultPolicy() scheduling.BookingPolicy {
	return scheduling.BookingPolicy{
		DefaultDurationMinutes: 30,
		BufferMinutes:          5,
		MaxAdvanceBookingDays:  30,
		MinAdvanceBookingHours: 2,
		AllowSameDayBooking:    true,
	}
}

func calendar(t *testing.T, exceptions ...scheduling.DateException) scheduling.CalendarConfig {
	t.Helper()

	cfg, err := scheduling.NewCalendarConfig(weekdayHours(t), exceptions, defaultPolicy())
	require.NoError(t, err)

	return cfg
}

func TestResolveDay(t *testing.T) {
	monday := time.Date(2024, 8, 19, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 8, 18, 0, 0, 0, 0, time.UTC)

	t.Run("weekly open day", func(t *testing.T) {
		window := scheduling.ResolveDay(calendar(t), monday)

		assert.True(t, window.IsOpen)
		assert.Equal(t, "09:00", window.Open.String())
		assert.Equal(t, "18:00", window.Close.String())
		assert.Equal(t, scheduling.WindowSourceWeekly, window.Source)
	})

	t.Run("weekly closed day", func(t *testing.T) {
		window := scheduling.ResolveDay(calendar(t), sunday)

		assert.False(t, window.IsOpen)
		assert.Equal(t, scheduling.WindowSourceWeekly, window.Source)
	})

	t.Run("exception forces open weekday closed", func(t *testing.T) {
		cfg := calendar(t, scheduling.DateException{
			Date:   monday,
			IsOpen: false,
			Reason: "public holiday",
		})

		window := scheduling.ResolveDay(cfg, monday)

		assert.False(t, window.IsOpen)
		assert.Equal(t, scheduling.WindowSourceException, window.Source)
		assert.Equal(t, "public holiday", window.Reason)
	})

	t.Run("exception forces closed weekday open", func(t *testing.T) {
		cfg := calendar(t, scheduling.DateException{
			Date:   sunday,
			IsOpen: true,
			Open:   clock(t, "10:00"),
			Close:  clock(t, "14:00"),
		})

		window := scheduling.ResolveDay(cfg, sunday)

		assert.True(t, window.IsOpen)
		assert.Equal(t, "10:00", window.Open.String())
		assert.Equal(t, "14:00", window.Close.String())
		assert.Equal(t, scheduling.WindowSourceException, window.Source)
	})

	t.Run("exception overrides window on open day", func(t *testing.T) {
		cfg := calendar(t, scheduling.DateException{
			Date:   monday,
			IsOpen: true,
			Open:   clock(t, "12:00"),
			Close:  clock(t, "16:00"),
		})

		window := scheduling.ResolveDay(cfg, monday)

		assert.True(t, window.IsOpen)
		assert.Equal(t, "12:00", window.Open.String())
		assert.Equal(t, "16:00", window.Close.String())
	})

	t.Run("exception applies only to its own date", func(t *testing.T) {
		cfg := calendar(t, scheduling.DateException{Date: monday, IsOpen: false})

		nextMonday := monday.AddDate(0, 0, 7)
		window := scheduling.ResolveDay(cfg, nextMonday)

		assert.True(t, window.IsOpen)
		assert.Equal(t, scheduling.WindowSourceWeekly, window.Source)
	})
}
