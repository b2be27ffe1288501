package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookly/internal/scheduling"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 8, 19, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "back to back does not overlap",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 30), bEnd: at(11, 0),
			want: false,
		},
		{
			name:   "partial overlap",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 15), bEnd: at(10, 45),
			want: true,
		},
		{
			name:   "contained interval",
			aStart: at(9, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(10, 30),
			want: true,
		},
		{
			name:   "identical intervals",
			aStart: at(10, 0), aEnd: at(10, 30),
			bStart: at(10, 0), bEnd: at(10, 30),
			want: true,
		},
		{
			name:   "disjoint intervals",
			aStart: at(8, 0), aEnd: at(9, 0),
			bStart: at(14, 0), bEnd: at(15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scheduling.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// half-open overlap is symmetric
			mirrored := scheduling.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			assert.Equal(t, got, mirrored)
		})
	}
}

func TestClockOverlaps(t *testing.T) {
	assert.False(t, scheduling.ClockOverlaps(600, 630, 630, 660))
	assert.True(t, scheduling.ClockOverlaps(600, 630, 615, 645))
	assert.True(t, scheduling.ClockOverlaps(615, 645, 600, 630))
}
