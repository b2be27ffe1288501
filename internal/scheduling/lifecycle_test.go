package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookly/internal/scheduling"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to scheduling.Status
		want     bool
	}{
		{scheduling.StatusPending, scheduling.StatusConfirmed, true},
		{scheduling.StatusConfirmed, scheduling.StatusInProgress, true},
		{scheduling.StatusInProgress, scheduling.StatusCompleted, true},
		{scheduling.StatusPending, scheduling.StatusCancelled, true},
		{scheduling.StatusPending, scheduling.StatusNoShow, true},
		{scheduling.StatusConfirmed, scheduling.StatusCancelled, true},
		{scheduling.StatusInProgress, scheduling.StatusNoShow, true},

		{scheduling.StatusPending, scheduling.StatusInProgress, false},
		{scheduling.StatusPending, scheduling.StatusCompleted, false},
		{scheduling.StatusConfirmed, scheduling.StatusPending, false},
		{scheduling.StatusCompleted, scheduling.StatusCancelled, false},
		{scheduling.StatusCancelled, scheduling.StatusPending, false},
		{scheduling.StatusNoShow, scheduling.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, scheduling.StatusPending.IsTerminal())
	assert.False(t, scheduling.StatusConfirmed.IsTerminal())
	assert.False(t, scheduling.StatusInProgress.IsTerminal())
	assert.True(t, scheduling.StatusCompleted.IsTerminal())
	assert.True(t, scheduling.StatusCancelled.IsTerminal())
	assert.True(t, scheduling.StatusNoShow.IsTerminal())
}

func TestStatusCountsForConflict(t *testing.T) {
	assert.True(t, scheduling.StatusPending.CountsForConflict())
	assert.True(t, scheduling.StatusConfirmed.CountsForConflict())
	assert.True(t, scheduling.StatusInProgress.CountsForConflict())
	assert.True(t, scheduling.StatusCompleted.CountsForConflict())
	assert.False(t, scheduling.StatusCancelled.CountsForConflict())
	assert.False(t, scheduling.StatusNoShow.CountsForConflict())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, scheduling.StatusPending, scheduling.InitialStatus)
	assert.True(t, scheduling.InitialStatus.Valid())
	assert.False(t, scheduling.Status("archived").Valid())
}
