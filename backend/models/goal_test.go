package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_Table(t *testing.T) {
	statuses := []GoalStatus{StatusActive, StatusCompleted, StatusPaused, StatusAbandoned}
	allowed := map[[2]GoalStatus]bool{
		{StatusActive, StatusCompleted}: true,
		{StatusActive, StatusPaused}:    true,
		{StatusPaused, StatusActive}:    true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]GoalStatus{from, to}]
			assert.Equalf(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestApplyStatusChange_CompletedIsTerminal(t *testing.T) {
	for _, to := range []GoalStatus{StatusActive, StatusPaused, StatusAbandoned, StatusCompleted} {
		goal := Goal{GoalID: "g1", Status: StatusCompleted}
		err := goal.ApplyStatusChange(to)

		var invalid *InvalidTransitionError
		assert.Truef(t, errors.As(err, &invalid), "completed -> %s must be rejected", to)
		assert.Equal(t, StatusCompleted, goal.Status, "a rejected change must not touch the goal")
	}
}

func TestApplyStatusChange_PauseAndResume(t *testing.T) {
	goal := Goal{Status: StatusActive}

	assert.NoError(t, goal.ApplyStatusChange(StatusPaused))
	assert.Equal(t, StatusPaused, goal.Status)

	assert.NoError(t, goal.ApplyStatusChange(StatusActive))
	assert.Equal(t, StatusActive, goal.Status)

	assert.NoError(t, goal.ApplyStatusChange(StatusCompleted))
	assert.Equal(t, StatusCompleted, goal.Status)
}

func TestComputeProgress(t *testing.T) {
	goal := Goal{GoalID: "g1", Title: "Read the textbook", TargetHours: 10, CurrentHours: 7.5, Status: StatusActive}
	progress := goal.ComputeProgress(3)

	assert.Equal(t, 75.0, progress.ProgressPercent)
	assert.Equal(t, 2.5, progress.RemainingHours)
	assert.Equal(t, 3, progress.RecordsCount)
	assert.Equal(t, "active", progress.Status)
}

func TestComputeProgress_ClampAndZeroTarget(t *testing.T) {
	over := Goal{TargetHours: 10, CurrentHours: 25}
	assert.Equal(t, 100.0, over.ComputeProgress(0).ProgressPercent)
	assert.Equal(t, 0.0, over.ComputeProgress(0).RemainingHours)

	// Defensive: a non-positive target must not divide by zero.
	broken := Goal{TargetHours: 0, CurrentHours: 5}
	assert.Equal(t, 0.0, broken.ComputeProgress(0).ProgressPercent)

	negative := Goal{TargetHours: -3, CurrentHours: 5}
	assert.Equal(t, 0.0, negative.ComputeProgress(0).ProgressPercent)
}

func TestComputeProgress_HundredOnlyWhenMet(t *testing.T) {
	// 9.98/10 rounds to 100 but the goal is not met; it must not show done.
	almost := Goal{TargetHours: 10, CurrentHours: 9.98}
	assert.Less(t, almost.ComputeProgress(0).ProgressPercent, 100.0)

	exact := Goal{TargetHours: 10, CurrentHours: 10}
	assert.Equal(t, 100.0, exact.ComputeProgress(0).ProgressPercent)
}

func TestComputeProgress_RemainingNeverNegative(t *testing.T) {
	for _, current := range []float64{0, 5, 10, 10.01, 100} {
		goal := Goal{TargetHours: 10, CurrentHours: current}
		assert.GreaterOrEqual(t, goal.ComputeProgress(0).RemainingHours, 0.0)

		percent := goal.ComputeProgress(0).ProgressPercent
		assert.GreaterOrEqual(t, percent, 0.0)
		assert.LessOrEqual(t, percent, 100.0)
	}
}
