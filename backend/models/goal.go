package models

import (
	"fmt"
	"math"
	"time"
)

type GoalStatus string

const (
	StatusActive    GoalStatus = "active"
	StatusCompleted GoalStatus = "completed"
	StatusPaused    GoalStatus = "paused"
	StatusAbandoned GoalStatus = "abandoned"
)

// Goal is a target study commitment. CurrentHours is an aggregate of the
// durations of the records associated via GoalID and is recalculated
// server-side before progress is reported.
type Goal struct {
	GoalID       string     `gorm:"primaryKey" json:"goal_id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description"`
	TargetHours  float64    `gorm:"not null" json:"target_hours"`
	CurrentHours float64    `json:"current_hours"`
	Status       GoalStatus `gorm:"index;default:active" json:"status"`
	TargetDate   string     `json:"target_date,omitempty"`
	Subject      string     `json:"subject"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type GoalCreate struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"max=1000"`
	TargetHours float64 `json:"target_hours" validate:"required,gt=0"`
	TargetDate  string  `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Subject     string  `json:"subject" validate:"max=100"`
}

type GoalUpdate struct {
	Title       *string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=1000"`
	TargetHours *float64    `json:"target_hours" validate:"omitempty,gt=0"`
	Status      *GoalStatus `json:"status" validate:"omitempty,oneof=active completed paused abandoned"`
	TargetDate  *string     `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Subject     *string     `json:"subject" validate:"omitempty,max=100"`
}

// GoalProgress is the derived completion view of a goal.
type GoalProgress struct {
	GoalID          string  `json:"goal_id"`
	Title           string  `json:"title"`
	TargetHours     float64 `json:"target_hours"`
	CurrentHours    float64 `json:"current_hours"`
	ProgressPercent float64 `json:"progress_percent"`
	RemainingHours  float64 `json:"remaining_hours"`
	Status          string  `json:"status"`
	RecordsCount    int     `json:"records_count"`
}

// allowedTransitions is the single source of truth for which status changes
// this client offers. The server does not consult it: "abandoned" stays
// reachable through direct API use, and the server remains the final
// authority either way.
var allowedTransitions = map[GoalStatus][]GoalStatus{
	StatusActive: {StatusCompleted, StatusPaused},
	StatusPaused: {StatusActive},
}

// InvalidTransitionError reports a status change outside the transition
// table. It is raised locally, before any request is sent.
type InvalidTransitionError struct {
	From GoalStatus
	To   GoalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid goal status transition: %s -> %s", e.From, e.To)
}

// CanTransition reports whether from -> to is an allowed status change.
func (from GoalStatus) CanTransition(to GoalStatus) bool {
	for _, dest := range allowedTransitions[from] {
		if dest == to {
			return true
		}
	}
	return false
}

// AvailableTransitions lists the statuses reachable from the current one.
func (from GoalStatus) AvailableTransitions() []GoalStatus {
	return allowedTransitions[from]
}

// ApplyStatusChange moves the goal to the requested status, or returns an
// InvalidTransitionError leaving the goal untouched.
func (g *Goal) ApplyStatusChange(to GoalStatus) error {
	if !g.Status.CanTransition(to) {
		return &InvalidTransitionError{From: g.Status, To: to}
	}
	g.Status = to
	return nil
}

// ComputeProgress derives the completion view for the goal. The percentage
// is rounded and clamped to [0,100]; a non-positive target yields 0 rather
// than dividing by zero. 100 is reserved for goals whose target is actually
// met, so 99.6% does not round up into a false "done".
func (g *Goal) ComputeProgress(recordsCount int) GoalProgress {
	var percent float64
	if g.TargetHours > 0 {
		percent = math.Round(g.CurrentHours / g.TargetHours * 100)
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		if percent == 100 && g.CurrentHours < g.TargetHours {
			percent = 99
		}
	}

	remaining := g.TargetHours - g.CurrentHours
	if remaining < 0 {
		remaining = 0
	}

	return GoalProgress{
		GoalID:          g.GoalID,
		Title:           g.Title,
		TargetHours:     g.TargetHours,
		CurrentHours:    g.CurrentHours,
		ProgressPercent: percent,
		RemainingHours:  math.Round(remaining*100) / 100,
		Status:          string(g.Status),
		RecordsCount:    recordsCount,
	}
}
