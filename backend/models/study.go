package models

import "time"

// StudyRecord is one logged study session. Calendar dates travel as
// YYYY-MM-DD strings end to end, matching the wire format.
type StudyRecord struct {
	RecordID        string    `gorm:"primaryKey" json:"record_id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	StudyDate       string    `gorm:"index;not null" json:"study_date"`
	Subject         string    `gorm:"not null" json:"subject"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	StartTime       string    `json:"start_time,omitempty"`
	EndTime         string    `json:"end_time,omitempty"`
	Memo            string    `json:"memo"`
	GoalID          string    `gorm:"index" json:"goal_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type StudyRecordCreate struct {
	StudyDate       string `json:"study_date" validate:"required,datetime=2006-01-02"`
	Subject         string `json:"subject" validate:"required,min=1,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0,lte=1440"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Memo            string `json:"memo" validate:"max=1000"`
	GoalID          string `json:"goal_id"`
}

// StudyRecordUpdate carries a partial update; nil fields are left untouched.
type StudyRecordUpdate struct {
	StudyDate       *string `json:"study_date" validate:"omitempty,datetime=2006-01-02"`
	Subject         *string `json:"subject" validate:"omitempty,min=1,max=100"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0,lte=1440"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Memo            *string `json:"memo" validate:"omitempty,max=1000"`
	GoalID          *string `json:"goal_id"`
}

// CalendarDay is the per-date rollup of a day's records. It is derived,
// never stored.
type CalendarDay struct {
	Date         string   `json:"date"`
	TotalMinutes int      `json:"total_minutes"`
	RecordCount  int      `json:"record_count"`
	Subjects     []string `json:"subjects"`
}

// StudyStatsSummary aggregates a set of records over a date range.
type StudyStatsSummary struct {
	TotalMinutes        int            `json:"total_minutes"`
	TotalRecords        int            `json:"total_records"`
	Subjects            map[string]int `json:"subjects"`
	DailyAverageMinutes float64        `json:"daily_average_minutes"`
	StudyDays           int            `json:"study_days"`
}
