// Package stats derives aggregate views from raw study records. Everything
// here is pure; callers fetch the records and decide the range.
package stats

import (
	"sort"

	"studytracker/backend/models"
)

// Summarize rolls a set of records up into range-level totals. An empty
// input yields the zero summary with an empty (non-nil) subject map.
func Summarize(records []models.StudyRecord) models.StudyStatsSummary {
	summary := models.StudyStatsSummary{
		Subjects: make(map[string]int),
	}

	studyDates := make(map[string]struct{})
	for _, r := range records {
		summary.TotalMinutes += r.DurationMinutes
		summary.Subjects[r.Subject] += r.DurationMinutes
		studyDates[r.StudyDate] = struct{}{}
	}

	summary.TotalRecords = len(records)
	summary.StudyDays = len(studyDates)
	if summary.StudyDays > 0 {
		summary.DailyAverageMinutes = float64(summary.TotalMinutes) / float64(summary.StudyDays)
	}

	return summary
}

// ToCalendarDays groups records by study date, summing minutes and
// collecting the distinct subjects per day. Only dates with at least one
// record appear; the result is sorted by date ascending with sorted
// subject lists.
func ToCalendarDays(records []models.StudyRecord) []models.CalendarDay {
	type dayAcc struct {
		minutes  int
		count    int
		subjects map[string]struct{}
	}

	byDate := make(map[string]*dayAcc)
	for _, r := range records {
		acc, ok := byDate[r.StudyDate]
		if !ok {
			acc = &dayAcc{subjects: make(map[string]struct{})}
			byDate[r.StudyDate] = acc
		}
		acc.minutes += r.DurationMinutes
		acc.count++
		acc.subjects[r.Subject] = struct{}{}
	}

	days := make([]models.CalendarDay, 0, len(byDate))
	for date, acc := range byDate {
		subjects := make([]string, 0, len(acc.subjects))
		for s := range acc.subjects {
			subjects = append(subjects, s)
		}
		sort.Strings(subjects)

		days = append(days, models.CalendarDay{
			Date:         date,
			TotalMinutes: acc.minutes,
			RecordCount:  acc.count,
			Subjects:     subjects,
		})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// CountByGoal counts the records associated with the given goal. The remote
// progress aggregate stays authoritative when the two disagree; this exists
// so callers can surface a discrepancy instead of silently reconciling.
func CountByGoal(records []models.StudyRecord, goalID string) int {
	n := 0
	for _, r := range records {
		if r.GoalID == goalID {
			n++
		}
	}
	return n
}

// SumMinutesByGoal totals the durations of the records associated with the
// given goal, in minutes.
func SumMinutesByGoal(records []models.StudyRecord, goalID string) int {
	total := 0
	for _, r := range records {
		if r.GoalID == goalID {
			total += r.DurationMinutes
		}
	}
	return total
}
