// Package calendar arranges per-day aggregates into a renderable,
// week-aligned month grid and classifies study intensity for heatmap
// shading.
package calendar

import (
	"time"

	"studytracker/backend/models"
	"studytracker/backend/utils"
)

type HeatLevel int

const (
	HeatNone HeatLevel = iota
	HeatLow
	HeatMedium
	HeatHigh
	HeatVeryHigh
)

func (h HeatLevel) String() string {
	switch h {
	case HeatLow:
		return "low"
	case HeatMedium:
		return "medium"
	case HeatHigh:
		return "high"
	case HeatVeryHigh:
		return "very_high"
	default:
		return "none"
	}
}

// HeatBucket classifies a day's total study minutes. Zero is its own
// bucket: a day with no study shades differently from one minute.
func HeatBucket(totalMinutes int) HeatLevel {
	switch {
	case totalMinutes <= 0:
		return HeatNone
	case totalMinutes < 30:
		return HeatLow
	case totalMinutes < 60:
		return HeatMedium
	case totalMinutes < 120:
		return HeatHigh
	default:
		return HeatVeryHigh
	}
}

// Cell is one day slot of the month grid. Day is nil when the date has no
// records.
type Cell struct {
	Date    time.Time
	InMonth bool
	Today   bool
	Day     *models.CalendarDay
	Heat    HeatLevel
}

// BuildMonthGrid lays the sparse day aggregates out over the full weeks
// covering the month of target: Monday on/before the 1st through Sunday
// on/after the last day, reading order Monday→Sunday by week. now supplies
// the "today" marker.
func BuildMonthGrid(target, now time.Time, days []models.CalendarDay) []Cell {
	monthStart := time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, target.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := startOfWeek(monthStart)
	gridEnd := endOfWeek(monthEnd)

	byDate := make(map[string]*models.CalendarDay, len(days))
	for i := range days {
		byDate[days[i].Date] = &days[i]
	}

	today := utils.FormatDate(now)

	var cells []Cell
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := utils.FormatDate(d)
		day := byDate[key]

		heat := HeatNone
		if day != nil {
			heat = HeatBucket(day.TotalMinutes)
		}

		cells = append(cells, Cell{
			Date:    d,
			InMonth: d.Month() == monthStart.Month() && d.Year() == monthStart.Year(),
			Today:   key == today,
			Day:     day,
			Heat:    heat,
		})
	}

	return cells
}

// NextMonth returns the first day of the month after t. Anchoring on day 1
// keeps AddDate from spilling over on short months.
func NextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}

// PrevMonth returns the first day of the month before t.
func PrevMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)
}

// startOfWeek returns the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()-time.Monday+7) % 7
	return t.AddDate(0, 0, -offset)
}

// endOfWeek returns the Sunday on or after t.
func endOfWeek(t time.Time) time.Time {
	offset := int(time.Sunday-t.Weekday()+7) % 7
	return t.AddDate(0, 0, offset)
}
