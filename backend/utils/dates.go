package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

var weekdayKanji = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDisplay renders a date the way the UI shows it, e.g. "6月3日(月)".
func FormatDisplay(t time.Time) string {
	return fmt.Sprintf("%d月%d日(%s)", int(t.Month()), t.Day(), weekdayKanji[t.Weekday()])
}

// WeekRange returns the Monday and Sunday bounding the ISO week containing
// t, both inclusive, as YYYY-MM-DD.
func WeekRange(t time.Time) (from, to string) {
	offset := int(t.Weekday()-time.Monday+7) % 7
	monday := t.AddDate(0, 0, -offset)
	return FormatDate(monday), FormatDate(monday.AddDate(0, 0, 6))
}

// MonthRange returns the first and last calendar day of the month
// containing t, as YYYY-MM-DD.
func MonthRange(t time.Time) (from, to string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last)
}
