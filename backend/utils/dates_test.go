package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekRange_MidWeek(t *testing.T) {
	// Wednesday 2024-01-03
	from, to := WeekRange(date(2024, time.January, 3))
	if from != "2024-01-01" || to != "2024-01-07" {
		t.Errorf("expected 2024-01-01..2024-01-07, got %s..%s", from, to)
	}
}

func TestWeekRange_SundayBelongsToEndingWeek(t *testing.T) {
	// Sunday 2023-12-31 closes the week that started Monday 2023-12-25
	from, to := WeekRange(date(2023, time.December, 31))
	if from != "2023-12-25" || to != "2023-12-31" {
		t.Errorf("expected 2023-12-25..2023-12-31, got %s..%s", from, to)
	}
}

func TestWeekRange_MondayIsItsOwnStart(t *testing.T) {
	from, to := WeekRange(date(2024, time.June, 3))
	if from != "2024-06-03" || to != "2024-06-09" {
		t.Errorf("expected 2024-06-03..2024-06-09, got %s..%s", from, to)
	}
}

func TestMonthRange_LeapFebruary(t *testing.T) {
	from, to := MonthRange(date(2024, time.February, 15))
	if from != "2024-02-01" || to != "2024-02-29" {
		t.Errorf("expected 2024-02-01..2024-02-29, got %s..%s", from, to)
	}
}

func TestMonthRange_December(t *testing.T) {
	from, to := MonthRange(date(2023, time.December, 1))
	if from != "2023-12-01" || to != "2023-12-31" {
		t.Errorf("expected 2023-12-01..2023-12-31, got %s..%s", from, to)
	}
}

func TestFormatDisplay(t *testing.T) {
	// 2024-06-03 is a Monday
	got := FormatDisplay(date(2024, time.June, 3))
	if got != "6月3日(月)" {
		t.Errorf("expected 6月3日(月), got %s", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if FormatDate(d) != "2024-02-29" {
		t.Errorf("round trip changed the date: %s", FormatDate(d))
	}

	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Error("expected error for month 13")
	}
}
