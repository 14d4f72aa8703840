package tests

import (
	"fmt"
	"testing"

	"studytracker/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRecord(t *testing.T, payload map[string]interface{}) models.StudyRecord {
	t.Helper()

	resp := doRequest(t, "POST", "/api/records/", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var record models.StudyRecord
	decodeBody(t, resp, &record)
	return record
}

func TestCreateRecord(t *testing.T) {
	record := createRecord(t, map[string]interface{}{
		"study_date":       "2029-01-10",
		"subject":          "Math",
		"duration_minutes": 90,
		"memo":             "integrals",
	})

	assert.NotEmpty(t, record.RecordID)
	assert.Equal(t, testUser.ID, record.UserID)
	assert.Equal(t, "2029-01-10", record.StudyDate)
	assert.Equal(t, "Math", record.Subject)
	assert.Equal(t, 90, record.DurationMinutes)
	assert.Equal(t, "integrals", record.Memo)
}

func TestCreateRecordValidation(t *testing.T) {
	resp := doRequest(t, "POST", "/api/records/", map[string]interface{}{
		"study_date":       "2029-01-10",
		"subject":          "",
		"duration_minutes": 0,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/records/", map[string]interface{}{
		"study_date":       "2029-01-10",
		"subject":          "Math",
		"duration_minutes": 2000,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetRecordNotFound(t *testing.T) {
	resp := doRequest(t, "GET", "/api/records/does-not-exist", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListRecordsFilters(t *testing.T) {
	createRecord(t, map[string]interface{}{
		"study_date": "2031-01-10", "subject": "Math", "duration_minutes": 30,
	})
	createRecord(t, map[string]interface{}{
		"study_date": "2031-01-15", "subject": "English", "duration_minutes": 45,
	})
	createRecord(t, map[string]interface{}{
		"study_date": "2031-02-01", "subject": "Math", "duration_minutes": 60,
	})

	resp := doRequest(t, "GET", "/api/records/?date_from=2031-01-01&date_to=2031-01-31", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var records []models.StudyRecord
	decodeBody(t, resp, &records)
	assert.Len(t, records, 2)

	resp = doRequest(t, "GET", "/api/records/?date_from=2031-01-01&date_to=2031-01-31&subject=Math", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "2031-01-10", records[0].StudyDate)

	// Newest study date first.
	resp = doRequest(t, "GET", "/api/records/?date_from=2031-01-01&date_to=2031-02-28", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &records)
	require.Len(t, records, 3)
	assert.Equal(t, "2031-02-01", records[0].StudyDate)
}

func TestListRecordsBadDate(t *testing.T) {
	resp := doRequest(t, "GET", "/api/records/?date_from=tomorrow", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRecordPartial(t *testing.T) {
	record := createRecord(t, map[string]interface{}{
		"study_date": "2029-02-10", "subject": "Physics", "duration_minutes": 50,
	})

	resp := doRequest(t, "PUT", "/api/records/"+record.RecordID, map[string]interface{}{
		"memo": "kinematics",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.StudyRecord
	decodeBody(t, resp, &updated)
	assert.Equal(t, "kinematics", updated.Memo)
	assert.Equal(t, "Physics", updated.Subject, "untouched fields keep their value")
	assert.Equal(t, 50, updated.DurationMinutes)
}

func TestDeleteRecord(t *testing.T) {
	record := createRecord(t, map[string]interface{}{
		"study_date": "2029-03-10", "subject": "Chemistry", "duration_minutes": 40,
	})

	resp := doRequest(t, "DELETE", "/api/records/"+record.RecordID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, "GET", "/api/records/"+record.RecordID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, "DELETE", "/api/records/"+record.RecordID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStatsSummary(t *testing.T) {
	createRecord(t, map[string]interface{}{
		"study_date": "2030-01-05", "subject": "Math", "duration_minutes": 90,
	})
	createRecord(t, map[string]interface{}{
		"study_date": "2030-01-05", "subject": "Math", "duration_minutes": 30,
	})
	createRecord(t, map[string]interface{}{
		"study_date": "2030-01-06", "subject": "English", "duration_minutes": 45,
	})

	resp := doRequest(t, "GET", "/api/records/stats/summary?date_from=2030-01-01&date_to=2030-01-31", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary models.StudyStatsSummary
	decodeBody(t, resp, &summary)
	assert.Equal(t, 165, summary.TotalMinutes)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 2, summary.StudyDays)
	assert.Equal(t, 82.5, summary.DailyAverageMinutes)
	assert.Equal(t, map[string]int{"Math": 120, "English": 45}, summary.Subjects)
}

func TestStatsSummaryRequiresRange(t *testing.T) {
	resp := doRequest(t, "GET", "/api/records/stats/summary", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCalendarData(t *testing.T) {
	createRecord(t, map[string]interface{}{
		"study_date": "2030-02-10", "subject": "Math", "duration_minutes": 90,
	})
	createRecord(t, map[string]interface{}{
		"study_date": "2030-02-10", "subject": "Math", "duration_minutes": 30,
	})
	createRecord(t, map[string]interface{}{
		"study_date": "2030-02-11", "subject": "English", "duration_minutes": 20,
	})

	resp := doRequest(t, "GET", "/api/records/stats/calendar?year=2030&month=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var days []models.CalendarDay
	decodeBody(t, resp, &days)
	require.Len(t, days, 2)

	assert.Equal(t, "2030-02-10", days[0].Date)
	assert.Equal(t, 120, days[0].TotalMinutes)
	assert.Equal(t, 2, days[0].RecordCount)
	assert.Equal(t, []string{"Math"}, days[0].Subjects)
	assert.Equal(t, "2030-02-11", days[1].Date)
}

func TestCalendarDataBadMonth(t *testing.T) {
	for _, q := range []string{"year=2030&month=13", "year=2030&month=0", "month=2"} {
		resp := doRequest(t, "GET", fmt.Sprintf("/api/records/stats/calendar?%s", q), nil)
		assert.Equalf(t, fiber.StatusBadRequest, resp.StatusCode, "query %q", q)
	}
}
