// Package client is a Go consumer of the study tracker REST API. It owns
// the client-side rules the UI relies on: payload validation and status
// transition checks happen locally before any request is sent, remote
// failures map onto a small error taxonomy, and the view types cache
// fetched collections keyed by their request parameters.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"studytracker/backend/models"
	"studytracker/backend/utils"
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	base := strings.TrimRight(c.BaseURL, "/")
	endpoint := base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request payload: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return &RemoteError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var remote utils.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &remote)
		return &RemoteError{StatusCode: resp.StatusCode, Message: remote.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// mapNotFound converts a remote 404 into a NotFoundError for the given
// resource; every other error passes through untouched.
func mapNotFound(err error, resource, id string) error {
	var re *RemoteError
	if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// ListRecordsParams are the list filters; zero values mean "no filter".
type ListRecordsParams struct {
	DateFrom string
	DateTo   string
	Subject  string
}

func (p ListRecordsParams) query() url.Values {
	q := url.Values{}
	if p.DateFrom != "" {
		q.Set("date_from", p.DateFrom)
	}
	if p.DateTo != "" {
		q.Set("date_to", p.DateTo)
	}
	if p.Subject != "" {
		q.Set("subject", p.Subject)
	}
	return q
}

func (c *Client) ListRecords(ctx context.Context, params ListRecordsParams) ([]models.StudyRecord, error) {
	var records []models.StudyRecord
	if err := c.do(ctx, http.MethodGet, "/api/records/", params.query(), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) GetRecord(ctx context.Context, recordID string) (*models.StudyRecord, error) {
	var record models.StudyRecord
	err := c.do(ctx, http.MethodGet, "/api/records/"+recordID, nil, nil, &record)
	if err != nil {
		return nil, mapNotFound(err, "study record", recordID)
	}
	return &record, nil
}

func (c *Client) CreateRecord(ctx context.Context, in models.StudyRecordCreate) (*models.StudyRecord, error) {
	if errs := utils.ValidateStruct(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	var record models.StudyRecord
	if err := c.do(ctx, http.MethodPost, "/api/records/", nil, in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) UpdateRecord(ctx context.Context, recordID string, in models.StudyRecordUpdate) (*models.StudyRecord, error) {
	if errs := utils.ValidateStruct(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	var record models.StudyRecord
	err := c.do(ctx, http.MethodPut, "/api/records/"+recordID, nil, in, &record)
	if err != nil {
		return nil, mapNotFound(err, "study record", recordID)
	}
	return &record, nil
}

func (c *Client) DeleteRecord(ctx context.Context, recordID string) error {
	err := c.do(ctx, http.MethodDelete, "/api/records/"+recordID, nil, nil, nil)
	return mapNotFound(err, "study record", recordID)
}

func (c *Client) StatsSummary(ctx context.Context, dateFrom, dateTo string) (*models.StudyStatsSummary, error) {
	q := url.Values{}
	q.Set("date_from", dateFrom)
	q.Set("date_to", dateTo)

	var summary models.StudyStatsSummary
	if err := c.do(ctx, http.MethodGet, "/api/records/stats/summary", q, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) CalendarData(ctx context.Context, year, month int) ([]models.CalendarDay, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))

	var days []models.CalendarDay
	if err := c.do(ctx, http.MethodGet, "/api/records/stats/calendar", q, nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// ---------------------------------------------------------------------------
// Goals
// ---------------------------------------------------------------------------

func (c *Client) ListGoals(ctx context.Context, status string) ([]models.Goal, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var goals []models.Goal
	if err := c.do(ctx, http.MethodGet, "/api/goals/", q, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) GetGoal(ctx context.Context, goalID string) (*models.Goal, error) {
	var goal models.Goal
	err := c.do(ctx, http.MethodGet, "/api/goals/"+goalID, nil, nil, &goal)
	if err != nil {
		return nil, mapNotFound(err, "goal", goalID)
	}
	return &goal, nil
}

func (c *Client) CreateGoal(ctx context.Context, in models.GoalCreate) (*models.Goal, error) {
	if errs := utils.ValidateStruct(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	var goal models.Goal
	if err := c.do(ctx, http.MethodPost, "/api/goals/", nil, in, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) UpdateGoal(ctx context.Context, goalID string, in models.GoalUpdate) (*models.Goal, error) {
	if errs := utils.ValidateStruct(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	var goal models.Goal
	err := c.do(ctx, http.MethodPut, "/api/goals/"+goalID, nil, in, &goal)
	if err != nil {
		return nil, mapNotFound(err, "goal", goalID)
	}
	return &goal, nil
}

func (c *Client) DeleteGoal(ctx context.Context, goalID string) error {
	err := c.do(ctx, http.MethodDelete, "/api/goals/"+goalID, nil, nil, nil)
	return mapNotFound(err, "goal", goalID)
}

func (c *Client) GoalProgress(ctx context.Context, goalID string) (*models.GoalProgress, error) {
	var progress models.GoalProgress
	err := c.do(ctx, http.MethodGet, "/api/goals/"+goalID+"/progress", nil, nil, &progress)
	if err != nil {
		return nil, mapNotFound(err, "goal", goalID)
	}
	return &progress, nil
}

// ChangeGoalStatus requests a status change, rejecting transitions outside
// the UI table locally so known-invalid requests never reach the wire. The
// server stays the final authority on the ones that do.
func (c *Client) ChangeGoalStatus(ctx context.Context, goal *models.Goal, to models.GoalStatus) (*models.Goal, error) {
	if !goal.Status.CanTransition(to) {
		return nil, &models.InvalidTransitionError{From: goal.Status, To: to}
	}
	return c.UpdateGoal(ctx, goal.GoalID, models.GoalUpdate{Status: &to})
}
