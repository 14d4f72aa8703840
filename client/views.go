package client

import (
	"context"

	"studytracker/backend/models"
)

// RecordsView holds one view's in-session copy of the record list, cached
// by its list parameters. Changing the parameters invalidates the cache and
// the next read refetches. Mutations touch the cached slice only after the
// remote call succeeds, so a failed operation leaves the view exactly as it
// was. Nothing survives the session; there is no cross-view sharing.
type RecordsView struct {
	client  *Client
	params  ListRecordsParams
	records []models.StudyRecord
	loaded  bool
	lastErr error
}

func NewRecordsView(c *Client, params ListRecordsParams) *RecordsView {
	return &RecordsView{client: c, params: params}
}

// SetParams changes the list filters. A differing key drops the cache.
func (v *RecordsView) SetParams(params ListRecordsParams) {
	if params == v.params {
		return
	}
	v.params = params
	v.records = nil
	v.loaded = false
	v.lastErr = nil
}

// Records returns the cached collection, fetching on first use or after an
// invalidation. A fetch failure leaves the view in its error state; the
// caller retries by calling again.
func (v *RecordsView) Records(ctx context.Context) ([]models.StudyRecord, error) {
	if v.loaded {
		return v.records, nil
	}
	return v.refetch(ctx)
}

// Refetch drops the cache and loads fresh data.
func (v *RecordsView) Refetch(ctx context.Context) ([]models.StudyRecord, error) {
	v.loaded = false
	return v.refetch(ctx)
}

func (v *RecordsView) refetch(ctx context.Context) ([]models.StudyRecord, error) {
	records, err := v.client.ListRecords(ctx, v.params)
	if err != nil {
		v.lastErr = err
		return nil, err
	}
	v.records = records
	v.loaded = true
	v.lastErr = nil
	return v.records, nil
}

// Err reports the view's error state from the last failed fetch, if any.
func (v *RecordsView) Err() error { return v.lastErr }

// Create logs a session and prepends it to the cached list once the remote
// call has succeeded.
func (v *RecordsView) Create(ctx context.Context, in models.StudyRecordCreate) (*models.StudyRecord, error) {
	record, err := v.client.CreateRecord(ctx, in)
	if err != nil {
		return nil, err
	}
	if v.loaded {
		v.records = append([]models.StudyRecord{*record}, v.records...)
	}
	return record, nil
}

func (v *RecordsView) Update(ctx context.Context, recordID string, in models.StudyRecordUpdate) (*models.StudyRecord, error) {
	record, err := v.client.UpdateRecord(ctx, recordID, in)
	if err != nil {
		return nil, err
	}
	for i := range v.records {
		if v.records[i].RecordID == recordID {
			v.records[i] = *record
			break
		}
	}
	return record, nil
}

func (v *RecordsView) Remove(ctx context.Context, recordID string) error {
	if err := v.client.DeleteRecord(ctx, recordID); err != nil {
		return err
	}
	for i := range v.records {
		if v.records[i].RecordID == recordID {
			v.records = append(v.records[:i], v.records[i+1:]...)
			break
		}
	}
	return nil
}

// GoalsView is the goal-list counterpart of RecordsView, keyed by the
// status filter.
type GoalsView struct {
	client  *Client
	status  string
	goals   []models.Goal
	loaded  bool
	lastErr error
}

func NewGoalsView(c *Client, status string) *GoalsView {
	return &GoalsView{client: c, status: status}
}

func (v *GoalsView) SetStatus(status string) {
	if status == v.status {
		return
	}
	v.status = status
	v.goals = nil
	v.loaded = false
	v.lastErr = nil
}

func (v *GoalsView) Goals(ctx context.Context) ([]models.Goal, error) {
	if v.loaded {
		return v.goals, nil
	}
	return v.refetch(ctx)
}

func (v *GoalsView) Refetch(ctx context.Context) ([]models.Goal, error) {
	v.loaded = false
	return v.refetch(ctx)
}

func (v *GoalsView) refetch(ctx context.Context) ([]models.Goal, error) {
	goals, err := v.client.ListGoals(ctx, v.status)
	if err != nil {
		v.lastErr = err
		return nil, err
	}
	v.goals = goals
	v.loaded = true
	v.lastErr = nil
	return v.goals, nil
}

func (v *GoalsView) Err() error { return v.lastErr }

func (v *GoalsView) Create(ctx context.Context, in models.GoalCreate) (*models.Goal, error) {
	goal, err := v.client.CreateGoal(ctx, in)
	if err != nil {
		return nil, err
	}
	if v.loaded {
		v.goals = append([]models.Goal{*goal}, v.goals...)
	}
	return goal, nil
}

func (v *GoalsView) Update(ctx context.Context, goalID string, in models.GoalUpdate) (*models.Goal, error) {
	goal, err := v.client.UpdateGoal(ctx, goalID, in)
	if err != nil {
		return nil, err
	}
	v.replace(goal)
	return goal, nil
}

// ChangeStatus applies a lifecycle change through the transition table; an
// invalid transition comes back as InvalidTransitionError without the
// remote system ever being called.
func (v *GoalsView) ChangeStatus(ctx context.Context, goalID string, to models.GoalStatus) (*models.Goal, error) {
	var target *models.Goal
	for i := range v.goals {
		if v.goals[i].GoalID == goalID {
			target = &v.goals[i]
			break
		}
	}
	if target == nil {
		return nil, &NotFoundError{Resource: "goal", ID: goalID}
	}

	goal, err := v.client.ChangeGoalStatus(ctx, target, to)
	if err != nil {
		return nil, err
	}
	v.replace(goal)
	return goal, nil
}

func (v *GoalsView) Remove(ctx context.Context, goalID string) error {
	if err := v.client.DeleteGoal(ctx, goalID); err != nil {
		return err
	}
	for i := range v.goals {
		if v.goals[i].GoalID == goalID {
			v.goals = append(v.goals[:i], v.goals[i+1:]...)
			break
		}
	}
	return nil
}

func (v *GoalsView) replace(goal *models.Goal) {
	for i := range v.goals {
		if v.goals[i].GoalID == goal.GoalID {
			v.goals[i] = *goal
			return
		}
	}
}
