package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTaskRepo is an in-memory TaskRepository for service tests.
type memTaskRepo struct {
	tasks map[string]*model.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*model.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, task *model.Task) error {
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memTaskRepo) ListByUser(_ context.Context, userID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByID(_ context.Context, userID, taskID string) (*model.Task, error) {
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, fmt.Errorf("task %s: %w", taskID, common.ErrNotFound)
	}
	clone := *t
	return &clone, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *model.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return fmt.Errorf("task %s: %w", task.ID, common.ErrNotFound)
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, userID, taskID string) error {
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return fmt.Errorf("task %s: %w", taskID, common.ErrNotFound)
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *memTaskRepo) CompletedCreationDates(_ context.Context, userID string) ([]model.Date, error) {
	seen := map[string]model.Date{}
	for _, t := range r.tasks {
		if t.UserID == userID && t.Completed {
			d := model.NewDate(t.CreatedAt)
			seen[d.String()] = d
		}
	}
	var out []model.Date
	for _, d := range seen {
		out = append(out, d)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *common.ValidationError
	require.True(t, errors.As(err, &vErr), "expected a validation error, got %v", err)
	return vErr.Fields
}

func TestTaskServiceCreateValidation(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     TaskRequest
		field   string
		message string
	}{
		{
			name:    "missing title",
			req:     TaskRequest{Unit: strPtr("Analysis"), Topic: strPtr("Sequences")},
			field:   "title",
			message: "title is required",
		},
		{
			name:    "blank title",
			req:     TaskRequest{Title: strPtr("   "), Unit: strPtr("Analysis"), Topic: strPtr("Sequences")},
			field:   "title",
			message: "title cannot be blank",
		},
		{
			name: "bad priority",
			req: TaskRequest{
				Title: strPtr("Read ch. 3"), Unit: strPtr("Analysis"), Topic: strPtr("Sequences"),
				Priority: strPtr("Urgent"),
			},
			field:   "priority",
			message: "priority must be one of [High Low Medium]",
		},
		{
			name: "bad due date",
			req: TaskRequest{
				Title: strPtr("Read ch. 3"), Unit: strPtr("Analysis"), Topic: strPtr("Sequences"),
				DueDate: strPtr("01-05-2030"),
			},
			field:   "due_date",
			message: "due_date must use format YYYY-MM-DD",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-1", tc.req)
			fields := validationFields(t, err)
			assert.Equal(t, tc.message, fields[tc.field])
		})
	}
}

func TestTaskServiceCreateDefaults(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())

	task, err := svc.Create(context.Background(), "user-1", TaskRequest{
		Title: strPtr("  Read ch. 3  "),
		Unit:  strPtr("Analysis"),
		Topic: strPtr("Sequences"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Read ch. 3", task.Title)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)
}

func TestTaskServiceDueDateRoundTrip(t *testing.T) {
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-1", TaskRequest{
		Title:   strPtr("Mock paper"),
		Unit:    strPtr("Algebra"),
		Topic:   strPtr("Groups"),
		DueDate: strPtr("2030-05-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2030-05-01", task.DueDate.String())

	// Sending an empty due_date clears it.
	updated, err := svc.Update(ctx, "user-1", task.ID, TaskRequest{DueDate: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
}

func TestTaskServicePartialUpdate(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	ctx := context.Background()

	task, err := svc.Create(ctx, "user-1", TaskRequest{
		Title:    strPtr("Read ch. 3"),
		Unit:     strPtr("Analysis"),
		Topic:    strPtr("Sequences"),
		Priority: strPtr("High"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", task.ID, TaskRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Read ch. 3", updated.Title)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
}

func TestTaskServiceScopedAccess(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner", TaskRequest{
		Title: strPtr("Read ch. 3"),
		Unit:  strPtr("Analysis"),
		Topic: strPtr("Sequences"),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "intruder", task.ID, TaskRequest{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = svc.Delete(ctx, "intruder", task.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// The owner still sees the task untouched.
	tasks, err := svc.List(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Completed)
}
