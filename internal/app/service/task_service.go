package service

import (
	"context"
	"fmt"
	"strings"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// TaskRequest covers both create and partial update; nil means "field not
// sent". Validation messages are part of the API contract.
type TaskRequest struct {
	Title     *string `json:"title"`
	Unit      *string `json:"unit"`
	Topic     *string `json:"topic"`
	Priority  *string `json:"priority"`
	DueDate   *string `json:"due_date"`
	Notes     *string `json:"notes"`
	Completed *bool   `json:"completed"`
}

func (req TaskRequest) validateFields(partial bool) map[string]string {
	fields := map[string]string{}

	required := map[string]*string{"title": req.Title, "unit": req.Unit, "topic": req.Topic}
	for name, value := range required {
		if value == nil {
			if !partial {
				fields[name] = fmt.Sprintf("%s is required", name)
			}
			continue
		}
		if strings.TrimSpace(*value) == "" {
			fields[name] = fmt.Sprintf("%s cannot be blank", name)
		}
	}

	if req.Priority != nil && !model.ValidPriority(model.TaskPriority(*req.Priority)) {
		fields["priority"] = fmt.Sprintf("priority must be one of %v", model.AllowedPriorities)
	}

	if req.DueDate != nil && *req.DueDate != "" {
		if _, err := model.ParseDate(*req.DueDate); err != nil {
			fields["due_date"] = "due_date must use format YYYY-MM-DD"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *TaskService) List(ctx context.Context, userID string) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *TaskService) Create(ctx context.Context, userID string, req TaskRequest) (*model.Task, error) {
	if fields := req.validateFields(false); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	task := &model.Task{
		ID:       uuid.NewString(),
		UserID:   userID,
		Title:    strings.TrimSpace(*req.Title),
		Unit:     strings.TrimSpace(*req.Unit),
		Topic:    strings.TrimSpace(*req.Topic),
		Priority: model.DefaultPriority,
	}
	if req.Priority != nil {
		task.Priority = model.TaskPriority(*req.Priority)
	}
	if req.Notes != nil {
		task.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, _ := model.ParseDate(*req.DueDate)
		task.DueDate = &due
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID string, req TaskRequest) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if fields := req.validateFields(true); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Unit != nil {
		task.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Topic != nil {
		task.Topic = strings.TrimSpace(*req.Topic)
	}
	if req.Priority != nil {
		task.Priority = model.TaskPriority(*req.Priority)
	}
	if req.Notes != nil {
		task.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, _ := model.ParseDate(*req.DueDate)
			task.DueDate = &due
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	return s.taskRepo.Delete(ctx, userID, taskID)
}
