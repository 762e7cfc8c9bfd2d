package service

import (
	"context"
	"strings"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"

	"github.com/google/uuid"
)

type PlannerService struct {
	dailyTaskRepo repository.DailyTaskRepository
}

func NewPlannerService(dailyTaskRepo repository.DailyTaskRepository) *PlannerService {
	return &PlannerService{dailyTaskRepo: dailyTaskRepo}
}

type DailyTaskRequest struct {
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	Completed *bool   `json:"completed"`
}

func (req DailyTaskRequest) validateFields(partial bool) map[string]string {
	fields := map[string]string{}
	if req.Title == nil {
		if !partial {
			fields["title"] = "title is required"
		}
	} else if strings.TrimSpace(*req.Title) == "" {
		fields["title"] = "title cannot be blank"
	}
	if req.Date != nil && *req.Date != "" {
		if _, err := model.ParseDate(*req.Date); err != nil {
			fields["date"] = "date must use format YYYY-MM-DD"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *PlannerService) ListForDate(ctx context.Context, userID string, date model.Date) ([]model.DailyTask, error) {
	return s.dailyTaskRepo.ListByUserDate(ctx, userID, date)
}

func (s *PlannerService) Create(ctx context.Context, userID string, req DailyTaskRequest) (*model.DailyTask, error) {
	if fields := req.validateFields(false); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	task := &model.DailyTask{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  strings.TrimSpace(*req.Title),
		Date:   model.Today(),
	}
	if req.Date != nil && *req.Date != "" {
		day, _ := model.ParseDate(*req.Date)
		task.Date = day
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.dailyTaskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *PlannerService) Update(ctx context.Context, userID, taskID string, req DailyTaskRequest) (*model.DailyTask, error) {
	task, err := s.dailyTaskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if fields := req.validateFields(true); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Date != nil && *req.Date != "" {
		day, _ := model.ParseDate(*req.Date)
		task.Date = day
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.dailyTaskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *PlannerService) Delete(ctx context.Context, userID, taskID string) error {
	return s.dailyTaskRepo.Delete(ctx, userID, taskID)
}
