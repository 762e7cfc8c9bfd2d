package service

import (
	"context"

	"study_tracker/internal/app/scoring"
	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"
)

type RoutineService struct {
	routineRepo repository.RoutineRepository
}

func NewRoutineService(routineRepo repository.RoutineRepository) *RoutineService {
	return &RoutineService{routineRepo: routineRepo}
}

// DailyRoutine is the full routine view for one date: every slot with the
// caller's completion flag, plus the day's completion percentage.
type DailyRoutine struct {
	Date             model.Date          `json:"date"`
	Slots            []model.RoutineSlot `json:"tasks"`
	CompletedPercent float64             `json:"completed_percent"`
}

type RoutineToggleRequest struct {
	RoutineID string  `json:"routine_id" validate:"required"`
	Completed *bool   `json:"completed" validate:"required"`
	Date      *string `json:"date"`
}

func (s *RoutineService) ForDate(ctx context.Context, userID string, date model.Date) (*DailyRoutine, error) {
	templates, err := s.routineRepo.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	completions, err := s.routineRepo.ListCompletionsForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	completedByRoutine := make(map[string]bool, len(completions))
	for _, c := range completions {
		completedByRoutine[c.RoutineID] = c.Completed
	}

	routine := &DailyRoutine{Date: date, Slots: make([]model.RoutineSlot, 0, len(templates))}
	completed := 0
	for _, tmpl := range templates {
		done := completedByRoutine[tmpl.ID]
		if done {
			completed++
		}
		routine.Slots = append(routine.Slots, model.RoutineSlot{RoutineTemplate: tmpl, Completed: done})
	}
	routine.CompletedPercent = scoring.Percent(completed, len(templates))
	return routine, nil
}

// Toggle upserts one slot's completion for the date (today by default) and
// returns the refreshed routine view.
func (s *RoutineService) Toggle(ctx context.Context, userID string, req RoutineToggleRequest) (*DailyRoutine, error) {
	if fields := validateStruct(req); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	day := model.Today()
	if req.Date != nil && *req.Date != "" {
		parsed, err := model.ParseDate(*req.Date)
		if err != nil {
			return nil, common.NewValidationError(map[string]string{
				"date": "date must use format YYYY-MM-DD",
			})
		}
		day = parsed
	}

	// 404 for unknown slots before touching completions.
	if _, err := s.routineRepo.FindTemplate(ctx, req.RoutineID); err != nil {
		return nil, err
	}

	completion := &model.RoutineCompletion{
		UserID:    userID,
		RoutineID: req.RoutineID,
		Date:      day,
		Completed: *req.Completed,
	}
	if err := s.routineRepo.UpsertCompletion(ctx, completion); err != nil {
		return nil, err
	}
	return s.ForDate(ctx, userID, day)
}
