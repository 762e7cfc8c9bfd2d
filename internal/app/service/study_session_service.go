package service

import (
	"context"

	"study_tracker/internal/app/scoring"
	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"

	"github.com/google/uuid"
)

type StudySessionService struct {
	sessionRepo repository.StudySessionRepository
}

func NewStudySessionService(sessionRepo repository.StudySessionRepository) *StudySessionService {
	return &StudySessionService{sessionRepo: sessionRepo}
}

type StudySessionRequest struct {
	DurationSeconds int     `json:"duration_seconds" validate:"required,gt=0"`
	Date            *string `json:"date"`
}

// StudyTimeTotals is the response to logging a session: running totals for
// today and the Monday-anchored current week.
type StudyTimeTotals struct {
	TodayHours float64 `json:"today_hours"`
	WeekHours  float64 `json:"week_hours"`
}

func (s *StudySessionService) Log(ctx context.Context, userID string, req StudySessionRequest) (*StudyTimeTotals, error) {
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

	session := &model.StudySession{
		ID:              uuid.NewString(),
		UserID:          userID,
		Date:            day,
		DurationSeconds: req.DurationSeconds,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return s.Totals(ctx, userID)
}

func (s *StudySessionService) Totals(ctx context.Context, userID string) (*StudyTimeTotals, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	todayHours, weekHours := scoring.StudyHours(sessions, model.Today())
	return &StudyTimeTotals{TodayHours: todayHours, WeekHours: weekHours}, nil
}
