package service

import (
	"context"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"
)

type MockTestService struct {
	mockTestRepo repository.MockTestRepository
}

func NewMockTestService(mockTestRepo repository.MockTestRepository) *MockTestService {
	return &MockTestService{mockTestRepo: mockTestRepo}
}

// MockTestUpdateRequest replaces one slot's state. Omitting attempt_date or
// score clears them; clearing attempted resets the slot.
type MockTestUpdateRequest struct {
	Attempted   *bool    `json:"attempted"`
	AttemptDate *string  `json:"attempt_date"`
	Score       *float64 `json:"score"`
}

// List returns all ten slots, seeding them on first touch.
func (s *MockTestService) List(ctx context.Context, userID string) ([]model.MockTest, error) {
	if err := s.mockTestRepo.SeedForUser(ctx, userID, model.MockTestCount); err != nil {
		return nil, err
	}
	return s.mockTestRepo.ListByUser(ctx, userID)
}

func (s *MockTestService) Update(ctx context.Context, userID string, testNumber int, req MockTestUpdateRequest) (*model.MockTest, error) {
	if err := s.mockTestRepo.SeedForUser(ctx, userID, model.MockTestCount); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if req.Attempted == nil {
		fields["attempted"] = "attempted is required"
	}
	var attemptDate *model.Date
	if req.AttemptDate != nil && *req.AttemptDate != "" {
		parsed, err := model.ParseDate(*req.AttemptDate)
		if err != nil {
			fields["attempt_date"] = "attempt_date must use format YYYY-MM-DD"
		} else {
			attemptDate = &parsed
		}
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError(fields)
	}

	test, err := s.mockTestRepo.FindByNumber(ctx, userID, testNumber)
	if err != nil {
		return nil, err
	}

	test.Attempted = *req.Attempted
	test.AttemptDate = attemptDate
	test.Score = req.Score
	if !test.Attempted {
		// Resetting a slot also drops its date and score.
		test.AttemptDate = nil
		test.Score = nil
	}

	if err := s.mockTestRepo.Update(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}
