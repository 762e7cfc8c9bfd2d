package service

import (
	"context"
	"strings"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"
)

type SettingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

type SettingsRequest struct {
	ExamDate  *string `json:"exam_date"`
	DailyGoal *int    `json:"daily_goal"`
	Theme     *string `json:"theme"`
}

func (req SettingsRequest) validateFields() map[string]string {
	fields := map[string]string{}
	if req.DailyGoal != nil && *req.DailyGoal < 0 {
		fields["daily_goal"] = "daily_goal must be at least 0"
	}
	if req.Theme != nil && strings.TrimSpace(*req.Theme) == "" {
		fields["theme"] = "theme cannot be blank"
	}
	if req.ExamDate != nil && *req.ExamDate != "" {
		if _, err := model.ParseDate(*req.ExamDate); err != nil {
			fields["exam_date"] = "exam_date must use format YYYY-MM-DD"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (s *SettingService) Get(ctx context.Context, userID string) (*model.Setting, error) {
	return s.settingRepo.GetOrCreate(ctx, userID)
}

func (s *SettingService) Update(ctx context.Context, userID string, req SettingsRequest) (*model.Setting, error) {
	setting, err := s.settingRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if fields := req.validateFields(); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	if req.DailyGoal != nil {
		setting.DailyGoal = *req.DailyGoal
	}
	if req.Theme != nil {
		setting.Theme = strings.TrimSpace(*req.Theme)
	}
	if req.ExamDate != nil {
		if *req.ExamDate == "" {
			setting.ExamDate = nil
		} else {
			exam, _ := model.ParseDate(*req.ExamDate)
			setting.ExamDate = &exam
		}
	}

	if err := s.settingRepo.Update(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}
