package service

import (
	"context"
	"math"
	"time"

	"study_tracker/internal/app/scoring"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"
)

// AnalyticsService derives every dashboard number from the raw per-user
// records. It owns no state of its own.
type AnalyticsService struct {
	taskRepo      repository.TaskRepository
	dailyTaskRepo repository.DailyTaskRepository
	sessionRepo   repository.StudySessionRepository
	routineRepo   repository.RoutineRepository
	mockTestRepo  repository.MockTestRepository
	syllabusRepo  repository.SyllabusRepository
	settingRepo   repository.SettingRepository
}

func NewAnalyticsService(
	taskRepo repository.TaskRepository,
	dailyTaskRepo repository.DailyTaskRepository,
	sessionRepo repository.StudySessionRepository,
	routineRepo repository.RoutineRepository,
	mockTestRepo repository.MockTestRepository,
	syllabusRepo repository.SyllabusRepository,
	settingRepo repository.SettingRepository,
) *AnalyticsService {
	return &AnalyticsService{
		taskRepo:      taskRepo,
		dailyTaskRepo: dailyTaskRepo,
		sessionRepo:   sessionRepo,
		routineRepo:   routineRepo,
		mockTestRepo:  mockTestRepo,
		syllabusRepo:  syllabusRepo,
		settingRepo:   settingRepo,
	}
}

// Summary is the analytics endpoint payload. SyllabusCompletion is the raw
// weighted total feeding the predictor, not the 20-floor final score.
type Summary struct {
	TaskStreak          int               `json:"task_streak"`
	PlannerStreak       int               `json:"planner_streak"`
	TodayHours          float64           `json:"today_hours"`
	WeekHours           float64           `json:"week_hours"`
	RoutineConsistency  float64           `json:"routine_consistency"`
	PlannerCompletion   float64           `json:"planner_completion"`
	MockTests           scoring.MockStats `json:"mock_tests"`
	ProductivityIndex   float64           `json:"productivity_index"`
	NormalizedMockScore float64           `json:"normalized_mock_score"`
	SyllabusCompletion  float64           `json:"syllabus_completion"`
	PredictedScore      float64           `json:"predicted_score"`
	Confidence          string            `json:"confidence"`
	ExamCountdown       scoring.Countdown `json:"exam_countdown"`
	DailyGoal           int               `json:"daily_goal"`
}

func (s *AnalyticsService) Summary(ctx context.Context, userID string) (*Summary, error) {
	today := model.Today()

	taskDates, err := s.taskRepo.CompletedCreationDates(ctx, userID)
	if err != nil {
		return nil, err
	}
	plannerDates, err := s.dailyTaskRepo.CompletedDates(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	templates, err := s.routineRepo.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	completions, err := s.routineRepo.ListCompletionsForDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	plannerTasks, err := s.dailyTaskRepo.ListByUserDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	mockTests, err := s.mockTestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	topics, err := s.syllabusRepo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.syllabusRepo.ListProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	setting, err := s.settingRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	todayHours, weekHours := scoring.StudyHours(sessions, today)

	routineDone := 0
	for _, c := range completions {
		if c.Completed {
			routineDone++
		}
	}
	plannerDone := 0
	for _, t := range plannerTasks {
		if t.Completed {
			plannerDone++
		}
	}

	mockStats := scoring.BuildMockStats(mockTests)
	report := scoring.BuildSyllabusReport(topics, progress)
	productivity := scoring.ProductivityIndex(weekHours)
	normalizedMock := scoring.NormalizedMockScore(mockStats.AverageScore)
	prediction := scoring.Predict(report.WeightedTotal, mockStats.AttemptPercent, normalizedMock, productivity)

	return &Summary{
		TaskStreak:          scoring.Streak(taskDates, today),
		PlannerStreak:       scoring.Streak(plannerDates, today),
		TodayHours:          todayHours,
		WeekHours:           weekHours,
		RoutineConsistency:  scoring.Percent(routineDone, len(templates)),
		PlannerCompletion:   scoring.Percent(plannerDone, len(plannerTasks)),
		MockTests:           mockStats,
		ProductivityIndex:   productivity,
		NormalizedMockScore: normalizedMock,
		SyllabusCompletion:  report.WeightedTotal,
		PredictedScore:      prediction.PredictedScore,
		Confidence:          prediction.Confidence,
		ExamCountdown:       scoring.ExamCountdown(setting.ExamDate, time.Now()),
		DailyGoal:           setting.DailyGoal,
	}, nil
}

// UnitBreakdown counts task totals and completions per unit.
type UnitBreakdown struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// TaskProgress is the legacy /api/progress payload over plain study tasks.
type TaskProgress struct {
	Total          int                      `json:"total"`
	Completed      int                      `json:"completed"`
	Pending        int                      `json:"pending"`
	CompletionRate float64                  `json:"completion_rate"`
	UnitBreakdown  map[string]UnitBreakdown `json:"unit_breakdown"`
	DaysLeft       *int                     `json:"days_left"`
}

func (s *AnalyticsService) TaskProgress(ctx context.Context, userID string) (*TaskProgress, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	topics, err := s.syllabusRepo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	setting, err := s.settingRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Every catalog subject appears in the breakdown even with no tasks.
	breakdown := map[string]UnitBreakdown{}
	for _, t := range topics {
		if _, ok := breakdown[t.Subject]; !ok {
			breakdown[t.Subject] = UnitBreakdown{}
		}
	}

	completed := 0
	for _, task := range tasks {
		entry := breakdown[task.Unit]
		entry.Total++
		if task.Completed {
			entry.Completed++
			completed++
		}
		breakdown[task.Unit] = entry
	}

	progress := &TaskProgress{
		Total:         len(tasks),
		Completed:     completed,
		Pending:       len(tasks) - completed,
		UnitBreakdown: breakdown,
	}
	if len(tasks) > 0 {
		progress.CompletionRate = math.Round(float64(completed)/float64(len(tasks))*1000) / 10
	}
	if setting.ExamDate != nil {
		days := model.Today().DaysUntil(*setting.ExamDate)
		progress.DaysLeft = &days
	}
	return progress, nil
}
