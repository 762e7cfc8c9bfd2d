package service

import (
	"context"
	"fmt"

	"study_tracker/internal/app/scoring"
	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
	"study_tracker/internal/domain/repository"
)

type SyllabusService struct {
	syllabusRepo repository.SyllabusRepository
}

func NewSyllabusService(syllabusRepo repository.SyllabusRepository) *SyllabusService {
	return &SyllabusService{syllabusRepo: syllabusRepo}
}

// TopicProgress is one catalog topic joined with the caller's milestone
// flags (all false when no progress row exists).
type TopicProgress struct {
	TopicID         string  `json:"topic_id"`
	Topic           string  `json:"topic"`
	Unit            string  `json:"unit"`
	Slug            string  `json:"slug"`
	Weight          float64 `json:"weight"`
	TheoryCompleted bool    `json:"theory_completed"`
	PYQ30Done       bool    `json:"pyq_30_done"`
	Revision1Done   bool    `json:"revision_1_done"`
	Revision2Done   bool    `json:"revision_2_done"`
}

// SyllabusOverview is the syllabus page payload: topics grouped by subject
// plus the full scoring report.
type SyllabusOverview struct {
	GroupedTopics map[string][]TopicProgress `json:"grouped_topics"`
	Report        scoring.SyllabusReport     `json:"report"`
	ScoreCategory string                     `json:"score_category"`
}

type MilestoneUpdateRequest struct {
	TopicID string `json:"topic_id" validate:"required"`
	Field   string `json:"field" validate:"required"`
	Value   *bool  `json:"value" validate:"required"`
}

// GroupedCatalog returns the catalog grouped by subject with no user state,
// for the bootstrap payload.
func (s *SyllabusService) GroupedCatalog(ctx context.Context) (map[string][]model.SyllabusTopic, error) {
	topics, err := s.syllabusRepo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	grouped := map[string][]model.SyllabusTopic{}
	for _, t := range topics {
		grouped[t.Subject] = append(grouped[t.Subject], t)
	}
	return grouped, nil
}

func (s *SyllabusService) Overview(ctx context.Context, userID string) (*SyllabusOverview, error) {
	topics, err := s.syllabusRepo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.syllabusRepo.ListProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byTopic := make(map[string]model.UserSyllabusProgress, len(progress))
	for _, p := range progress {
		byTopic[p.TopicID] = p
	}

	grouped := map[string][]TopicProgress{}
	for _, t := range topics {
		p := byTopic[t.ID]
		grouped[t.Subject] = append(grouped[t.Subject], TopicProgress{
			TopicID:         t.ID,
			Topic:           t.Topic,
			Unit:            t.Unit,
			Slug:            t.Slug,
			Weight:          t.Weight,
			TheoryCompleted: p.TheoryCompleted,
			PYQ30Done:       p.PYQ30Done,
			Revision1Done:   p.Revision1Done,
			Revision2Done:   p.Revision2Done,
		})
	}

	report := scoring.BuildSyllabusReport(topics, progress)
	return &SyllabusOverview{
		GroupedTopics: grouped,
		Report:        report,
		ScoreCategory: scoring.ScoreCategory(report.FinalScore),
	}, nil
}

// SetMilestone flips one milestone flag and returns the refreshed overview
// so clients can re-render scores without a second round trip.
func (s *SyllabusService) SetMilestone(ctx context.Context, userID string, req MilestoneUpdateRequest) (*SyllabusOverview, error) {
	if fields := validateStruct(req); fields != nil {
		return nil, common.NewValidationError(fields)
	}
	if !model.ValidMilestoneField(req.Field) {
		return nil, common.NewValidationError(map[string]string{
			"field": fmt.Sprintf("field must be one of %v", model.MilestoneFields),
		})
	}

	exists, err := s.syllabusRepo.TopicExists(ctx, req.TopicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("unknown topic: %w", common.ErrNotFound)
	}

	if _, err := s.syllabusRepo.SetMilestone(ctx, userID, req.TopicID, req.Field, *req.Value); err != nil {
		return nil, err
	}
	return s.Overview(ctx, userID)
}
