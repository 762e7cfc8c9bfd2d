package scoring

import (
	"testing"

	"study_tracker/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalog builds a two-subject syllabus: Algebra (4 topics, weight 25) and
// Mechanics (2 topics, weight 10).
func catalog() []model.SyllabusTopic {
	topics := []model.SyllabusTopic{}
	for i := 0; i < 4; i++ {
		topics = append(topics, model.SyllabusTopic{
			ID:      "alg-" + string(rune('a'+i)),
			Subject: "Algebra",
			Unit:    "Unit 2",
			Weight:  25.0 / 4,
		})
	}
	for i := 0; i < 2; i++ {
		topics = append(topics, model.SyllabusTopic{
			ID:      "mech-" + string(rune('a'+i)),
			Subject: "Classical Mechanics",
			Unit:    "Unit 3",
			Weight:  10.0 / 2,
		})
	}
	return topics
}

func fullProgress(topics []model.SyllabusTopic) []model.UserSyllabusProgress {
	progress := make([]model.UserSyllabusProgress, 0, len(topics))
	for _, t := range topics {
		progress = append(progress, model.UserSyllabusProgress{
			TopicID:         t.ID,
			TheoryCompleted: true,
			PYQ30Done:       true,
			Revision1Done:   true,
			Revision2Done:   true,
		})
	}
	return progress
}

func TestBuildSyllabusReportNoProgress(t *testing.T) {
	report := BuildSyllabusReport(catalog(), nil)

	require.Len(t, report.Subjects, 2)
	for _, s := range report.Subjects {
		assert.Zero(t, s.TheoryPercent)
		assert.Zero(t, s.PYQPercent)
		assert.Zero(t, s.Revision1Percent)
		assert.Zero(t, s.Revision2Percent)
		assert.Zero(t, s.ProgressScore)
		assert.Zero(t, s.Contribution)
	}
	assert.Zero(t, report.WeightedTotal)
	assert.Equal(t, 20.0, report.FinalScore, "zero progress keeps the 20-point floor")
}

func TestBuildSyllabusReportFullProgress(t *testing.T) {
	topics := catalog()
	report := BuildSyllabusReport(topics, fullProgress(topics))

	assert.InDelta(t, 35.0, report.WeightedTotal, 1e-9)
	assert.Equal(t, 55.0, report.FinalScore)
	assert.Equal(t, 100.0, report.TheoryPercent)
	assert.Equal(t, 100.0, report.Revision2Percent)
	for _, s := range report.Subjects {
		assert.Equal(t, 1.0, s.ProgressScore)
		assert.Equal(t, s.Weight, s.Contribution)
	}
}

func TestBuildSyllabusReportFinalScoreCappedAt200(t *testing.T) {
	// One subject carrying 300 weight; full progress would push the raw
	// total past the cap.
	topics := []model.SyllabusTopic{
		{ID: "t1", Subject: "Everything", Unit: "Unit 1", Weight: 150},
		{ID: "t2", Subject: "Everything", Unit: "Unit 1", Weight: 150},
	}
	report := BuildSyllabusReport(topics, fullProgress(topics))

	assert.Equal(t, 300.0, report.WeightedTotal, "weighted total stays uncapped")
	assert.Equal(t, 200.0, report.FinalScore)
}

func TestBuildSyllabusReportMilestoneBlend(t *testing.T) {
	topics := catalog()
	// Theory done on all 4 Algebra topics, nothing else anywhere.
	progress := []model.UserSyllabusProgress{}
	for _, topic := range topics {
		if topic.Subject == "Algebra" {
			progress = append(progress, model.UserSyllabusProgress{TopicID: topic.ID, TheoryCompleted: true})
		}
	}
	report := BuildSyllabusReport(topics, progress)

	var algebra SubjectSummary
	for _, s := range report.Subjects {
		if s.Subject == "Algebra" {
			algebra = s
		}
	}
	assert.Equal(t, 100.0, algebra.TheoryPercent)
	assert.Zero(t, algebra.PYQPercent)
	// 100*0.40 / 100 = 0.40 progress score, scaled by weight 25.
	assert.InDelta(t, 0.40, algebra.ProgressScore, 1e-9)
	assert.InDelta(t, 10.0, algebra.Contribution, 1e-9)
	assert.InDelta(t, 10.0, report.WeightedTotal, 1e-9)

	// Global percentages count over all 6 topics, unweighted.
	assert.InDelta(t, 4.0/6.0*100, report.TheoryPercent, 1e-9)
}

func TestBuildSyllabusReportSortsByWeightDescending(t *testing.T) {
	report := BuildSyllabusReport(catalog(), nil)

	require.Len(t, report.Subjects, 2)
	assert.Equal(t, "Algebra", report.Subjects[0].Subject)
	assert.Equal(t, "Classical Mechanics", report.Subjects[1].Subject)
	assert.Greater(t, report.Subjects[0].Weight, report.Subjects[1].Weight)
}

func TestPercentZeroDenominator(t *testing.T) {
	assert.Zero(t, Percent(0, 0))
	assert.Zero(t, Percent(5, 0))
}

func TestScoreCategory(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{20, "Needs major improvement"},
		{79.9, "Needs major improvement"},
		{80, "Approaching cutoff"},
		{120, "NET qualification range"},
		{160, "Strong JRF potential"},
		{200, "Strong JRF potential"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreCategory(tt.score), "score %v", tt.score)
	}
}
