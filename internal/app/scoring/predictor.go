package scoring

import (
	"math"

	"study_tracker/internal/domain/model"
)

const (
	// WeeklyHoursBaseline is the week-hour total treated as 100%
	// productivity (3 h/day over 7 days).
	WeeklyHoursBaseline = 21.0

	syllabusBlendWeight = 0.4
	attemptBlendWeight  = 0.2
	mockBlendWeight     = 0.2
	prodBlendWeight     = 0.2

	confidenceHighCutoff   = 70.0
	confidenceMediumCutoff = 45.0
)

// StudyHours sums session durations for today and for the current week
// (Monday-anchored), in hours rounded to 2 decimals.
func StudyHours(sessions []model.StudySession, today model.Date) (todayHours, weekHours float64) {
	weekStart := WeekStart(today)
	var todaySecs, weekSecs int
	// Compare calendar days by their YYYY-MM-DD keys; Date values may carry
	// different Locations (UTC from the database, local from Today).
	todayKey := today.String()
	weekStartKey := weekStart.String()
	for _, s := range sessions {
		day := s.Date.String()
		if day == todayKey {
			todaySecs += s.DurationSeconds
		}
		if day >= weekStartKey && day <= todayKey {
			weekSecs += s.DurationSeconds
		}
	}
	return round2(float64(todaySecs) / 3600), round2(float64(weekSecs) / 3600)
}

// WeekStart returns the Monday on or before d.
func WeekStart(d model.Date) model.Date {
	daysSinceMonday := (int(d.Weekday()) + 6) % 7
	return model.NewDate(d.AddDate(0, 0, -daysSinceMonday))
}

// MockStats are the fixed-ten-slot mock-test aggregates. Average and best
// consider only attempted tests carrying a score.
type MockStats struct {
	TotalTests     int     `json:"total_tests"`
	AttemptedCount int     `json:"attempted_count"`
	AttemptPercent float64 `json:"attempt_percent"`
	AverageScore   float64 `json:"average_score"`
	BestScore      float64 `json:"best_score"`
}

func BuildMockStats(tests []model.MockTest) MockStats {
	stats := MockStats{TotalTests: model.MockTestCount}
	var scored int
	var sum float64
	for _, t := range tests {
		if !t.Attempted {
			continue
		}
		stats.AttemptedCount++
		if t.Score == nil {
			continue
		}
		scored++
		sum += *t.Score
		if *t.Score > stats.BestScore {
			stats.BestScore = *t.Score
		}
	}
	stats.AttemptPercent = Percent(stats.AttemptedCount, stats.TotalTests)
	if scored > 0 {
		stats.AverageScore = round2(sum / float64(scored))
	}
	return stats
}

// ProductivityIndex maps week hours onto 0..100 with 21 h/week as the
// 100% baseline.
func ProductivityIndex(weekHours float64) float64 {
	return math.Min(100, weekHours/WeeklyHoursBaseline*100)
}

// NormalizedMockScore rescales the 0..200 average mock score to 0..100.
func NormalizedMockScore(averageScore float64) float64 {
	return averageScore / ScoreCap * 100
}

// Prediction is the blended readiness index with its confidence label.
type Prediction struct {
	PredictedScore float64 `json:"predicted_score"`
	Confidence     string  `json:"confidence"`
}

// Predict blends the raw weighted total (uncapped and unfloored, unlike the
// 20-floor FinalScore) with mock and productivity percentages. The two
// scales differ deliberately; both are depended-upon behavior.
func Predict(weightedTotal, attemptPercent, normalizedMock, productivityIndex float64) Prediction {
	predicted := round1(syllabusBlendWeight*weightedTotal +
		attemptBlendWeight*attemptPercent +
		mockBlendWeight*normalizedMock +
		prodBlendWeight*productivityIndex)

	confidence := "Low"
	switch {
	case predicted >= confidenceHighCutoff:
		confidence = "High"
	case predicted >= confidenceMediumCutoff:
		confidence = "Medium"
	}
	return Prediction{PredictedScore: predicted, Confidence: confidence}
}
