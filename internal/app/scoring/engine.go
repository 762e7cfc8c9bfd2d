// Package scoring holds the pure aggregation engine: syllabus rollups, the
// predicted-score blend, streaks and the exam countdown. Everything here is
// deterministic over plain slices; zero denominators yield zero rather than
// NaN or a panic.
package scoring

import (
	"math"
	"sort"

	"study_tracker/internal/domain/model"
)

const (
	theoryWeight    = 0.40
	pyqWeight       = 0.30
	revision1Weight = 0.20
	revision2Weight = 0.10

	// BaselineFloor and ScoreCap bound the syllabus-page score: a fixed
	// 20-point floor plus weighted progress, capped at the 200-mark scale.
	BaselineFloor = 20.0
	ScoreCap      = 200.0
)

// SubjectSummary is one subject's milestone rollup.
type SubjectSummary struct {
	Subject          string  `json:"subject"`
	Unit             string  `json:"unit"`
	TopicCount       int     `json:"topic_count"`
	Weight           float64 `json:"weight"`
	TheoryPercent    float64 `json:"theory_percent"`
	PYQPercent       float64 `json:"pyq_percent"`
	Revision1Percent float64 `json:"revision_1_percent"`
	Revision2Percent float64 `json:"revision_2_percent"`
	// ProgressScore is the weighted blend of the four percentages as a
	// fraction in [0,1].
	ProgressScore float64 `json:"progress_score"`
	// Contribution is ProgressScore scaled by the subject's exam weight.
	Contribution float64 `json:"contribution"`
}

// SyllabusReport is the full §4.1 aggregation for one user.
type SyllabusReport struct {
	Subjects []SubjectSummary `json:"subjects"`

	// Global milestone percentages over the entire catalog, unweighted.
	TheoryPercent    float64 `json:"theory_percent"`
	PYQPercent       float64 `json:"pyq_percent"`
	Revision1Percent float64 `json:"revision_1_percent"`
	Revision2Percent float64 `json:"revision_2_percent"`

	// WeightedTotal is the sum of subject contributions, uncapped and
	// unfloored. The predictor consumes this value.
	WeightedTotal float64 `json:"weighted_total"`
	// FinalScore is the syllabus-page score: min(200, 20 + WeightedTotal).
	FinalScore float64 `json:"final_score"`
}

// BuildSyllabusReport aggregates per-topic milestones into subject summaries
// and the two headline scores. Topics without a progress row count as all
// milestones false.
func BuildSyllabusReport(topics []model.SyllabusTopic, progress []model.UserSyllabusProgress) SyllabusReport {
	byTopic := make(map[string]model.UserSyllabusProgress, len(progress))
	for _, p := range progress {
		byTopic[p.TopicID] = p
	}

	type subjectAccum struct {
		unit     string
		topics   int
		weight   float64
		theory   int
		pyq      int
		rev1     int
		rev2     int
	}
	accum := map[string]*subjectAccum{}
	var order []string

	var globalTheory, globalPYQ, globalRev1, globalRev2 int
	for _, topic := range topics {
		a, ok := accum[topic.Subject]
		if !ok {
			a = &subjectAccum{unit: topic.Unit}
			accum[topic.Subject] = a
			order = append(order, topic.Subject)
		}
		a.topics++
		a.weight += topic.Weight

		p := byTopic[topic.ID] // zero value when absent: all false
		if p.TheoryCompleted {
			a.theory++
			globalTheory++
		}
		if p.PYQ30Done {
			a.pyq++
			globalPYQ++
		}
		if p.Revision1Done {
			a.rev1++
			globalRev1++
		}
		if p.Revision2Done {
			a.rev2++
			globalRev2++
		}
	}

	report := SyllabusReport{Subjects: make([]SubjectSummary, 0, len(order))}
	for _, subject := range order {
		a := accum[subject]
		s := SubjectSummary{
			Subject:          subject,
			Unit:             a.unit,
			TopicCount:       a.topics,
			Weight:           a.weight,
			TheoryPercent:    Percent(a.theory, a.topics),
			PYQPercent:       Percent(a.pyq, a.topics),
			Revision1Percent: Percent(a.rev1, a.topics),
			Revision2Percent: Percent(a.rev2, a.topics),
		}
		blended := s.TheoryPercent*theoryWeight +
			s.PYQPercent*pyqWeight +
			s.Revision1Percent*revision1Weight +
			s.Revision2Percent*revision2Weight
		s.ProgressScore = blended / 100
		s.Contribution = s.ProgressScore * s.Weight
		report.WeightedTotal += s.Contribution
		report.Subjects = append(report.Subjects, s)
	}

	// Heaviest subjects first for display.
	sort.SliceStable(report.Subjects, func(i, j int) bool {
		return report.Subjects[i].Weight > report.Subjects[j].Weight
	})

	report.TheoryPercent = Percent(globalTheory, len(topics))
	report.PYQPercent = Percent(globalPYQ, len(topics))
	report.Revision1Percent = Percent(globalRev1, len(topics))
	report.Revision2Percent = Percent(globalRev2, len(topics))
	report.FinalScore = math.Min(ScoreCap, BaselineFloor+report.WeightedTotal)
	return report
}

// Percent returns count/total*100, or 0 when total is 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// ScoreCategory maps the 20..200 final score onto the qualitative bands
// shown on the score-predictor page.
func ScoreCategory(finalScore float64) string {
	switch {
	case finalScore >= 160:
		return "Strong JRF potential"
	case finalScore >= 120:
		return "NET qualification range"
	case finalScore >= 80:
		return "Approaching cutoff"
	default:
		return "Needs major improvement"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
