package scoring

import (
	"time"

	"study_tracker/internal/domain/model"
)

// Streak counts consecutive calendar days ending today that appear in
// dates. The walk stops at the first gap, so a run not ending today
// scores 0.
func Streak(dates []model.Date, today model.Date) int {
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		seen[d.String()] = true
	}

	streak := 0
	for day := today; seen[day.String()]; day = model.NewDate(day.AddDate(0, 0, -1)) {
		streak++
	}
	return streak
}

// Countdown is the remaining time until an exam, floored at zero.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// ExamCountdown computes whole days/hours/minutes from now until local
// midnight at the start of the exam date. A nil exam date, or one already
// passed, yields all zeros.
func ExamCountdown(examDate *model.Date, now time.Time) Countdown {
	if examDate == nil {
		return Countdown{}
	}
	midnight := time.Date(
		examDate.Year(), examDate.Month(), examDate.Day(),
		0, 0, 0, 0, now.Location(),
	)
	remaining := midnight.Sub(now)
	if remaining < 0 {
		return Countdown{}
	}
	totalMinutes := int(remaining.Minutes())
	return Countdown{
		Days:    totalMinutes / (24 * 60),
		Hours:   (totalMinutes % (24 * 60)) / 60,
		Minutes: totalMinutes % 60,
	}
}
