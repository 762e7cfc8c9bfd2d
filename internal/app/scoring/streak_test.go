package scoring

import (
	"testing"
	"time"

	"study_tracker/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestStreak(t *testing.T) {
	today := date("2026-08-27")

	tests := []struct {
		name  string
		dates []model.Date
		want  int
	}{
		{"no activity", nil, 0},
		{"today only", []model.Date{today}, 1},
		{
			"three consecutive days ending today",
			[]model.Date{today, date("2026-08-26"), date("2026-08-25")},
			3,
		},
		{
			"gap resets to the unbroken run ending today",
			[]model.Date{today, date("2026-08-26"), date("2026-08-24")},
			2,
		},
		{
			"run not ending today scores zero",
			[]model.Date{date("2026-08-26"), date("2026-08-25")},
			0,
		},
		{
			"duplicate dates count once",
			[]model.Date{today, today, date("2026-08-26")},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.dates, today))
		})
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	today := date("2026-09-01")
	dates := []model.Date{today, date("2026-08-31"), date("2026-08-30")}
	assert.Equal(t, 3, Streak(dates, today))
}

func TestExamCountdown(t *testing.T) {
	now := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)

	t.Run("no exam date", func(t *testing.T) {
		assert.Equal(t, Countdown{}, ExamCountdown(nil, now))
	})

	t.Run("future exam", func(t *testing.T) {
		exam := date("2026-09-06")
		got := ExamCountdown(&exam, now)
		// Midnight starting 2026-09-06 is 9d 13h 30m away.
		assert.Equal(t, Countdown{Days: 9, Hours: 13, Minutes: 30}, got)
	})

	t.Run("exam today never goes negative", func(t *testing.T) {
		exam := date("2026-08-27")
		assert.Equal(t, Countdown{}, ExamCountdown(&exam, now))
	})

	t.Run("exam exactly at midnight now", func(t *testing.T) {
		exam := date("2026-08-27")
		midnight := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, Countdown{}, ExamCountdown(&exam, midnight))
	})

	t.Run("past exam clamps to zero", func(t *testing.T) {
		exam := date("2026-01-01")
		assert.Equal(t, Countdown{}, ExamCountdown(&exam, now))
	})
}
