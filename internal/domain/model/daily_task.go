package model

import (
	"time"
)

// DailyTask is an ad-hoc planner item for a specific date.
type DailyTask struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Date      Date      `json:"date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
