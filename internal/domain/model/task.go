package model

import (
	"time"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"

	DefaultPriority = PriorityMedium
)

// AllowedPriorities is sorted so that validation messages are stable.
var AllowedPriorities = []TaskPriority{PriorityHigh, PriorityLow, PriorityMedium}

func ValidPriority(p TaskPriority) bool {
	for _, allowed := range AllowedPriorities {
		if p == allowed {
			return true
		}
	}
	return false
}

type Task struct {
	ID        string       `json:"id"`
	UserID    string       `json:"-"`
	Title     string       `json:"title"`
	Unit      string       `json:"unit"`
	Topic     string       `json:"topic"`
	Priority  TaskPriority `json:"priority"`
	DueDate   *Date        `json:"due_date"`
	Notes     string       `json:"notes"`
	Completed bool         `json:"completed"`
	CreatedAt time.Time    `json:"created_at"`
}
