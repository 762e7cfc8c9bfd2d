package model

import (
	"time"
)

// StudySession is an immutable log entry of time studied on a given day.
type StudySession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"-"`
	Date            Date      `json:"date"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}
