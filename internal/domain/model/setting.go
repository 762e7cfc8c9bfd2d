package model

const (
	DefaultDailyGoal = 3
	DefaultTheme     = "dark"
)

// Setting is the one-per-user preferences row, created lazily on first
// access.
type Setting struct {
	ID        string `json:"-"`
	UserID    string `json:"-"`
	ExamDate  *Date  `json:"exam_date"`
	DailyGoal int    `json:"daily_goal"`
	Theme     string `json:"theme"`
}
