package model

// RoutineTemplate is a shared daily schedule slot; the catalog is global
// seed data, not per-user.
type RoutineTemplate struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DisplayOrder int    `json:"display_order"`
	TimeLabel    string `json:"time_label"`
}

// RoutineCompletion records whether a user ticked a routine slot on a
// given date. Unique on (user, routine, date).
type RoutineCompletion struct {
	ID        string `json:"-"`
	UserID    string `json:"-"`
	RoutineID string `json:"routine_id"`
	Date      Date   `json:"date"`
	Completed bool   `json:"completed"`
}

// RoutineSlot is a template joined with the caller's completion state for
// one date, as returned by the daily-routine endpoint.
type RoutineSlot struct {
	RoutineTemplate
	Completed bool `json:"completed"`
}
