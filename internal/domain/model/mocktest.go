package model

// MockTestCount is the fixed number of mock-test slots per user.
const MockTestCount = 10

// MockTest is one of the ten fixed mock-test slots. Slots are seeded
// lazily the first time a user touches a mock-test endpoint.
type MockTest struct {
	ID          string   `json:"-"`
	UserID      string   `json:"-"`
	TestNumber  int      `json:"test_number"`
	Attempted   bool     `json:"attempted"`
	AttemptDate *Date    `json:"attempt_date"`
	Score       *float64 `json:"score"`
}
