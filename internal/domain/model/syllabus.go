package model

// SyllabusTopic is one entry of the global syllabus catalog. Weight is the
// topic's even share of its subject's total exam weightage.
type SyllabusTopic struct {
	ID      string  `json:"topic_id"`
	Subject string  `json:"subject"`
	Unit    string  `json:"unit"`
	Topic   string  `json:"topic"`
	Slug    string  `json:"slug"`
	Weight  float64 `json:"weight"`
}

// Milestone fields addressable through the syllabus-progress API.
const (
	MilestoneTheory    = "theory_completed"
	MilestonePYQ       = "pyq_30_done"
	MilestoneRevision1 = "revision_1_done"
	MilestoneRevision2 = "revision_2_done"
)

var MilestoneFields = []string{
	MilestoneTheory,
	MilestonePYQ,
	MilestoneRevision1,
	MilestoneRevision2,
}

func ValidMilestoneField(field string) bool {
	for _, f := range MilestoneFields {
		if field == f {
			return true
		}
	}
	return false
}

// UserSyllabusProgress tracks the four study milestones for one user on one
// topic. Absence of a row means all milestones are false.
type UserSyllabusProgress struct {
	ID              string `json:"-"`
	UserID          string `json:"-"`
	TopicID         string `json:"topic_id"`
	TheoryCompleted bool   `json:"theory_completed"`
	PYQ30Done       bool   `json:"pyq_30_done"`
	Revision1Done   bool   `json:"revision_1_done"`
	Revision2Done   bool   `json:"revision_2_done"`
}
