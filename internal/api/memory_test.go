package api_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the router tests. Each one mirrors the
// scoping rules of its Postgres counterpart.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("username %q taken: %w", user.Username, common.ErrConflict)
		}
	}
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}
	clone := *u
	return &clone, nil
}

type memSettingRepo struct {
	mu       sync.Mutex
	settings map[string]*model.Setting // keyed by user id
}

func newMemSettingRepo() *memSettingRepo {
	return &memSettingRepo{settings: map[string]*model.Setting{}}
}

func (r *memSettingRepo) GetOrCreate(_ context.Context, userID string) (*model.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.settings[userID]; ok {
		clone := *s
		return &clone, nil
	}
	s := &model.Setting{
		ID:        uuid.NewString(),
		UserID:    userID,
		DailyGoal: model.DefaultDailyGoal,
		Theme:     model.DefaultTheme,
	}
	r.settings[userID] = s
	clone := *s
	return &clone, nil
}

func (r *memSettingRepo) Update(_ context.Context, setting *model.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.settings[setting.UserID]; !ok {
		return fmt.Errorf("settings for %s: %w", setting.UserID, common.ErrNotFound)
	}
	clone := *setting
	r.settings[setting.UserID] = &clone
	return nil
}

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*model.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*model.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.CreatedAt = time.Now()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memTaskRepo) ListByUser(_ context.Context, userID string) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memTaskRepo) FindByID(_ context.Context, userID, taskID string) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, fmt.Errorf("task %s: %w", taskID, common.ErrNotFound)
	}
	clone := *t
	return &clone, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return fmt.Errorf("task %s: %w", task.ID, common.ErrNotFound)
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, userID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return fmt.Errorf("task %s: %w", taskID, common.ErrNotFound)
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *memTaskRepo) CompletedCreationDates(_ context.Context, userID string) ([]model.Date, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]model.Date{}
	for _, t := range r.tasks {
		if t.UserID == userID && t.Completed {
			d := model.NewDate(t.CreatedAt)
			seen[d.String()] = d
		}
	}
	out := make([]model.Date, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	return out, nil
}

type memStudySessionRepo struct {
	mu       sync.Mutex
	sessions []model.StudySession
}

func newMemStudySessionRepo() *memStudySessionRepo {
	return &memStudySessionRepo{}
}

func (r *memStudySessionRepo) Create(_ context.Context, session *model.StudySession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.CreatedAt = time.Now()
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *memStudySessionRepo) ListByUser(_ context.Context, userID string) ([]model.StudySession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.StudySession{}
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memRoutineRepo struct {
	mu          sync.Mutex
	templates   []model.RoutineTemplate
	completions map[string]*model.RoutineCompletion // user|routine|date
}

func newMemRoutineRepo(templates []model.RoutineTemplate) *memRoutineRepo {
	return &memRoutineRepo{
		templates:   templates,
		completions: map[string]*model.RoutineCompletion{},
	}
}

func completionKey(userID, routineID string, date model.Date) string {
	return userID + "|" + routineID + "|" + date.String()
}

func (r *memRoutineRepo) ListTemplates(_ context.Context) ([]model.RoutineTemplate, error) {
	return append([]model.RoutineTemplate(nil), r.templates...), nil
}

func (r *memRoutineRepo) FindTemplate(_ context.Context, routineID string) (*model.RoutineTemplate, error) {
	for _, t := range r.templates {
		if t.ID == routineID {
			clone := t
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("routine %s: %w", routineID, common.ErrNotFound)
}

func (r *memRoutineRepo) UpsertCompletion(_ context.Context, completion *model.RoutineCompletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := completionKey(completion.UserID, completion.RoutineID, completion.Date)
	if existing, ok := r.completions[key]; ok {
		existing.Completed = completion.Completed
		return nil
	}
	completion.ID = uuid.NewString()
	clone := *completion
	r.completions[key] = &clone
	return nil
}

func (r *memRoutineRepo) ListCompletionsForDate(_ context.Context, userID string, date model.Date) ([]model.RoutineCompletion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.RoutineCompletion{}
	for _, c := range r.completions {
		if c.UserID == userID && c.Date.String() == date.String() {
			out = append(out, *c)
		}
	}
	return out, nil
}

type memDailyTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*model.DailyTask
}

func newMemDailyTaskRepo() *memDailyTaskRepo {
	return &memDailyTaskRepo{tasks: map[string]*model.DailyTask{}}
}

func (r *memDailyTaskRepo) Create(_ context.Context, task *model.DailyTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.CreatedAt = time.Now()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memDailyTaskRepo) ListByUserDate(_ context.Context, userID string, date model.Date) ([]model.DailyTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.DailyTask{}
	for _, t := range r.tasks {
		if t.UserID == userID && t.Date.String() == date.String() {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memDailyTaskRepo) FindByID(_ context.Context, userID, taskID string) (*model.DailyTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, fmt.Errorf("daily task %s: %w", taskID, common.ErrNotFound)
	}
	clone := *t
	return &clone, nil
}

func (r *memDailyTaskRepo) Update(_ context.Context, task *model.DailyTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return fmt.Errorf("daily task %s: %w", task.ID, common.ErrNotFound)
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memDailyTaskRepo) Delete(_ context.Context, userID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return fmt.Errorf("daily task %s: %w", taskID, common.ErrNotFound)
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *memDailyTaskRepo) CompletedDates(_ context.Context, userID string) ([]model.Date, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]model.Date{}
	for _, t := range r.tasks {
		if t.UserID == userID && t.Completed {
			seen[t.Date.String()] = t.Date
		}
	}
	out := make([]model.Date, 0, len(seen))
	for _, d := range seen {
		out = append(out, d)
	}
	return out, nil
}

type memMockTestRepo struct {
	mu    sync.Mutex
	tests map[string]*model.MockTest // user|number
}

func newMemMockTestRepo() *memMockTestRepo {
	return &memMockTestRepo{tests: map[string]*model.MockTest{}}
}

func mockKey(userID string, testNumber int) string {
	return fmt.Sprintf("%s|%d", userID, testNumber)
}

func (r *memMockTestRepo) SeedForUser(_ context.Context, userID string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for n := 1; n <= count; n++ {
		key := mockKey(userID, n)
		if _, ok := r.tests[key]; !ok {
			r.tests[key] = &model.MockTest{
				ID:         uuid.NewString(),
				UserID:     userID,
				TestNumber: n,
			}
		}
	}
	return nil
}

func (r *memMockTestRepo) ListByUser(_ context.Context, userID string) ([]model.MockTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.MockTest{}
	for _, t := range r.tests {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TestNumber < out[j].TestNumber })
	return out, nil
}

func (r *memMockTestRepo) FindByNumber(_ context.Context, userID string, testNumber int) (*model.MockTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tests[mockKey(userID, testNumber)]
	if !ok {
		return nil, fmt.Errorf("mock test %d: %w", testNumber, common.ErrNotFound)
	}
	clone := *t
	return &clone, nil
}

func (r *memMockTestRepo) Update(_ context.Context, test *model.MockTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := mockKey(test.UserID, test.TestNumber)
	if _, ok := r.tests[key]; !ok {
		return fmt.Errorf("mock test %d: %w", test.TestNumber, common.ErrNotFound)
	}
	clone := *test
	r.tests[key] = &clone
	return nil
}

type memSyllabusRepo struct {
	mu       sync.Mutex
	topics   []model.SyllabusTopic
	progress map[string]*model.UserSyllabusProgress // user|topic
}

func newMemSyllabusRepo(topics []model.SyllabusTopic) *memSyllabusRepo {
	return &memSyllabusRepo{
		topics:   topics,
		progress: map[string]*model.UserSyllabusProgress{},
	}
}

func (r *memSyllabusRepo) ListTopics(_ context.Context) ([]model.SyllabusTopic, error) {
	return append([]model.SyllabusTopic(nil), r.topics...), nil
}

func (r *memSyllabusRepo) TopicExists(_ context.Context, topicID string) (bool, error) {
	for _, t := range r.topics {
		if t.ID == topicID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memSyllabusRepo) ListProgressByUser(_ context.Context, userID string) ([]model.UserSyllabusProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.UserSyllabusProgress{}
	for _, p := range r.progress {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memSyllabusRepo) SetMilestone(_ context.Context, userID, topicID, field string, value bool) (*model.UserSyllabusProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userID + "|" + topicID
	p, ok := r.progress[key]
	if !ok {
		p = &model.UserSyllabusProgress{
			ID:      uuid.NewString(),
			UserID:  userID,
			TopicID: topicID,
		}
		r.progress[key] = p
	}
	switch field {
	case model.MilestoneTheory:
		p.TheoryCompleted = value
	case model.MilestonePYQ:
		p.PYQ30Done = value
	case model.MilestoneRevision1:
		p.Revision1Done = value
	case model.MilestoneRevision2:
		p.Revision2Done = value
	default:
		return nil, fmt.Errorf("unknown milestone field %q: %w", field, common.ErrBadRequest)
	}
	clone := *p
	return &clone, nil
}
