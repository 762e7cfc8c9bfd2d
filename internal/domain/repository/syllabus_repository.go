package repository

import (
	"context"
	"database/sql"
	"fmt"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"

	"github.com/google/uuid"
)

type SyllabusRepository interface {
	ListTopics(ctx context.Context) ([]model.SyllabusTopic, error)
	TopicExists(ctx context.Context, topicID string) (bool, error)
	ListProgressByUser(ctx context.Context, userID string) ([]model.UserSyllabusProgress, error)
	// SetMilestone upserts the user's progress row for a topic and flips one
	// milestone column. field must be one of model.MilestoneFields.
	SetMilestone(ctx context.Context, userID, topicID, field string, value bool) (*model.UserSyllabusProgress, error)
}

type pgSyllabusRepository struct {
	db *sql.DB
}

func NewPgSyllabusRepository(db *sql.DB) SyllabusRepository {
	return &pgSyllabusRepository{db: db}
}

func (r *pgSyllabusRepository) ListTopics(ctx context.Context) ([]model.SyllabusTopic, error) {
	query := `SELECT id, subject, unit, topic, slug, weight
	          FROM syllabus_topics ORDER BY subject, topic`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgSyllabusRepository.ListTopics: %w", err)
	}
	defer rows.Close()

	topics := []model.SyllabusTopic{}
	for rows.Next() {
		var t model.SyllabusTopic
		if err := rows.Scan(&t.ID, &t.Subject, &t.Unit, &t.Topic, &t.Slug, &t.Weight); err != nil {
			return nil, fmt.Errorf("pgSyllabusRepository.ListTopics scan: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (r *pgSyllabusRepository) TopicExists(ctx context.Context, topicID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM syllabus_topics WHERE id = $1)`, topicID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pgSyllabusRepository.TopicExists: %w", err)
	}
	return exists, nil
}

func (r *pgSyllabusRepository) ListProgressByUser(ctx context.Context, userID string) ([]model.UserSyllabusProgress, error) {
	query := `SELECT id, user_id, topic_id, theory_completed, pyq_30_done, revision_1_done, revision_2_done
	          FROM user_syllabus_progress WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgSyllabusRepository.ListProgressByUser: %w", err)
	}
	defer rows.Close()

	progress := []model.UserSyllabusProgress{}
	for rows.Next() {
		var p model.UserSyllabusProgress
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.TopicID,
			&p.TheoryCompleted, &p.PYQ30Done, &p.Revision1Done, &p.Revision2Done,
		); err != nil {
			return nil, fmt.Errorf("pgSyllabusRepository.ListProgressByUser scan: %w", err)
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

func (r *pgSyllabusRepository) SetMilestone(ctx context.Context, userID, topicID, field string, value bool) (*model.UserSyllabusProgress, error) {
	if !model.ValidMilestoneField(field) {
		return nil, fmt.Errorf("unknown milestone field %q: %w", field, common.ErrBadRequest)
	}

	// field is whitelisted above, so interpolating the column is safe.
	query := fmt.Sprintf(`
		INSERT INTO user_syllabus_progress (id, user_id, topic_id, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, topic_id) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING id, user_id, topic_id, theory_completed, pyq_30_done, revision_1_done, revision_2_done`,
		field, field, field)

	p := &model.UserSyllabusProgress{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), userID, topicID, value).Scan(
		&p.ID, &p.UserID, &p.TopicID,
		&p.TheoryCompleted, &p.PYQ30Done, &p.Revision1Done, &p.Revision2Done,
	)
	if err != nil {
		return nil, fmt.Errorf("pgSyllabusRepository.SetMilestone: %w", err)
	}
	return p, nil
}
