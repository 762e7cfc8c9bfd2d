package repository

import (
	"context"
	"database/sql"
	"fmt"

	"study_tracker/internal/domain/model"
)

type StudySessionRepository interface {
	Create(ctx context.Context, session *model.StudySession) error
	ListByUser(ctx context.Context, userID string) ([]model.StudySession, error)
}

type pgStudySessionRepository struct {
	db *sql.DB
}

func NewPgStudySessionRepository(db *sql.DB) StudySessionRepository {
	return &pgStudySessionRepository{db: db}
}

func (r *pgStudySessionRepository) Create(ctx context.Context, s *model.StudySession) error {
	query := `INSERT INTO study_sessions (id, user_id, date, duration_seconds)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, s.ID, s.UserID, s.Date, s.DurationSeconds).
		Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgStudySessionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgStudySessionRepository) ListByUser(ctx context.Context, userID string) ([]model.StudySession, error) {
	query := `SELECT id, user_id, date, duration_seconds, created_at
	          FROM study_sessions WHERE user_id = $1
	          ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgStudySessionRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	sessions := []model.StudySession{}
	for rows.Next() {
		var s model.StudySession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.DurationSeconds, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgStudySessionRepository.ListByUser scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
