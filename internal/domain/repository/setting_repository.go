package repository

import (
	"context"
	"database/sql"
	"fmt"

	"study_tracker/internal/domain/model"

	"github.com/google/uuid"
)

type SettingRepository interface {
	// GetOrCreate upserts the user's settings row with defaults and returns
	// it. The unique constraint on user_id makes concurrent calls benign.
	GetOrCreate(ctx context.Context, userID string) (*model.Setting, error)
	Update(ctx context.Context, setting *model.Setting) error
}

type pgSettingRepository struct {
	db *sql.DB
}

func NewPgSettingRepository(db *sql.DB) SettingRepository {
	return &pgSettingRepository{db: db}
}

func (r *pgSettingRepository) GetOrCreate(ctx context.Context, userID string) (*model.Setting, error) {
	upsert := `INSERT INTO settings (id, user_id, daily_goal, theme)
	           VALUES ($1, $2, $3, $4)
	           ON CONFLICT (user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, upsert, uuid.NewString(), userID, model.DefaultDailyGoal, model.DefaultTheme)
	if err != nil {
		return nil, fmt.Errorf("pgSettingRepository.GetOrCreate insert: %w", err)
	}

	query := `SELECT id, user_id, exam_date, daily_goal, theme
	          FROM settings WHERE user_id = $1`
	s := &model.Setting{}
	err = r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.ExamDate, &s.DailyGoal, &s.Theme,
	)
	if err != nil {
		return nil, fmt.Errorf("pgSettingRepository.GetOrCreate select: %w", err)
	}
	return s, nil
}

func (r *pgSettingRepository) Update(ctx context.Context, s *model.Setting) error {
	query := `UPDATE settings
	          SET exam_date = $1, daily_goal = $2, theme = $3
	          WHERE user_id = $4`
	if _, err := r.db.ExecContext(ctx, query, s.ExamDate, s.DailyGoal, s.Theme, s.UserID); err != nil {
		return fmt.Errorf("pgSettingRepository.Update: %w", err)
	}
	return nil
}
