package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"

	"github.com/google/uuid"
)

type RoutineRepository interface {
	ListTemplates(ctx context.Context) ([]model.RoutineTemplate, error)
	FindTemplate(ctx context.Context, routineID string) (*model.RoutineTemplate, error)
	// UpsertCompletion creates or updates the per-day completion flag. Two
	// concurrent toggles of the same slot resolve as later-write-wins.
	UpsertCompletion(ctx context.Context, completion *model.RoutineCompletion) error
	ListCompletionsForDate(ctx context.Context, userID string, date model.Date) ([]model.RoutineCompletion, error)
}

type pgRoutineRepository struct {
	db *sql.DB
}

func NewPgRoutineRepository(db *sql.DB) RoutineRepository {
	return &pgRoutineRepository{db: db}
}

func (r *pgRoutineRepository) ListTemplates(ctx context.Context) ([]model.RoutineTemplate, error) {
	query := `SELECT id, title, display_order, time_label
	          FROM routine_templates ORDER BY display_order`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgRoutineRepository.ListTemplates: %w", err)
	}
	defer rows.Close()

	templates := []model.RoutineTemplate{}
	for rows.Next() {
		var t model.RoutineTemplate
		if err := rows.Scan(&t.ID, &t.Title, &t.DisplayOrder, &t.TimeLabel); err != nil {
			return nil, fmt.Errorf("pgRoutineRepository.ListTemplates scan: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *pgRoutineRepository) FindTemplate(ctx context.Context, routineID string) (*model.RoutineTemplate, error) {
	query := `SELECT id, title, display_order, time_label
	          FROM routine_templates WHERE id = $1`
	t := &model.RoutineTemplate{}
	err := r.db.QueryRowContext(ctx, query, routineID).
		Scan(&t.ID, &t.Title, &t.DisplayOrder, &t.TimeLabel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgRoutineRepository.FindTemplate: %w", err)
	}
	return t, nil
}

func (r *pgRoutineRepository) UpsertCompletion(ctx context.Context, c *model.RoutineCompletion) error {
	query := `INSERT INTO routine_completions (id, user_id, routine_id, date, completed)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id, routine_id, date)
	          DO UPDATE SET completed = EXCLUDED.completed`
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.RoutineID, c.Date, c.Completed); err != nil {
		return fmt.Errorf("pgRoutineRepository.UpsertCompletion: %w", err)
	}
	return nil
}

func (r *pgRoutineRepository) ListCompletionsForDate(ctx context.Context, userID string, date model.Date) ([]model.RoutineCompletion, error) {
	query := `SELECT id, user_id, routine_id, date, completed
	          FROM routine_completions WHERE user_id = $1 AND date = $2`
	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("pgRoutineRepository.ListCompletionsForDate: %w", err)
	}
	defer rows.Close()

	completions := []model.RoutineCompletion{}
	for rows.Next() {
		var c model.RoutineCompletion
		if err := rows.Scan(&c.ID, &c.UserID, &c.RoutineID, &c.Date, &c.Completed); err != nil {
			return nil, fmt.Errorf("pgRoutineRepository.ListCompletionsForDate scan: %w", err)
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}
