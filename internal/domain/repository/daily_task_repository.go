package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
)

type DailyTaskRepository interface {
	Create(ctx context.Context, task *model.DailyTask) error
	ListByUserDate(ctx context.Context, userID string, date model.Date) ([]model.DailyTask, error)
	FindByID(ctx context.Context, userID, taskID string) (*model.DailyTask, error)
	Update(ctx context.Context, task *model.DailyTask) error
	Delete(ctx context.Context, userID, taskID string) error
	// CompletedDates returns the distinct days with at least one completed
	// planner task, newest first.
	CompletedDates(ctx context.Context, userID string) ([]model.Date, error)
}

type pgDailyTaskRepository struct {
	db *sql.DB
}

func NewPgDailyTaskRepository(db *sql.DB) DailyTaskRepository {
	return &pgDailyTaskRepository{db: db}
}

func (r *pgDailyTaskRepository) Create(ctx context.Context, t *model.DailyTask) error {
	query := `INSERT INTO daily_tasks (id, user_id, title, date, completed)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, t.ID, t.UserID, t.Title, t.Date, t.Completed).
		Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgDailyTaskRepository.Create: %w", err)
	}
	return nil
}

func (r *pgDailyTaskRepository) ListByUserDate(ctx context.Context, userID string, date model.Date) ([]model.DailyTask, error) {
	query := `SELECT id, user_id, title, date, completed, created_at
	          FROM daily_tasks WHERE user_id = $1 AND date = $2
	          ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("pgDailyTaskRepository.ListByUserDate: %w", err)
	}
	defer rows.Close()

	tasks := []model.DailyTask{}
	for rows.Next() {
		var t model.DailyTask
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Date, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgDailyTaskRepository.ListByUserDate scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *pgDailyTaskRepository) FindByID(ctx context.Context, userID, taskID string) (*model.DailyTask, error) {
	query := `SELECT id, user_id, title, date, completed, created_at
	          FROM daily_tasks WHERE id = $1 AND user_id = $2`
	t := &model.DailyTask{}
	err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Date, &t.Completed, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgDailyTaskRepository.FindByID: %w", err)
	}
	return t, nil
}

func (r *pgDailyTaskRepository) Update(ctx context.Context, t *model.DailyTask) error {
	query := `UPDATE daily_tasks
	          SET title = $1, date = $2, completed = $3
	          WHERE id = $4 AND user_id = $5`
	result, err := r.db.ExecContext(ctx, query, t.Title, t.Date, t.Completed, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("pgDailyTaskRepository.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgDailyTaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM daily_tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return fmt.Errorf("pgDailyTaskRepository.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgDailyTaskRepository) CompletedDates(ctx context.Context, userID string) ([]model.Date, error) {
	query := `SELECT DISTINCT date FROM daily_tasks
	          WHERE user_id = $1 AND completed = TRUE
	          ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgDailyTaskRepository.CompletedDates: %w", err)
	}
	defer rows.Close()

	var dates []model.Date
	for rows.Next() {
		var d model.Date
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("pgDailyTaskRepository.CompletedDates scan: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
