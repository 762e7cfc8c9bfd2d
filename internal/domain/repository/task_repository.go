package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"
)

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)
	// FindByID is scoped: a task owned by another user is ErrNotFound, the
	// same as a missing id.
	FindByID(ctx context.Context, userID, taskID string) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, userID, taskID string) error
	// CompletedCreationDates returns the distinct calendar days on which the
	// user created at least one now-completed task, newest first.
	CompletedCreationDates(ctx context.Context, userID string) ([]model.Date, error)
}

type pgTaskRepository struct {
	db *sql.DB
}

func NewPgTaskRepository(db *sql.DB) TaskRepository {
	return &pgTaskRepository{db: db}
}

func (r *pgTaskRepository) Create(ctx context.Context, t *model.Task) error {
	query := `INSERT INTO tasks (id, user_id, title, unit, topic, priority, due_date, notes, completed)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Unit, t.Topic, t.Priority, t.DueDate, t.Notes, t.Completed,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	query := `SELECT id, user_id, title, unit, topic, priority, due_date, notes, completed, created_at
	          FROM tasks WHERE user_id = $1
	          ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgTaskRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Unit, &t.Topic, &t.Priority,
			&t.DueDate, &t.Notes, &t.Completed, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgTaskRepository.ListByUser scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *pgTaskRepository) FindByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	query := `SELECT id, user_id, title, unit, topic, priority, due_date, notes, completed, created_at
	          FROM tasks WHERE id = $1 AND user_id = $2`
	t := &model.Task{}
	err := r.db.QueryRowContext(ctx, query, taskID, userID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Unit, &t.Topic, &t.Priority,
		&t.DueDate, &t.Notes, &t.Completed, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTaskRepository.FindByID: %w", err)
	}
	return t, nil
}

func (r *pgTaskRepository) Update(ctx context.Context, t *model.Task) error {
	query := `UPDATE tasks
	          SET title = $1, unit = $2, topic = $3, priority = $4,
	              due_date = $5, notes = $6, completed = $7
	          WHERE id = $8 AND user_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		t.Title, t.Unit, t.Topic, t.Priority, t.DueDate, t.Notes, t.Completed,
		t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgTaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgTaskRepository) CompletedCreationDates(ctx context.Context, userID string) ([]model.Date, error) {
	query := `SELECT DISTINCT created_at::date AS day
	          FROM tasks WHERE user_id = $1 AND completed = TRUE
	          ORDER BY day DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgTaskRepository.CompletedCreationDates: %w", err)
	}
	defer rows.Close()

	var dates []model.Date
	for rows.Next() {
		var d model.Date
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("pgTaskRepository.CompletedCreationDates scan: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
