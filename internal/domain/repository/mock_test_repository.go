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

type MockTestRepository interface {
	// SeedForUser inserts the fixed test slots 1..n, skipping numbers that
	// already exist. Safe to call on every request.
	SeedForUser(ctx context.Context, userID string, count int) error
	ListByUser(ctx context.Context, userID string) ([]model.MockTest, error)
	FindByNumber(ctx context.Context, userID string, testNumber int) (*model.MockTest, error)
	Update(ctx context.Context, test *model.MockTest) error
}

type pgMockTestRepository struct {
	db *sql.DB
}

func NewPgMockTestRepository(db *sql.DB) MockTestRepository {
	return &pgMockTestRepository{db: db}
}

func (r *pgMockTestRepository) SeedForUser(ctx context.Context, userID string, count int) error {
	query := `INSERT INTO mock_tests (id, user_id, test_number)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (user_id, test_number) DO NOTHING`
	for n := 1; n <= count; n++ {
		if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), userID, n); err != nil {
			return fmt.Errorf("pgMockTestRepository.SeedForUser: %w", err)
		}
	}
	return nil
}

func (r *pgMockTestRepository) ListByUser(ctx context.Context, userID string) ([]model.MockTest, error) {
	query := `SELECT id, user_id, test_number, attempted, attempt_date, score
	          FROM mock_tests WHERE user_id = $1
	          ORDER BY test_number`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgMockTestRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	tests := []model.MockTest{}
	for rows.Next() {
		var t model.MockTest
		if err := rows.Scan(&t.ID, &t.UserID, &t.TestNumber, &t.Attempted, &t.AttemptDate, &t.Score); err != nil {
			return nil, fmt.Errorf("pgMockTestRepository.ListByUser scan: %w", err)
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func (r *pgMockTestRepository) FindByNumber(ctx context.Context, userID string, testNumber int) (*model.MockTest, error) {
	query := `SELECT id, user_id, test_number, attempted, attempt_date, score
	          FROM mock_tests WHERE user_id = $1 AND test_number = $2`
	t := &model.MockTest{}
	err := r.db.QueryRowContext(ctx, query, userID, testNumber).Scan(
		&t.ID, &t.UserID, &t.TestNumber, &t.Attempted, &t.AttemptDate, &t.Score,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgMockTestRepository.FindByNumber: %w", err)
	}
	return t, nil
}

func (r *pgMockTestRepository) Update(ctx context.Context, t *model.MockTest) error {
	query := `UPDATE mock_tests
	          SET attempted = $1, attempt_date = $2, score = $3
	          WHERE user_id = $4 AND test_number = $5`
	result, err := r.db.ExecContext(ctx, query, t.Attempted, t.AttemptDate, t.Score, t.UserID, t.TestNumber)
	if err != nil {
		return fmt.Errorf("pgMockTestRepository.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
