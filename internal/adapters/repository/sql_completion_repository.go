package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

type SQLCompletionRepository struct {
	db *sqlx.DB
}

func NewSQLCompletionRepository(db *sqlx.DB) *SQLCompletionRepository {
	return &SQLCompletionRepository{db: db}
}

func (r *SQLCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	query := r.db.Rebind(`INSERT INTO completions (habit_id, date) VALUES (?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, c.HabitID, c.Date); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCompletion
		}
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (r *SQLCompletionRepository) Delete(ctx context.Context, habitID int64, date string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM completions WHERE habit_id = ? AND date = ?`)

	res, err := r.db.ExecContext(ctx, query, habitID, date)
	if err != nil {
		return false, fmt.Errorf("failed to delete completion: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *SQLCompletionRepository) ListRange(ctx context.Context, habitID int64, from, to string) ([]*domain.Completion, error) {
	completions := []*domain.Completion{}
	query := r.db.Rebind(`
        SELECT habit_id, date FROM completions
        WHERE habit_id = ? AND date BETWEEN ? AND ?
        ORDER BY date ASC`)

	if err := r.db.SelectContext(ctx, &completions, query, habitID, from, to); err != nil {
		return nil, fmt.Errorf("completion range query failed: %w", err)
	}
	return completions, nil
}

func (r *SQLCompletionRepository) ListAll(ctx context.Context) ([]*domain.Completion, error) {
	completions := []*domain.Completion{}
	query := `SELECT habit_id, date FROM completions ORDER BY date ASC`

	if err := r.db.SelectContext(ctx, &completions, query); err != nil {
		return nil, fmt.Errorf("completion log query failed: %w", err)
	}
	return completions, nil
}

func (r *SQLCompletionRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM completions`); err != nil {
		return 0, fmt.Errorf("completion count query failed: %w", err)
	}
	return count, nil
}
