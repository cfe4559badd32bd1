package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

type SQLHabitRepository struct {
	db *sqlx.DB
}

func NewSQLHabitRepository(db *sqlx.DB) *SQLHabitRepository {
	return &SQLHabitRepository{db: db}
}

func (r *SQLHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
        INSERT INTO habits (name, frequency, weekly_mask, difficulty, created_at, archived_at)
        VALUES (?, ?, ?, ?, ?, ?)`

	id, err := insertReturningID(ctx, r.db, query,
		h.Name, h.Frequency, h.WeeklyMask, h.Difficulty, h.CreatedAt, h.ArchivedAt)
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}

	h.ID = id
	return nil
}

func (r *SQLHabitRepository) GetByID(ctx context.Context, id int64) (*domain.Habit, error) {
	var h domain.Habit
	query := r.db.Rebind(`SELECT * FROM habits WHERE id = ?`)

	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("habit query failed: %w", err)
	}
	return &h, nil
}

func (r *SQLHabitRepository) ListActive(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `SELECT * FROM habits WHERE archived_at IS NULL ORDER BY id DESC`

	if err := r.db.SelectContext(ctx, &habits, query); err != nil {
		return nil, fmt.Errorf("habit list query failed: %w", err)
	}
	return habits, nil
}

func (r *SQLHabitRepository) ListAll(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `SELECT * FROM habits ORDER BY id DESC`

	if err := r.db.SelectContext(ctx, &habits, query); err != nil {
		return nil, fmt.Errorf("habit list query failed: %w", err)
	}
	return habits, nil
}

func (r *SQLHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := r.db.Rebind(`
        UPDATE habits
        SET name = ?, frequency = ?, weekly_mask = ?, difficulty = ?, archived_at = ?
        WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		h.Name, h.Frequency, h.WeeklyMask, h.Difficulty, h.ArchivedAt, h.ID)
	if err != nil {
		return fmt.Errorf("habit update failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}
