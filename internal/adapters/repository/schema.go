package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS habits (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    frequency   TEXT NOT NULL DEFAULT 'daily'
                CHECK (frequency IN ('daily','custom')),
    weekly_mask TEXT NOT NULL DEFAULT '',
    difficulty  TEXT NOT NULL DEFAULT 'medium'
                CHECK (difficulty IN ('easy','medium','hard')),
    created_at  TIMESTAMP NOT NULL,
    archived_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS completions (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    habit_id INTEGER NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    date     TEXT NOT NULL,
    UNIQUE (habit_id, date)
);

CREATE TABLE IF NOT EXISTS items (
    id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    cost INTEGER NOT NULL CHECK (cost >= 0)
);

CREATE TABLE IF NOT EXISTS purchases (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id          INTEGER NOT NULL REFERENCES items(id) ON DELETE RESTRICT,
    cost_at_purchase INTEGER NOT NULL CHECK (cost_at_purchase >= 0),
    purchased_at     TIMESTAMP NOT NULL
);`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS habits (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    frequency   TEXT NOT NULL DEFAULT 'daily'
                CHECK (frequency IN ('daily','custom')),
    weekly_mask TEXT NOT NULL DEFAULT '',
    difficulty  TEXT NOT NULL DEFAULT 'medium'
                CHECK (difficulty IN ('easy','medium','hard')),
    created_at  TIMESTAMPTZ NOT NULL,
    archived_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS completions (
    id       BIGSERIAL PRIMARY KEY,
    habit_id BIGINT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    date     TEXT NOT NULL,
    UNIQUE (habit_id, date)
);

CREATE TABLE IF NOT EXISTS items (
    id   BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    cost INTEGER NOT NULL CHECK (cost >= 0)
);

CREATE TABLE IF NOT EXISTS purchases (
    id               BIGSERIAL PRIMARY KEY,
    item_id          BIGINT NOT NULL REFERENCES items(id) ON DELETE RESTRICT,
    cost_at_purchase INTEGER NOT NULL CHECK (cost_at_purchase >= 0),
    purchased_at     TIMESTAMPTZ NOT NULL
);`

// Migrate creates the schema for the connected dialect if missing. The
// statements run one at a time; pgx rejects multi-statement Exec.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if isPostgres(db) {
		schema = postgresSchema
	}

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}
	return nil
}

// Seed inserts starter habits and the garden catalog when the respective
// tables are empty. Safe to run on every boot.
func Seed(ctx context.Context, db *sqlx.DB) error {
	habitRepo := NewSQLHabitRepository(db)

	var habitCount int
	if err := db.GetContext(ctx, &habitCount, `SELECT COUNT(*) FROM habits`); err != nil {
		return fmt.Errorf("seed habit count failed: %w", err)
	}

	if habitCount == 0 {
		starters := []struct {
			name       string
			difficulty string
		}{
			{"Drink water", domain.DifficultyEasy},
			{"Walk 20 minutes", domain.DifficultyMedium},
			{"Read 10 pages", domain.DifficultyMedium},
		}
		for _, s := range starters {
			habit, err := domain.NewHabit(s.name, domain.FreqDaily, "", s.difficulty)
			if err != nil {
				return err
			}
			if err := habitRepo.Create(ctx, habit); err != nil {
				return err
			}
		}
		log.WithField("habits", len(starters)).Info("seeded starter habits")
	}

	var itemCount int
	if err := db.GetContext(ctx, &itemCount, `SELECT COUNT(*) FROM items`); err != nil {
		return fmt.Errorf("seed item count failed: %w", err)
	}

	if itemCount == 0 {
		catalog := []struct {
			name string
			cost int
		}{
			{"Bench", 10},
			{"Tree", 25},
			{"Pond", 50},
			{"Lantern", 15},
		}
		insert := db.Rebind(`INSERT INTO items (name, cost) VALUES (?, ?)`)
		for _, item := range catalog {
			if _, err := db.ExecContext(ctx, insert, item.name, item.cost); err != nil {
				return fmt.Errorf("seed item %q failed: %w", item.name, err)
			}
		}
		log.WithField("items", len(catalog)).Info("seeded garden catalog")
	}

	return nil
}
