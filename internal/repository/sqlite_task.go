package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stint/internal/db"
	"github.com/alexanderramin/stint/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo on a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, name, completed, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, boolToInt(t.Completed), formatTime(t.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT id, name, completed, created_at FROM tasks WHERE id = ?`
	var t domain.Task
	var completed int
	var createdStr string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Name, &completed, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("loading task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading task %s: %w", id, err)
	}
	created, err := time.Parse(timeLayout, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing task %s created time: %w", id, err)
	}
	t.Completed = completed != 0
	t.CreatedAt = created
	return &t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	query := `SELECT id, name, completed, created_at FROM tasks`
	if !includeCompleted {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		var t domain.Task
		var completed int
		var createdStr string
		if err := rows.Scan(&t.ID, &t.Name, &completed, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		created, err := time.Parse(timeLayout, createdStr)
		if err != nil {
			return nil, fmt.Errorf("parsing task %s created time: %w", t.ID, err)
		}
		t.Completed = completed != 0
		t.CreatedAt = created
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return out, nil
}
