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

// SQLiteCategoryRepo implements CategoryRepo on a SQLite database.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

func NewSQLiteCategoryRepo(dbtx db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: dbtx}
}

func (r *SQLiteCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, ws_id, name, color, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.WorkspaceID, c.Name, string(c.Color), formatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, ws_id, name, color, created_at FROM categories WHERE id = ?`
	var c domain.Category
	var color, createdStr string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.WorkspaceID, &c.Name, &color, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("loading category %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading category %s: %w", id, err)
	}
	created, err := time.Parse(timeLayout, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing category %s created time: %w", id, err)
	}
	c.Color = domain.ParseCategoryColor(color)
	c.CreatedAt = created
	return &c, nil
}

func (r *SQLiteCategoryRepo) ListByWorkspace(ctx context.Context, wsID string) ([]domain.Category, error) {
	query := `SELECT id, ws_id, name, color, created_at FROM categories
		WHERE ws_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, wsID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		var color, createdStr string
		if err := rows.Scan(&c.ID, &c.WorkspaceID, &c.Name, &color, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		created, err := time.Parse(timeLayout, createdStr)
		if err != nil {
			return nil, fmt.Errorf("parsing category %s created time: %w", c.ID, err)
		}
		c.Color = domain.ParseCategoryColor(color)
		c.CreatedAt = created
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteCategoryRepo) Update(ctx context.Context, c *domain.Category) error {
	query := `UPDATE categories SET name = ?, color = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, c.Name, string(c.Color), c.ID)
	if err != nil {
		return fmt.Errorf("updating category %s: %w", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating category %s: %w", c.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("updating category %s: %w", c.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	return nil
}
