package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/stint/internal/db"
)

// SQLiteSettingsRepo implements SettingsRepo on a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(dbtx db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx}
}

func (r *SQLiteSettingsRepo) GetThreshold(ctx context.Context, wsID string) (*int, error) {
	query := `SELECT threshold_days FROM workspace_settings WHERE ws_id = ?`
	var days sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, wsID).Scan(&days)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading threshold: %w", err)
	}
	return nullableInt(days), nil
}

func (r *SQLiteSettingsRepo) SetThreshold(ctx context.Context, wsID string, days *int) error {
	query := `INSERT INTO workspace_settings (ws_id, threshold_days) VALUES (?, ?)
		ON CONFLICT (ws_id) DO UPDATE SET threshold_days = excluded.threshold_days`
	if _, err := r.db.ExecContext(ctx, query, wsID, nullableIntValue(days)); err != nil {
		return fmt.Errorf("storing threshold: %w", err)
	}
	return nil
}
