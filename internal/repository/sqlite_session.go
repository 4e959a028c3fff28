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

const sessionColumns = `id, ws_id, title, description, category_id, task_id,
	start_time, end_time, duration_seconds, is_running, created_at`

// SQLiteSessionRepo implements SessionRepo on a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.WorkspaceID,
		s.Title,
		nullableStrValue(s.Description),
		nullableStrValue(s.CategoryID),
		nullableStrValue(s.TaskID),
		formatTime(s.StartTime),
		nullableTimeValue(s.EndTime),
		nullableIntValue(s.DurationSeconds),
		boolToInt(s.IsRunning),
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) GetRunning(ctx context.Context, wsID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE ws_id = ? AND is_running = 1
		ORDER BY start_time DESC LIMIT 1`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, wsID))
	if err != nil {
		return nil, fmt.Errorf("loading running session: %w", err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListOverlapping(ctx context.Context, wsID string, start, end time.Time) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE ws_id = ?
		  AND start_time < ?
		  AND (end_time IS NULL OR end_time > ?)
		ORDER BY start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, wsID, formatTime(end), formatTime(start))
	if err != nil {
		return nil, fmt.Errorf("listing overlapping sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, wsID string, limit int) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE ws_id = ? ORDER BY start_time DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, wsID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListClosed(ctx context.Context, wsID string) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE ws_id = ? AND duration_seconds IS NOT NULL
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, wsID)
	if err != nil {
		return nil, fmt.Errorf("listing closed sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET
		title = ?, description = ?, category_id = ?, task_id = ?,
		start_time = ?, end_time = ?, duration_seconds = ?, is_running = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Title,
		nullableStrValue(s.Description),
		nullableStrValue(s.CategoryID),
		nullableStrValue(s.TaskID),
		formatTime(s.StartTime),
		nullableTimeValue(s.EndTime),
		nullableIntValue(s.DurationSeconds),
		boolToInt(s.IsRunning),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session %s: %w", s.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating session %s: %w", s.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("updating session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}

func scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var description, categoryID, taskID, endTime sql.NullString
	var duration sql.NullInt64
	var startStr, createdStr string
	var running int

	err := row.Scan(&s.ID, &s.WorkspaceID, &s.Title, &description, &categoryID,
		&taskID, &startStr, &endTime, &duration, &running, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return buildSession(s, description, categoryID, taskID, startStr, endTime,
		duration, running, createdStr)
}

func scanSessions(rows *sql.Rows) ([]domain.Session, error) {
	var out []domain.Session
	for rows.Next() {
		var s domain.Session
		var description, categoryID, taskID, endTime sql.NullString
		var duration sql.NullInt64
		var startStr, createdStr string
		var running int

		if err := rows.Scan(&s.ID, &s.WorkspaceID, &s.Title, &description,
			&categoryID, &taskID, &startStr, &endTime, &duration, &running,
			&createdStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		built, err := buildSession(s, description, categoryID, taskID, startStr,
			endTime, duration, running, createdStr)
		if err != nil {
			return nil, err
		}
		out = append(out, *built)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session rows: %w", err)
	}
	return out, nil
}

func buildSession(
	s domain.Session,
	description, categoryID, taskID sql.NullString,
	startStr string,
	endTime sql.NullString,
	duration sql.NullInt64,
	running int,
	createdStr string,
) (*domain.Session, error) {
	start, err := time.Parse(timeLayout, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing session %s start time: %w", s.ID, err)
	}
	created, err := time.Parse(timeLayout, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing session %s created time: %w", s.ID, err)
	}

	s.Description = nullableStr(description)
	s.CategoryID = nullableStr(categoryID)
	s.TaskID = nullableStr(taskID)
	s.StartTime = start
	s.EndTime = parseNullableTime(endTime)
	s.DurationSeconds = nullableInt(duration)
	s.IsRunning = running != 0
	s.CreatedAt = created
	return &s, nil
}
