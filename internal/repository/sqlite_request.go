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

const requestColumns = `id, ws_id, title, description, category_id, task_id,
	start_time, end_time, proof_paths, linked_session_id, status, created_at`

// SQLiteRequestRepo implements RequestRepo on a SQLite database.
type SQLiteRequestRepo struct {
	db db.DBTX
}

func NewSQLiteRequestRepo(dbtx db.DBTX) *SQLiteRequestRepo {
	return &SQLiteRequestRepo{db: dbtx}
}

func (r *SQLiteRequestRepo) Create(ctx context.Context, req *domain.ApprovalRequest) error {
	query := `INSERT INTO approval_requests (` + requestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.WorkspaceID,
		req.Title,
		nullableStrValue(req.Description),
		nullableStrValue(req.CategoryID),
		nullableStrValue(req.TaskID),
		formatTime(req.StartTime),
		formatTime(req.EndTime),
		encodeStrings(req.ProofPaths),
		nullableStrValue(req.LinkedSessionID),
		string(req.Status),
		formatTime(req.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting approval request: %w", err)
	}
	return nil
}

func (r *SQLiteRequestRepo) GetByID(ctx context.Context, id string) (*domain.ApprovalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM approval_requests WHERE id = ?`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("loading approval request %s: %w", id, err)
	}
	return req, nil
}

func (r *SQLiteRequestRepo) ListByWorkspace(ctx context.Context, wsID string, status string) ([]domain.ApprovalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM approval_requests WHERE ws_id = ?`
	args := []any{wsID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing approval requests: %w", err)
	}
	defer rows.Close()

	var out []domain.ApprovalRequest
	for rows.Next() {
		req, err := scanRequestRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating approval request rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRequestRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE approval_requests SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating approval request %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating approval request %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("updating approval request %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanRequest(row *sql.Row) (*domain.ApprovalRequest, error) {
	var req domain.ApprovalRequest
	var description, categoryID, taskID, linkedID sql.NullString
	var startStr, endStr, proofs, status, createdStr string

	err := row.Scan(&req.ID, &req.WorkspaceID, &req.Title, &description,
		&categoryID, &taskID, &startStr, &endStr, &proofs, &linkedID,
		&status, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return buildRequest(req, description, categoryID, taskID, linkedID,
		startStr, endStr, proofs, status, createdStr)
}

func scanRequestRow(rows *sql.Rows) (*domain.ApprovalRequest, error) {
	var req domain.ApprovalRequest
	var description, categoryID, taskID, linkedID sql.NullString
	var startStr, endStr, proofs, status, createdStr string

	if err := rows.Scan(&req.ID, &req.WorkspaceID, &req.Title, &description,
		&categoryID, &taskID, &startStr, &endStr, &proofs, &linkedID,
		&status, &createdStr); err != nil {
		return nil, fmt.Errorf("scanning approval request row: %w", err)
	}
	return buildRequest(req, description, categoryID, taskID, linkedID,
		startStr, endStr, proofs, status, createdStr)
}

func buildRequest(
	req domain.ApprovalRequest,
	description, categoryID, taskID, linkedID sql.NullString,
	startStr, endStr, proofs, status, createdStr string,
) (*domain.ApprovalRequest, error) {
	start, err := time.Parse(timeLayout, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing request %s start time: %w", req.ID, err)
	}
	end, err := time.Parse(timeLayout, endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing request %s end time: %w", req.ID, err)
	}
	created, err := time.Parse(timeLayout, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing request %s created time: %w", req.ID, err)
	}

	req.Description = nullableStr(description)
	req.CategoryID = nullableStr(categoryID)
	req.TaskID = nullableStr(taskID)
	req.StartTime = start
	req.EndTime = end
	req.ProofPaths = decodeStrings(proofs)
	req.LinkedSessionID = nullableStr(linkedID)
	req.Status = domain.RequestStatus(status)
	req.CreatedAt = created
	return &req, nil
}
