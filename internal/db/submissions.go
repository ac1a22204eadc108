package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const submissionColumns = `id, full_name, employee_id, contact_number, personal_email,
	company_email, aadhar_number, status, has_experience, files_count, payload,
	reviewer_name, rejection_reason, reviewed_at, created_at`

func scanSubmission(row pgx.Row) (*Submission, error) {
	var s Submission
	err := row.Scan(&s.ID, &s.FullName, &s.EmployeeID, &s.ContactNumber, &s.PersonalEmail,
		&s.CompanyEmail, &s.AadharNumber, &s.Status, &s.HasExperience, &s.FilesCount, &s.Payload,
		&s.ReviewerName, &s.RejectionReason, &s.ReviewedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSubmission inserts a new pending submission and returns its ID.
func (db *DB) CreateSubmission(ctx context.Context, sub NewSubmission) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO submissions (full_name, employee_id, contact_number, personal_email,
		   company_email, aadhar_number, status, has_experience, files_count, payload)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		sub.FullName, sub.EmployeeID, sub.ContactNumber, sub.PersonalEmail,
		sub.CompanyEmail, sub.AadharNumber, StatusPending, sub.HasExperience,
		sub.FilesCount, sub.Payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return id, nil
}

// GetSubmission retrieves a submission by ID, or nil when absent.
func (db *DB) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	s, err := scanSubmission(db.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return s, nil
}

// ListSubmissions returns full submission rows for the admin view,
// newest first, optionally filtered by status.
func (db *DB) ListSubmissions(ctx context.Context, status string, limit int) ([]Submission, error) {
	if limit <= 0 || limit > 500 {
		limit = 500
	}

	query := `SELECT ` + submissionColumns + ` FROM submissions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return out, nil
}

// ListSubmissionSummaries returns the reduced public listing, newest
// first, capped at 100 rows.
func (db *DB) ListSubmissionSummaries(ctx context.Context) ([]SubmissionSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, full_name, employee_id, status, created_at
		 FROM submissions ORDER BY created_at DESC LIMIT 100`)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var out []SubmissionSummary
	for rows.Next() {
		var s SubmissionSummary
		if err := rows.Scan(&s.ID, &s.FullName, &s.EmployeeID, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return out, nil
}

// EmployeeIDSubmitted reports whether a pending or verified submission
// already exists for the employee ID.
func (db *DB) EmployeeIDSubmitted(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM submissions WHERE employee_id = $1 AND status IN ($2, $3)
		 )`,
		employeeID, StatusPending, StatusVerified,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee id: %w", err)
	}
	return exists, nil
}

// EmployeeIDVerified reports whether the employee ID appears in the
// verified_employees side table. This is the availability check: only
// an already-verified ID blocks a new application.
func (db *DB) EmployeeIDVerified(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM verified_employees WHERE employee_id = $1)`,
		employeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check verified employees: %w", err)
	}
	return exists, nil
}

// VerifySubmission marks a submission Verified and records the
// reviewer. The verified_employees side table gains the employee ID
// and any earlier rejection record for it is removed, all in one
// transaction. Returns the updated submission, or nil when the ID does
// not exist.
func (db *DB) VerifySubmission(ctx context.Context, id uuid.UUID, reviewer string) (*Submission, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	s, err := scanSubmission(tx.QueryRow(ctx,
		`UPDATE submissions
		 SET status = $1, reviewer_name = $2, rejection_reason = NULL, reviewed_at = NOW()
		 WHERE id = $3
		 RETURNING `+submissionColumns,
		StatusVerified, reviewer, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to verify submission: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO verified_employees (employee_id, submission_id, reviewer_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (employee_id) DO UPDATE SET submission_id = $2, reviewer_name = $3, verified_at = NOW()`,
		s.EmployeeID, s.ID, reviewer)
	if err != nil {
		return nil, fmt.Errorf("failed to record verified employee: %w", err)
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM rejected_employees WHERE employee_id = $1`, s.EmployeeID); err != nil {
		return nil, fmt.Errorf("failed to clear rejection record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit verification: %w", err)
	}
	return s, nil
}

// RejectSubmission marks a submission Rejected with the reviewer and
// reason. The rejected_employees side table gains the employee ID and
// any earlier verification record for it is removed, all in one
// transaction. Returns the updated submission, or nil when the ID does
// not exist.
func (db *DB) RejectSubmission(ctx context.Context, id uuid.UUID, reviewer, reason string) (*Submission, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	s, err := scanSubmission(tx.QueryRow(ctx,
		`UPDATE submissions
		 SET status = $1, reviewer_name = $2, rejection_reason = $3, reviewed_at = NOW()
		 WHERE id = $4
		 RETURNING `+submissionColumns,
		StatusRejected, reviewer, reason, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reject submission: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO rejected_employees (employee_id, submission_id, reviewer_name, reason)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (employee_id) DO UPDATE SET submission_id = $2, reviewer_name = $3, reason = $4, rejected_at = NOW()`,
		s.EmployeeID, s.ID, reviewer, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to record rejected employee: %w", err)
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM verified_employees WHERE employee_id = $1`, s.EmployeeID); err != nil {
		return nil, fmt.Errorf("failed to clear verification record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}
	return s, nil
}
