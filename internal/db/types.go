package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Submission statuses. A submission starts Pending and moves to
// Verified or Rejected through an admin review.
const (
	StatusPending  = "Pending"
	StatusVerified = "Verified"
	StatusRejected = "Rejected"
)

// ValidStatus reports whether s is a known submission status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusVerified || s == StatusRejected
}

// Submission is one onboarding application. The searchable columns are
// lifted out of the payload at insert time; Payload keeps the complete
// form snapshot as submitted.
type Submission struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"full_name"`
	EmployeeID      string          `json:"employee_id"`
	ContactNumber   string          `json:"contact_number"`
	PersonalEmail   string          `json:"personal_email"`
	CompanyEmail    string          `json:"company_email"`
	AadharNumber    string          `json:"aadhar_number"`
	Status          string          `json:"status"`
	HasExperience   bool            `json:"has_experience"`
	FilesCount      int             `json:"files_count"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	ReviewerName    *string         `json:"reviewer_name,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SubmissionSummary is the reduced listing row exposed on the public
// endpoint. No payload, no identity documents.
type SubmissionSummary struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewSubmission describes the row to insert for a fresh submission.
type NewSubmission struct {
	FullName      string
	EmployeeID    string
	ContactNumber string
	PersonalEmail string
	CompanyEmail  string
	AadharNumber  string
	HasExperience bool
	FilesCount    int
	Payload       json.RawMessage
}
