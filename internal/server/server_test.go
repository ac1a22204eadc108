package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/config"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/db"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/masterdata"
)

const testCookieName = "admin_session"

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	submissions map[uuid.UUID]*db.Submission
	verified    map[string]bool
	rejected    map[string]bool
	pingErr     error
	failWith    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		submissions: make(map[uuid.UUID]*db.Submission),
		verified:    make(map[string]bool),
		rejected:    make(map[string]bool),
	}
}

func (f *fakeStore) CreateSubmission(_ context.Context, sub db.NewSubmission) (uuid.UUID, error) {
	if f.failWith != nil {
		return uuid.Nil, f.failWith
	}
	id := uuid.New()
	f.submissions[id] = &db.Submission{
		ID:            id,
		FullName:      sub.FullName,
		EmployeeID:    sub.EmployeeID,
		ContactNumber: sub.ContactNumber,
		PersonalEmail: sub.PersonalEmail,
		CompanyEmail:  sub.CompanyEmail,
		AadharNumber:  sub.AadharNumber,
		Status:        db.StatusPending,
		HasExperience: sub.HasExperience,
		FilesCount:    sub.FilesCount,
		Payload:       sub.Payload,
	}
	return id, nil
}

func (f *fakeStore) GetSubmission(_ context.Context, id uuid.UUID) (*db.Submission, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.submissions[id], nil
}

func (f *fakeStore) ListSubmissions(_ context.Context, status string, limit int) ([]db.Submission, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db.Submission
	for _, s := range f.submissions {
		if status == "" || s.Status == status {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) ListSubmissionSummaries(_ context.Context) ([]db.SubmissionSummary, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db.SubmissionSummary
	for _, s := range f.submissions {
		out = append(out, db.SubmissionSummary{
			ID: s.ID, FullName: s.FullName, EmployeeID: s.EmployeeID,
			Status: s.Status, CreatedAt: s.CreatedAt,
		})
	}
	return out, nil
}

func (f *fakeStore) EmployeeIDSubmitted(_ context.Context, employeeID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, s := range f.submissions {
		if s.EmployeeID == employeeID && s.Status != db.StatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) EmployeeIDVerified(_ context.Context, employeeID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	return f.verified[employeeID], nil
}

func (f *fakeStore) VerifySubmission(_ context.Context, id uuid.UUID, reviewer string) (*db.Submission, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	s, ok := f.submissions[id]
	if !ok {
		return nil, nil
	}
	s.Status = db.StatusVerified
	s.ReviewerName = &reviewer
	s.RejectionReason = nil
	f.verified[s.EmployeeID] = true
	delete(f.rejected, s.EmployeeID)
	return s, nil
}

func (f *fakeStore) RejectSubmission(_ context.Context, id uuid.UUID, reviewer, reason string) (*db.Submission, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	s, ok := f.submissions[id]
	if !ok {
		return nil, nil
	}
	s.Status = db.StatusRejected
	s.ReviewerName = &reviewer
	s.RejectionReason = &reason
	f.rejected[s.EmployeeID] = true
	delete(f.verified, s.EmployeeID)
	return s, nil
}

func (f *fakeStore) Ping(_ context.Context) error {
	return f.pingErr
}

var errDatabaseDown = errors.New("database down")

// newTestServer wires a Server around a fake store without touching
// the database or the environment.
func newTestServer(t *testing.T, store Store) (*Server, http.Handler) {
	t.Helper()

	passwords := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwords.HashPassword("review-pw")
	require.NoError(t, err)

	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret",
		ExpirationHours: 1,
		CookieName:      testCookieName,
	})

	s := &Server{
		store:         store,
		allowedOrigin: "*",
		master: &masterdata.Bundle{
			Education:    masterdata.BuildEducation(nil),
			Universities: masterdata.NewUniversities([]string{"Osmania University", "JNTU Hyderabad"}),
		},
		jwtService: jwtService,
	}
	s.authHandler = NewAuthHandler(
		&config.AdminConfig{Username: "hradmin", PasswordHash: hash},
		passwords, jwtService, testCookieName,
	)
	return s, s.withCORS(s.routes(testCookieName))
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.jwtService.GenerateToken("hradmin")
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
