package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/db"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
)

// handleAdminListSubmissions lists full submission rows for review,
// optionally filtered by status.
func (s *Server) handleAdminListSubmissions(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !db.ValidStatus(status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status filter")
		return
	}
	limit := parseQueryInt(r, "limit", 500, 500)

	submissions, err := s.store.ListSubmissions(r.Context(), status, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if submissions == nil {
		submissions = []db.Submission{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// handleAdminGetSubmission retrieves one submission with its payload.
func (s *Server) handleAdminGetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := s.submissionID(w, r)
	if !ok {
		return
	}

	submission, err := s.store.GetSubmission(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if submission == nil {
		s.errorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, submission)
}

// handleVerifySubmission marks a submission Verified. The reviewer
// must confirm every checklist item first.
func (s *Server) handleVerifySubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := s.submissionID(w, r)
	if !ok {
		return
	}

	req, ok := s.reviewRequest(w, r)
	if !ok {
		return
	}
	if !req.AllChecked {
		s.errorResponse(w, http.StatusBadRequest, "All verification checks must be confirmed")
		return
	}

	submission, err := s.store.VerifySubmission(r.Context(), id, req.ReviewerName)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if submission == nil {
		s.errorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"ok":         true,
		"submission": submission,
	})
}

// handleRejectSubmission marks a submission Rejected with a reason.
func (s *Server) handleRejectSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := s.submissionID(w, r)
	if !ok {
		return
	}

	req, ok := s.reviewRequest(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.RejectionReason) == "" {
		s.errorResponse(w, http.StatusBadRequest, "A rejection reason is required")
		return
	}

	submission, err := s.store.RejectSubmission(r.Context(), id, req.ReviewerName, req.RejectionReason)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if submission == nil {
		s.errorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"ok":         true,
		"submission": submission,
	})
}

// submissionID parses the {id} path value, writing the error response
// itself on failure.
func (s *Server) submissionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid submission ID")
		return uuid.Nil, false
	}
	return id, true
}

// reviewRequest decodes and validates a verify/reject body.
func (s *Server) reviewRequest(w http.ResponseWriter, r *http.Request) (types.ReviewRequest, bool) {
	var req types.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "reviewerName is required")
		return req, false
	}
	return req, true
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
