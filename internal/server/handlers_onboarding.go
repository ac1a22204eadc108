package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/db"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/schemas"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
)

// handleSubmit accepts a completed onboarding form. The payload is
// schema-checked, the searchable columns are lifted out and the whole
// snapshot is stored verbatim.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Data) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Submission data is required")
		return
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.SubmissionSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, req.Data); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var snapshot types.FormSnapshot
	if err := json.Unmarshal(req.Data, &snapshot); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Malformed submission data")
		return
	}

	employeeID := strings.TrimSpace(snapshot.EmployeeDetails.EmployeeID)
	if employeeID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Employee ID is required")
		return
	}

	exists, err := s.store.EmployeeIDSubmitted(r.Context(), employeeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if exists {
		dup := &ErrDuplicateEmployeeID{EmployeeID: employeeID}
		s.errorResponse(w, HTTPStatus(dup), "An application for this employee ID already exists")
		return
	}

	id, err := s.store.CreateSubmission(r.Context(), db.NewSubmission{
		FullName:      snapshot.Personal.FullName,
		EmployeeID:    employeeID,
		ContactNumber: snapshot.Personal.ContactNumber,
		PersonalEmail: snapshot.EmployeeDetails.PersonalEmail,
		CompanyEmail:  snapshot.EmployeeDetails.CompanyEmail,
		AadharNumber:  snapshot.Identification.AadharNumber,
		HasExperience: snapshot.HasExperience(),
		FilesCount:    req.Files,
		Payload:       req.Data,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"ok": true,
		"id": id,
	})
}

// handleValidateEmployeeID is the availability check: an employee ID
// is blocked only when it already appears among verified employees.
func (s *Server) handleValidateEmployeeID(w http.ResponseWriter, r *http.Request) {
	employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId"))
	if employeeID == "" {
		s.errorResponse(w, http.StatusBadRequest, "employeeId query parameter is required")
		return
	}

	verified, err := s.store.EmployeeIDVerified(r.Context(), employeeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if verified {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"allowed": false,
			"message": "This employee ID has already verified and cannot apply again.",
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"allowed": true})
}

// handleListPublicSubmissions serves the reduced submission listing
// with no payload or identity columns.
func (s *Server) handleListPublicSubmissions(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListSubmissionSummaries(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.SubmissionSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"submissions": summaries,
		"total":       len(summaries),
	})
}
