package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// AdminLoginRequest is the admin login request body.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// AdminSession describes the authenticated admin for API responses.
type AdminSession struct {
	Username string `json:"username"`
}

// AdminLoginResponse is returned on a successful admin login.
type AdminLoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// ReviewRequest is the body for verify and reject actions. A rejection
// additionally requires a reason, which the handler enforces.
type ReviewRequest struct {
	ReviewerName    string `json:"reviewerName" validate:"required,min=1"`
	AllChecked      bool   `json:"allChecked"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// SubmitRequest is the onboarding submission envelope: the form
// snapshot plus the count of files the client collected.
type SubmitRequest struct {
	Data  json.RawMessage `json:"data" validate:"required"`
	Files int             `json:"files"`
}

// Validate validates the AdminLoginRequest using the validator.
func (r *AdminLoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ReviewRequest using the validator.
func (r *ReviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
