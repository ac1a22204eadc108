package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(&ErrDuplicateEmployeeID{EmployeeID: "EMP-1"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrSubmissionNotFound{ID: uuid.New()}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "status", Message: "unknown"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()
	assert.Contains(t, (&ErrSubmissionNotFound{ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrDuplicateEmployeeID{EmployeeID: "EMP-9"}).Error(), "EMP-9")
	assert.Equal(t, "invalid username or password", (&ErrInvalidCredentials{}).Error())
}
