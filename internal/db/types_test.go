package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusVerified))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Archived"))
}

func TestSubmission_JSONShape(t *testing.T) {
	s := Submission{
		FullName:   "John Doe",
		EmployeeID: "EMP-1042",
		Status:     StatusPending,
		Payload:    json.RawMessage(`{"personal":{"fullName":"John Doe"}}`),
	}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "EMP-1042", decoded["employee_id"])
	assert.NotContains(t, decoded, "reviewer_name", "review fields omitted until set")
	assert.NotContains(t, decoded, "rejection_reason")
}

func TestSubmissionSummary_OmitsSensitiveColumns(t *testing.T) {
	raw, err := json.Marshal(SubmissionSummary{FullName: "John Doe", Status: StatusVerified})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "aadhar_number")
	assert.NotContains(t, decoded, "payload")
}
