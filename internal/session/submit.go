package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
)

// Submitter delivers a completed form snapshot to the backend.
type Submitter interface {
	Submit(ctx context.Context, snapshot types.FormSnapshot, files int) error
}

// HTTPSubmitter posts submissions to the onboarding API.
type HTTPSubmitter struct {
	client  *http.Client
	baseURL string
}

// NewHTTPSubmitter creates a submitter against the given API base URL.
func NewHTTPSubmitter(client *http.Client, baseURL string) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{client: client, baseURL: baseURL}
}

type submitEnvelope struct {
	Data  types.FormSnapshot `json:"data"`
	Files int                `json:"files"`
}

type submitResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// Submit implements Submitter. Failures carry the server-provided
// message where one is available; there is no automatic retry.
func (s *HTTPSubmitter) Submit(ctx context.Context, snapshot types.FormSnapshot, files int) error {
	body, err := json.Marshal(submitEnvelope{Data: snapshot, Files: files})
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/api/onboarding/submit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submission request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var payload submitResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && payload.Message != "" {
			return fmt.Errorf("%s", payload.Message)
		}
		return fmt.Errorf("submission returned status %d", resp.StatusCode)
	}
	return nil
}
