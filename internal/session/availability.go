package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
)

// AvailabilityChecker verifies that an employee ID may still apply.
// Implementations are fail-closed for their callers: a non-nil error
// means "could not verify", which blocks navigation.
type AvailabilityChecker interface {
	Check(ctx context.Context, employeeID string) (allowed bool, message string, err error)
}

// HTTPAvailabilityChecker calls the backend availability endpoint.
// A single in-flight guard prevents duplicate concurrent checks: a
// second trigger while one is outstanding is treated as "allow" rather
// than queued, so the interaction thread never locks up.
type HTTPAvailabilityChecker struct {
	client   *http.Client
	baseURL  string
	inFlight atomic.Bool
}

// NewHTTPAvailabilityChecker creates a checker against the given API
// base URL.
func NewHTTPAvailabilityChecker(client *http.Client, baseURL string) *HTTPAvailabilityChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPAvailabilityChecker{client: client, baseURL: baseURL}
}

type availabilityResponse struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

// Check implements AvailabilityChecker. Non-2xx responses and parse
// failures are reported as errors; the caller decides to block.
func (c *HTTPAvailabilityChecker) Check(ctx context.Context, employeeID string) (bool, string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		// A check is already outstanding; allow rather than queue.
		return true, "", nil
	}
	defer c.inFlight.Store(false)

	endpoint := fmt.Sprintf("%s/api/onboarding/validate-employee-id?employeeId=%s",
		c.baseURL, url.QueryEscape(employeeID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, "", fmt.Errorf("failed to build availability request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, "", fmt.Errorf("availability check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, "", fmt.Errorf("availability check returned status %d", resp.StatusCode)
	}

	var payload availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, "", fmt.Errorf("failed to parse availability response: %w", err)
	}
	return payload.Allowed, payload.Message, nil
}
