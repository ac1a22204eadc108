package masterdata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Universities is the static university name list used for
// board/university autocomplete.
type Universities struct {
	names []string
}

// NewUniversities wraps a name list, dropping blank entries.
func NewUniversities(names []string) *Universities {
	u := &Universities{}
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			u.names = append(u.names, trimmed)
		}
	}
	return u
}

// Search returns every university whose name contains the query,
// case-insensitively. An empty query returns nothing rather than the
// whole list.
func (u *Universities) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var matches []string
	for _, name := range u.names {
		if strings.Contains(strings.ToLower(name), query) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Len returns the number of loaded names.
func (u *Universities) Len() int {
	return len(u.names)
}

// LoadUniversities fetches the university list from a static JSON
// resource (an array of strings). Failure degrades to an empty list.
func LoadUniversities(ctx context.Context, client *http.Client, url string) *Universities {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewUniversities(nil)
	}
	resp, err := client.Do(req)
	if err != nil {
		return NewUniversities(nil)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NewUniversities(nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewUniversities(nil)
	}

	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return NewUniversities(nil)
	}
	return NewUniversities(names)
}

// Bundle is the full set of reference data the form engine needs.
type Bundle struct {
	Education    *Education
	Universities *Universities
}

// Load fetches both reference sources concurrently. Individual
// failures degrade to empty data, so Load itself never fails.
func Load(ctx context.Context, client *http.Client, educationURL, universitiesURL string) *Bundle {
	bundle := &Bundle{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle.Education = LoadEducation(gctx, client, educationURL)
		return nil
	})
	g.Go(func() error {
		bundle.Universities = LoadUniversities(gctx, client, universitiesURL)
		return nil
	})
	_ = g.Wait()

	return bundle
}
