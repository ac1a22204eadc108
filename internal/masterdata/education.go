// Package masterdata provides the read-only reference lookups the form
// engine consumes: the education level/qualification/specialization
// table and the university name list for autocomplete. Both are loaded
// once and immutable afterwards.
package masterdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Row is one record of the education master table.
type Row struct {
	DegreeType     string `json:"degreeType"`
	DegreeName     string `json:"degreeName"`
	Specialization string `json:"specialization"`
}

// rowsPayload is the wire envelope of the master data resource.
type rowsPayload struct {
	Rows []Row `json:"rows"`
}

// Education holds the master rows and the derived indices built from
// them. A zero-value Education behaves as empty master data: option
// lookups return nothing and level changes clear dependent values.
type Education struct {
	rows               []Row
	levels             []string
	degreesByLevel     map[string][]string
	specsByLevelDegree map[string][]string
}

// BuildEducation constructs the derived indices from master rows.
// Rows missing a degree type or degree name are skipped; all option
// sets are sorted and de-duplicated.
func BuildEducation(rows []Row) *Education {
	ed := &Education{
		degreesByLevel:     make(map[string][]string),
		specsByLevelDegree: make(map[string][]string),
	}

	levelSet := make(map[string]struct{})
	degreeSets := make(map[string]map[string]struct{})
	specSets := make(map[string]map[string]struct{})

	for _, row := range rows {
		degreeType := strings.TrimSpace(row.DegreeType)
		degreeName := strings.TrimSpace(row.DegreeName)
		if degreeType == "" || degreeName == "" {
			continue
		}
		specialization := strings.TrimSpace(row.Specialization)
		ed.rows = append(ed.rows, Row{DegreeType: degreeType, DegreeName: degreeName, Specialization: specialization})

		levelSet[degreeType] = struct{}{}
		if degreeSets[degreeType] == nil {
			degreeSets[degreeType] = make(map[string]struct{})
		}
		degreeSets[degreeType][degreeName] = struct{}{}

		if specialization != "" {
			key := specKey(degreeType, degreeName)
			if specSets[key] == nil {
				specSets[key] = make(map[string]struct{})
			}
			specSets[key][specialization] = struct{}{}
		}
	}

	ed.levels = sortedKeys(levelSet)
	for level, set := range degreeSets {
		ed.degreesByLevel[level] = sortedKeys(set)
	}
	for key, set := range specSets {
		ed.specsByLevelDegree[key] = sortedKeys(set)
	}
	return ed
}

// LoadEducation fetches and builds the master data from a static JSON
// resource. Any failure degrades to empty master data rather than an
// error: the level options simply stay unpopulated.
func LoadEducation(ctx context.Context, client *http.Client, url string) *Education {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return BuildEducation(nil)
	}
	resp, err := client.Do(req)
	if err != nil {
		return BuildEducation(nil)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return BuildEducation(nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return BuildEducation(nil)
	}

	var payload rowsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return BuildEducation(nil)
	}
	return BuildEducation(payload.Rows)
}

// Levels returns the sorted set of degree types.
func (e *Education) Levels() []string {
	return e.levels
}

// QualificationOptions returns the sorted degree names for a level.
func (e *Education) QualificationOptions(level string) []string {
	return e.degreesByLevel[level]
}

// SpecializationOptions returns the sorted specializations for a
// level+qualification pair. An empty result means the specialization
// field is optional free text for that pair.
func (e *Education) SpecializationOptions(level, qualification string) []string {
	return e.specsByLevelDegree[specKey(level, qualification)]
}

// HasQualification reports whether a qualification value is valid for
// the given level. Used to clear stale values when a level changes.
func (e *Education) HasQualification(level, qualification string) bool {
	for _, name := range e.degreesByLevel[level] {
		if name == qualification {
			return true
		}
	}
	return false
}

// HasSpecialization reports whether a specialization value is valid
// for the given level+qualification pair.
func (e *Education) HasSpecialization(level, qualification, specialization string) bool {
	for _, name := range e.specsByLevelDegree[specKey(level, qualification)] {
		if name == specialization {
			return true
		}
	}
	return false
}

// Empty reports whether no master rows were loaded.
func (e *Education) Empty() bool {
	return len(e.rows) == 0
}

func specKey(level, qualification string) string {
	return fmt.Sprintf("%s|%s", level, qualification)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
