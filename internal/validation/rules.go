package validation

import (
	"strings"
	"time"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
)

// DateRangeError reports which date field of an experience entry broke
// the range rule.
type DateRangeError struct {
	Field   string // "fromDate" or "toDate"
	Message string
}

func (e *DateRangeError) Error() string {
	return e.Message
}

// ExperienceDateRange checks one entry's date pair against today and
// the date of joining. A nil return means the entry passes. Missing or
// unparsable dates skip the check entirely, matching the field
// validators' lenient treatment of partial input.
func ExperienceDateRange(fromValue, toValue, joiningValue string, now time.Time) *DateRangeError {
	fromValue = strings.TrimSpace(fromValue)
	toValue = strings.TrimSpace(toValue)
	if fromValue == "" || toValue == "" {
		return nil
	}

	from, err := time.Parse(DateLayout, fromValue)
	if err != nil {
		return nil
	}
	to, err := time.Parse(DateLayout, toValue)
	if err != nil {
		return nil
	}

	today := truncateDay(now)

	if !to.After(from) {
		return &DateRangeError{Field: "toDate", Message: "To Date must be later than From Date"}
	}
	if !from.Before(today) {
		return &DateRangeError{Field: "fromDate", Message: "From Date must be earlier than today"}
	}
	if !to.Before(today) {
		return &DateRangeError{Field: "toDate", Message: "To Date must be earlier than today"}
	}

	if joiningValue = strings.TrimSpace(joiningValue); joiningValue != "" {
		if joining, err := time.Parse(DateLayout, joiningValue); err == nil {
			if to.After(joining) {
				return &DateRangeError{Field: "toDate", Message: "To Date must be on or before Date of Joining"}
			}
		}
	}

	return nil
}

// OverlappingRanges compares every pair of experience entries whose
// dates are present and parseable, and returns the index pairs (i, j)
// with i < j whose inclusive ranges overlap. The computation is pure,
// so callers can run it silently during pre-navigation checks.
func OverlappingRanges(entries []types.ExperienceEntry) [][2]int {
	type span struct {
		index    int
		from, to time.Time
	}

	var spans []span
	for i, entry := range entries {
		fromValue := strings.TrimSpace(entry.FromDate)
		toValue := strings.TrimSpace(entry.ToDate)
		if fromValue == "" || toValue == "" {
			continue
		}
		from, err := time.Parse(DateLayout, fromValue)
		if err != nil {
			continue
		}
		to, err := time.Parse(DateLayout, toValue)
		if err != nil {
			continue
		}
		spans = append(spans, span{index: i, from: from, to: to})
	}

	var overlaps [][2]int
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			// Inclusive boundaries: touching ranges overlap.
			if !a.from.After(b.to) && !b.from.After(a.to) {
				overlaps = append(overlaps, [2]int{a.index, b.index})
			}
		}
	}
	return overlaps
}

// DocumentComplete reports whether an experience entry's documents
// satisfy the requirement rule: an experience letter alone suffices,
// otherwise both appointment and relieving letters must be present.
func DocumentComplete(docs *types.DocSet) bool {
	if docs == nil {
		return false
	}
	if docs.Experience != nil {
		return true
	}
	return docs.Appointment != nil && docs.Relieving != nil
}

// SameIdentity compares two names after lowercasing and collapsing
// interior whitespace. Used for the emergency-contact distinctness
// rule on the personal section.
func SameIdentity(a, b string) bool {
	na := normalizeIdentity(a)
	nb := normalizeIdentity(b)
	return na != "" && na == nb
}

func normalizeIdentity(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
