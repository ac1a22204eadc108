package session

import "fmt"

// ErrLastEntry indicates an attempt to remove the only remaining entry
// of a collection that must stay non-empty. State is unchanged.
type ErrLastEntry struct {
	Kind string // "education" or "experience"
}

func (e *ErrLastEntry) Error() string {
	if e.Kind == "experience" {
		return "you must keep at least one experience entry when \"Yes\" is selected"
	}
	return "you must keep at least one " + e.Kind + " entry"
}

// ErrNoSuchEntry indicates an out-of-range entry index.
type ErrNoSuchEntry struct {
	Kind  string
	Index int
}

func (e *ErrNoSuchEntry) Error() string {
	return fmt.Sprintf("no %s entry at index %d", e.Kind, e.Index)
}

// ErrFileTooLarge indicates an upload over the per-file size limit.
type ErrFileTooLarge struct {
	Name string
	Size int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("file %s exceeds the 2MB limit", e.Name)
}

// ErrNotConfirmed indicates submission was attempted before the
// declaration checkbox was checked.
type ErrNotConfirmed struct{}

func (e *ErrNotConfirmed) Error() string {
	return "the declaration must be confirmed before submitting"
}

// ErrSectionInvalid indicates submission or navigation was blocked by
// a failing section.
type ErrSectionInvalid struct {
	Section int
}

func (e *ErrSectionInvalid) Error() string {
	return fmt.Sprintf("section %d has invalid or missing fields", e.Section)
}

// ErrEmployeeIDBlocked indicates the employee-ID availability check
// denied the identifier (or could not be completed).
type ErrEmployeeIDBlocked struct {
	Message string
}

func (e *ErrEmployeeIDBlocked) Error() string {
	return e.Message
}
