package session

import (
	"fmt"
	"strings"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/validation"
)

// SectionResult is the aggregate outcome of validating one section.
// Errors lists every failing field so the adapter can mark them all in
// a single pass.
type SectionResult struct {
	Section int
	Valid   bool
	Errors  []sectionError
}

type sectionError struct {
	Field   string
	Label   string
	Message string
}

// FirstInvalid returns the label of the first failing field, used for
// the navigation-failure notification.
func (r SectionResult) FirstInvalid() string {
	if len(r.Errors) == 0 {
		return ""
	}
	if r.Errors[0].Label != "" {
		return r.Errors[0].Label
	}
	return r.Errors[0].Field
}

// ValidateSection runs the full validation pass for section n. All
// applicable checks run without short-circuiting so every failing
// field is reported at once. In silent mode the boolean and error list
// are computed but no inline markers or notifications are emitted.
func (s *Session) ValidateSection(n int, silent bool) SectionResult {
	result := SectionResult{Section: n}
	spec := s.manifest.Section(n)
	if spec == nil {
		return result
	}

	// Reset markers within the section before re-evaluating.
	if !silent {
		for _, f := range spec.Fields {
			delete(s.fieldErrors, f.Name)
		}
		if spec.OwnsEducation || spec.OwnsExperience || spec.OwnsIdentityDocs {
			for name := range s.fieldErrors {
				if sectionOwnedMarker(spec, name) {
					delete(s.fieldErrors, name)
				}
			}
		}
	}

	valid := true
	fail := func(field, label, message string) {
		valid = false
		result.Errors = append(result.Errors, sectionError{Field: field, Label: label, Message: message})
		if !silent {
			s.fieldErrors[field] = message
		}
	}

	if spec.OwnsExperience {
		if !s.validateExperienceSection(spec, silent, fail) {
			valid = false
		}
	}

	for _, f := range spec.Fields {
		value := s.fields[f.Name]
		required := f.Required
		if f.RequiredIf != nil {
			required = s.conditionMet(f.RequiredIf)
		}

		switch f.Control {
		case ControlRadio:
			if required && value == "" {
				fail(f.Name, f.Label, "Please choose an option")
			}
		case ControlCheckbox:
			if required && value != "true" {
				fail(f.Name, f.Label, "You must agree to this term")
			}
		default:
			if required && value == "" {
				fail(f.Name, f.Label, "This field is required")
				continue
			}
			if kindResult := validation.Validate(f.Kind, value, s.now()); !kindResult.Valid {
				fail(f.Name, f.Label, kindResult.Message)
			}
		}
	}

	if spec.OwnsEducation {
		if !s.validateEducationEntries(silent, fail) {
			valid = false
		}
	}

	if spec.OwnsIdentityDocs && len(s.aadharFiles) == 0 {
		// Dedicated treatment, distinct from a generic required-field
		// failure: the upload box is flagged and a notification fires
		// even though no input field is empty.
		fail("aadharFile", "Aadhar Card Files", "Please upload Aadhar card files")
		if !silent {
			s.notifier.Notify(LevelError, "Please upload Aadhar card files")
		}
	}

	if spec.Number == 1 {
		s.validateIdentityDistinctness(fail)
	}

	result.Valid = valid
	return result
}

// sectionOwnedMarker reports whether a marker key belongs to a
// section's entry collections or file checks rather than a declared
// field.
func sectionOwnedMarker(spec *SectionSpec, name string) bool {
	if spec.OwnsEducation && strings.HasPrefix(name, "education[") {
		return true
	}
	if spec.OwnsExperience && strings.HasPrefix(name, "experience[") {
		return true
	}
	if spec.OwnsIdentityDocs && name == "aadharFile" {
		return true
	}
	return false
}

// conditionMet evaluates a RequiredIf condition against current field
// values.
func (s *Session) conditionMet(c *Condition) bool {
	value := s.fields[c.Field]
	if c.Equals != "" {
		return value == c.Equals
	}
	if c.NonEmpty {
		return value != ""
	}
	return false
}

// validateIdentityDistinctness checks the personal section's
// duplicate-identity rules: emergency contact name and number must
// differ from the employee's own.
func (s *Session) validateIdentityDistinctness(fail func(field, label, message string)) {
	if validation.SameIdentity(s.fields["fullName"], s.fields["emergencyContactName"]) {
		fail("emergencyContactName", "Emergency Contact Name",
			"Emergency contact name must be different from full name")
	}
	contact := s.fields["contactNumber"]
	emergency := s.fields["emergencyContactNumber"]
	if contact != "" && emergency != "" && contact == emergency {
		fail("emergencyContactNumber", "Emergency Contact Number",
			"Emergency contact number must be different from contact number")
	}
}

// educationRequired lists the entry fields swept by the education
// section, with their kind rules.
var educationRequired = []struct {
	name  string
	label string
	kind  validation.FieldKind
	get   func(e *educationRecord) string
}{
	{"level", "Education Level", validation.KindText, func(e *educationRecord) string { return e.entry.Level }},
	{"qualification", "Qualification", validation.KindText, func(e *educationRecord) string { return e.entry.Qualification }},
	{"yearOfPassing", "Year of Passing", validation.KindYearOfPassing, func(e *educationRecord) string { return e.entry.YearOfPassing }},
	{"boardUniversity", "Board / University", validation.KindText, func(e *educationRecord) string { return e.entry.BoardUniversity }},
	{"cgpa", "CGPA / %", validation.KindCGPA, func(e *educationRecord) string { return e.entry.CGPA }},
}

func (s *Session) validateEducationEntries(_ bool, fail func(field, label, message string)) bool {
	valid := true
	for i := range s.education {
		rec := &s.education[i]
		for _, f := range educationRequired {
			value := f.get(rec)
			field := fmt.Sprintf("education[%d].%s", i, f.name)
			if value == "" {
				valid = false
				fail(field, f.label, "This field is required")
				continue
			}
			if result := validation.Validate(f.kind, value, s.now()); !result.Valid {
				valid = false
				fail(field, f.label, result.Message)
			}
		}
	}
	return valid
}

// experienceRequired lists the entry fields swept when the experience
// radio is answered Yes.
var experienceRequired = []struct {
	name  string
	label string
	kind  validation.FieldKind
	get   func(e *experienceRecord) string
}{
	{"organization", "Organization", validation.KindText, func(e *experienceRecord) string { return e.entry.Organization }},
	{"designation", "Designation", validation.KindText, func(e *experienceRecord) string { return e.entry.Designation }},
	{"experienceAddress", "Organization Address", validation.KindText, func(e *experienceRecord) string { return e.entry.ExperienceAddress }},
	{"companyContact", "Company Contact", validation.KindMobile, func(e *experienceRecord) string { return e.entry.CompanyContact }},
	{"fromDate", "From Date", validation.KindDate, func(e *experienceRecord) string { return e.entry.FromDate }},
	{"toDate", "To Date", validation.KindDate, func(e *experienceRecord) string { return e.entry.ToDate }},
	{"ctc", "CTC", validation.KindText, func(e *experienceRecord) string { return e.entry.CTC }},
	{"reasonForLeaving", "Reason for Leaving", validation.KindText, func(e *experienceRecord) string { return e.entry.ReasonForLeaving }},
}

func (s *Session) validateExperienceSection(_ *SectionSpec, silent bool, fail func(field, label, message string)) bool {
	answer := s.fields["hasExperience"]
	if answer == "" {
		// The radio sweep reports this; nothing below applies yet.
		return true
	}
	if answer == "No" {
		// Stale entries, if any, are not validated.
		return true
	}

	if len(s.experience) == 0 {
		if !silent {
			s.notifier.Notify(LevelError, "Please add at least one work experience")
		}
		fail("hasExperience", "Work Experience", "Please add at least one work experience")
		return false
	}

	valid := true
	joining := s.fields["dateOfJoining"]
	for i := range s.experience {
		rec := &s.experience[i]
		for _, f := range experienceRequired {
			if f.get(rec) == "" {
				valid = false
				fail(fmt.Sprintf("experience[%d].%s", i, f.name), f.label, "This field is required")
			} else if result := validation.Validate(f.kind, f.get(rec), s.now()); !result.Valid {
				valid = false
				fail(fmt.Sprintf("experience[%d].%s", i, f.name), f.label, result.Message)
			}
		}

		if rangeErr := validation.ExperienceDateRange(rec.entry.FromDate, rec.entry.ToDate, joining, s.now()); rangeErr != nil {
			valid = false
			fail(fmt.Sprintf("experience[%d].%s", i, rangeErr.Field), "Experience Dates", rangeErr.Message)
		}

		if !s.experienceDocumentComplete(*rec) {
			valid = false
			fail(fmt.Sprintf("experience[%d].documents", i), "Experience Documents",
				"Upload an experience letter, or both appointment and relieving letters")
		}
	}

	for _, pair := range validation.OverlappingRanges(s.ExperienceEntries()) {
		valid = false
		for _, idx := range []int{pair[0], pair[1]} {
			fail(fmt.Sprintf("experience[%d].toDate", idx), "Experience Dates",
				"Experience date range overlaps with another entry")
		}
	}

	return valid
}
