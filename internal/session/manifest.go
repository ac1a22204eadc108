package session

import "github.com/Pawankrsingh7/hrm-polosoft/internal/validation"

// Mode selects which section/field manifest the engine runs with.
// The strict and relaxed variants are the same parameterized core with
// different manifest data, not separate code paths.
type Mode string

const (
	// ModeStrict is the canonical six-section form with the full
	// field set (UAN, passport, bank details).
	ModeStrict Mode = "strict"
	// ModeRelaxed is the reduced five-section form.
	ModeRelaxed Mode = "relaxed"
)

// Control distinguishes how a field is collected, which changes how
// the required-field sweep treats it.
type Control int

const (
	ControlInput Control = iota
	ControlRadio
	ControlCheckbox
)

// Condition makes a field required only when another field matches.
// Equals takes precedence; NonEmpty requires any value.
type Condition struct {
	Field    string
	Equals   string
	NonEmpty bool
}

// FieldSpec declares one field of a section.
type FieldSpec struct {
	Name       string
	Label      string
	Kind       validation.FieldKind
	Control    Control
	Required   bool
	RequiredIf *Condition
}

// SectionSpec declares one section of the form. The Owns* flags mark
// the sections with special orchestrator handling.
type SectionSpec struct {
	Number int
	Title  string
	Fields []FieldSpec

	// OwnsEmployeeID triggers the availability pre-check when
	// navigating forward out of this section.
	OwnsEmployeeID bool
	// OwnsIdentityDocs requires at least one Aadhar file.
	OwnsIdentityDocs bool
	// OwnsEducation validates the education entry collection.
	OwnsEducation bool
	// OwnsExperience validates the experience collection, its date
	// rules and its document requirements.
	OwnsExperience bool
}

// Manifest is the full declarative description of the form.
type Manifest struct {
	Mode     Mode
	Sections []SectionSpec
}

// SectionCount returns N, the number of sections.
func (m *Manifest) SectionCount() int {
	return len(m.Sections)
}

// Section returns the spec for section n (1-based), or nil.
func (m *Manifest) Section(n int) *SectionSpec {
	if n < 1 || n > len(m.Sections) {
		return nil
	}
	return &m.Sections[n-1]
}

// ManifestFor returns the canonical manifest for a mode. Unknown modes
// fall back to strict.
func ManifestFor(mode Mode) Manifest {
	if mode == ModeRelaxed {
		return RelaxedManifest()
	}
	return StrictManifest()
}

func personalSection(number int) SectionSpec {
	return SectionSpec{
		Number: number,
		Title:  "Personal Details",
		Fields: []FieldSpec{
			{Name: "salutation", Label: "Salutation", Required: true},
			{Name: "fullName", Label: "Full Name", Kind: validation.KindName, Required: true},
			{Name: "fatherName", Label: "Father's Name", Kind: validation.KindName, Required: true},
			{Name: "dateOfBirth", Label: "Date of Birth", Kind: validation.KindDateOfBirth, Required: true},
			{Name: "gender", Label: "Gender", Control: ControlRadio, Required: true},
			{Name: "maritalStatus", Label: "Marital Status", Required: true},
			{Name: "bloodGroup", Label: "Blood Group"},
			{Name: "contactNumber", Label: "Contact Number", Kind: validation.KindMobile, Required: true},
			{Name: "emergencyContactName", Label: "Emergency Contact Name", Kind: validation.KindName, Required: true},
			{Name: "emergencyContactNumber", Label: "Emergency Contact Number", Kind: validation.KindMobile, Required: true},
			{Name: "emergencyContactRelation", Label: "Emergency Contact Relation", Required: true},
		},
	}
}

func employeeSection(number int) SectionSpec {
	return SectionSpec{
		Number:         number,
		Title:          "Employee Details",
		OwnsEmployeeID: true,
		Fields: []FieldSpec{
			{Name: "employeeId", Label: "Employee ID", Required: true},
			{Name: "designation", Label: "Designation", Required: true},
			{Name: "dateOfJoining", Label: "Date of Joining", Kind: validation.KindDateOfJoining, Required: true},
			{Name: "personalEmail", Label: "Personal Email", Kind: validation.KindEmail, Required: true},
			{Name: "companyEmail", Label: "Company Email", Kind: validation.KindEmail, Required: true},
		},
	}
}

func addressSection(number int, full bool) SectionSpec {
	fields := []FieldSpec{
		{Name: "currentAddress", Label: "Current Address", Required: true},
		{Name: "permanentAddress", Label: "Permanent Address", Required: true},
		{Name: "country", Label: "Country", Required: true},
		{Name: "state", Label: "State", Required: true},
		{Name: "district", Label: "District", Required: true},
		{Name: "city", Label: "City", Kind: validation.KindName, Required: true},
		{Name: "pincode", Label: "Pincode", Kind: validation.KindPincode, Required: true},
		{Name: "aadharNumber", Label: "Aadhar Number", Kind: validation.KindAadhar, Required: true},
		{Name: "panNumber", Label: "PAN Number", Kind: validation.KindPAN, Required: true},
	}
	if full {
		fields = append(fields,
			FieldSpec{Name: "uanNumber", Label: "UAN Number", Kind: validation.KindUAN},
			FieldSpec{Name: "passportNumber", Label: "Passport Number"},
			FieldSpec{Name: "passportValidUpto", Label: "Passport Valid Upto", Kind: validation.KindDate,
				RequiredIf: &Condition{Field: "passportNumber", NonEmpty: true}},
		)
	}
	return SectionSpec{
		Number:           number,
		Title:            "Address & Identification",
		OwnsIdentityDocs: true,
		Fields:           fields,
	}
}

func educationSection(number int) SectionSpec {
	return SectionSpec{
		Number:        number,
		Title:         "Education",
		OwnsEducation: true,
	}
}

func bankSection(number int) SectionSpec {
	return SectionSpec{
		Number: number,
		Title:  "Bank Details",
		Fields: []FieldSpec{
			{Name: "bankName", Label: "Bank Name", Required: true},
			{Name: "bankNameOther", Label: "Bank Name (Other)",
				RequiredIf: &Condition{Field: "bankName", Equals: "Other"}},
			{Name: "accountNumber", Label: "Account Number", Required: true},
			{Name: "ifscCode", Label: "IFSC Code", Required: true},
			{Name: "bankHolderName", Label: "Account Holder Name", Kind: validation.KindName, Required: true},
		},
	}
}

func experienceSection(number int) SectionSpec {
	return SectionSpec{
		Number:         number,
		Title:          "Work Experience",
		OwnsExperience: true,
		Fields: []FieldSpec{
			{Name: "hasExperience", Label: "Work Experience", Control: ControlRadio, Required: true},
			{Name: "previousInterview", Label: "Previous Interview", Control: ControlRadio, Required: true},
			{Name: "previousInterviewDetails", Label: "Previous Interview Details",
				RequiredIf: &Condition{Field: "previousInterview", Equals: "Yes"}},
			{Name: "criminalCase", Label: "Criminal Case", Control: ControlRadio, Required: true},
			{Name: "criminalCaseDetails", Label: "Criminal Case Details",
				RequiredIf: &Condition{Field: "criminalCase", Equals: "Yes"}},
			{Name: "disability", Label: "Disability", Control: ControlRadio, Required: true},
			{Name: "disabilityDetails", Label: "Disability Details",
				RequiredIf: &Condition{Field: "disability", Equals: "Yes"}},
			{Name: "detailsConfirmation", Label: "Declaration", Control: ControlCheckbox, Required: true},
		},
	}
}

// StrictManifest is the canonical six-section form.
func StrictManifest() Manifest {
	return Manifest{
		Mode: ModeStrict,
		Sections: []SectionSpec{
			personalSection(1),
			employeeSection(2),
			addressSection(3, true),
			educationSection(4),
			bankSection(5),
			experienceSection(6),
		},
	}
}

// RelaxedManifest is the reduced five-section form: no UAN or passport
// fields and no bank section.
func RelaxedManifest() Manifest {
	return Manifest{
		Mode: ModeRelaxed,
		Sections: []SectionSpec{
			personalSection(1),
			employeeSection(2),
			addressSection(3, false),
			educationSection(4),
			experienceSection(5),
		},
	}
}
