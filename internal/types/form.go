// Package types provides type definitions for structured data used throughout the onboarding system.
package types

// ValidationResult is the outcome of validating a single field value.
// It is recomputed on demand and never persisted.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// OK is the successful validation result.
func OK() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid returns a failed validation result with an inline message.
func Invalid(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}

// FieldError attributes a validation failure to a named field.
type FieldError struct {
	Field   string `json:"field"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message"`
}

// FileRef identifies one uploaded document.
type FileRef struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// DocSet is the set of documents attached to one experience entry.
// An entry is document-complete when it has an experience letter, or
// both an appointment letter and a relieving letter.
type DocSet struct {
	Appointment *FileRef `json:"appointment,omitempty"`
	Experience  *FileRef `json:"experience,omitempty"`
	Relieving   *FileRef `json:"relieving,omitempty"`
}

// EducationEntry is one repeatable education record.
type EducationEntry struct {
	Level           string `json:"level"`
	Qualification   string `json:"qualification"`
	YearOfPassing   string `json:"yearOfPassing"`
	Specialization  string `json:"specialization"`
	BoardUniversity string `json:"boardUniversity"`
	CGPA            string `json:"cgpa"`
}

// IsBlank reports whether every field of the entry is empty.
func (e *EducationEntry) IsBlank() bool {
	return e.Level == "" && e.Qualification == "" && e.YearOfPassing == "" &&
		e.Specialization == "" && e.BoardUniversity == "" && e.CGPA == ""
}

// ExperienceEntry is one repeatable work-experience record.
type ExperienceEntry struct {
	Organization      string `json:"organization"`
	Designation       string `json:"designation"`
	ExperienceAddress string `json:"experienceAddress"`
	CompanyContact    string `json:"companyContact"`
	FromDate          string `json:"fromDate"`
	ToDate            string `json:"toDate"`
	CTC               string `json:"ctc"`
	ReasonForLeaving  string `json:"reasonForLeaving"`
}

// IsBlank reports whether every field of the entry is empty.
func (e *ExperienceEntry) IsBlank() bool {
	return e.Organization == "" && e.Designation == "" && e.ExperienceAddress == "" &&
		e.CompanyContact == "" && e.FromDate == "" && e.ToDate == "" &&
		e.CTC == "" && e.ReasonForLeaving == ""
}

// PersonalDetails is the first snapshot group.
type PersonalDetails struct {
	Salutation               string `json:"salutation"`
	EmployeeID               string `json:"employeeId"`
	FullName                 string `json:"fullName"`
	FatherName               string `json:"fatherName"`
	ContactNumber            string `json:"contactNumber"`
	Gender                   string `json:"gender"`
	MaritalStatus            string `json:"maritalStatus"`
	DateOfBirth              string `json:"dateOfBirth"`
	BloodGroup               string `json:"bloodGroup"`
	EmergencyContactName     string `json:"emergencyContactName"`
	EmergencyContactNumber   string `json:"emergencyContactNumber"`
	EmergencyContactRelation string `json:"emergencyContactRelation"`
}

// EmployeeDetails carries employment identifiers and dates.
type EmployeeDetails struct {
	EmployeeID    string `json:"employeeId"`
	Designation   string `json:"designation"`
	DateOfJoining string `json:"dateOfJoining"`
	PersonalEmail string `json:"personalEmail"`
	CompanyEmail  string `json:"companyEmail"`
}

// AddressDetails carries residential and contact information.
type AddressDetails struct {
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	PersonalEmail    string `json:"personalEmail"`
	CompanyEmail     string `json:"companyEmail"`
	Country          string `json:"country"`
	State            string `json:"state"`
	District         string `json:"district"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
}

// IdentificationDetails carries government identity numbers.
type IdentificationDetails struct {
	AadharNumber      string `json:"aadharNumber"`
	UANNumber         string `json:"uanNumber"`
	PANNumber         string `json:"panNumber"`
	PassportNumber    string `json:"passportNumber"`
	PassportValidUpto string `json:"passportValidUpto"`
}

// BankDetails carries salary account information.
type BankDetails struct {
	BankName       string `json:"bankName"`
	AccountNumber  string `json:"accountNumber"`
	IFSCCode       string `json:"ifscCode"`
	BankHolderName string `json:"bankHolderName"`
}

// OtherDetails carries derived and confirmation fields.
type OtherDetails struct {
	HighestQualification            string `json:"highestQualification"`
	HighestQualificationPassingYear string `json:"highestQualificationPassingYear"`
	DetailsConfirmation             bool   `json:"detailsConfirmation"`
}

// FormSnapshot is the aggregated submission payload handed to the
// submission sink and persisted verbatim by the backend.
type FormSnapshot struct {
	Personal        PersonalDetails       `json:"personal"`
	EmployeeDetails EmployeeDetails       `json:"employeeDetails"`
	Address         AddressDetails        `json:"address"`
	Identification  IdentificationDetails `json:"identification"`
	Bank            BankDetails           `json:"bank"`
	Education       []EducationEntry      `json:"education"`
	Experience      []ExperienceEntry     `json:"experience"`
	Other           OtherDetails          `json:"other"`
}

// HasExperience reports whether the snapshot carries at least one
// meaningful experience row. Mirrors what the backend persists in the
// has_experience column.
func (s *FormSnapshot) HasExperience() bool {
	for _, e := range s.Experience {
		if e.Organization != "" || e.Designation != "" || e.FromDate != "" {
			return true
		}
	}
	return false
}
