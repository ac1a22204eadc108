package session

import (
	"strings"
	"time"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/masterdata"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/validation"
)

// MaxFileSize is the per-upload size limit in bytes.
const MaxFileSize = 2 << 20

// educationRecord pairs an entry with its stable creation-order ID.
// The positional index callers see is a projection over the slice;
// document side tables are keyed by the stable ID so they follow
// their entry through removals with no remapping.
type educationRecord struct {
	id    int
	entry types.EducationEntry
}

type experienceRecord struct {
	id    int
	entry types.ExperienceEntry
	docs  types.DocSet
}

// Config wires a Session's collaborators. Zero values get safe
// defaults: strict mode, empty master data, discarded notifications,
// no availability check (treated as allowed), no submission sink.
type Config struct {
	Mode         Mode
	Master       *masterdata.Education
	Notifier     Notifier
	Availability AvailabilityChecker
	Submitter    Submitter
	Now          func() time.Time
}

// Session is the mutable state of one in-progress submission. It is
// an explicit object passed to all operations, not a singleton, and
// must be mutated from a single owner: the engine does no internal
// locking.
type Session struct {
	manifest Manifest
	master   *masterdata.Education
	notifier Notifier
	checker  AvailabilityChecker
	sink     Submitter
	now      func() time.Time

	current   int
	submitted bool

	fields      map[string]string
	fieldErrors map[string]string

	education        []educationRecord
	experience       []experienceRecord
	nextEducationID  int
	nextExperienceID int

	aadharFiles           []types.FileRef
	panFile               *types.FileRef
	educationCertificates map[int]*types.FileRef
	experienceDocuments   map[int]*types.DocSet
}

// New creates a session at section 1 with one empty education entry
// and no experience entries.
func New(cfg Config) *Session {
	s := &Session{
		manifest: ManifestFor(cfg.Mode),
		master:   cfg.Master,
		notifier: cfg.Notifier,
		checker:  cfg.Availability,
		sink:     cfg.Submitter,
		now:      cfg.Now,
	}
	if s.master == nil {
		s.master = masterdata.BuildEducation(nil)
	}
	if s.notifier == nil {
		s.notifier = NopNotifier{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.Reset()
	return s
}

// Reset discards all entered state and returns the session to its
// initial shape.
func (s *Session) Reset() {
	s.current = 1
	s.submitted = false
	s.fields = make(map[string]string)
	s.fieldErrors = make(map[string]string)
	s.education = []educationRecord{{id: 0}}
	s.experience = nil
	s.nextEducationID = 1
	s.nextExperienceID = 0
	s.aadharFiles = nil
	s.panFile = nil
	s.educationCertificates = make(map[int]*types.FileRef)
	s.experienceDocuments = make(map[int]*types.DocSet)
}

// Mode returns the manifest mode the session runs with.
func (s *Session) Mode() Mode {
	return s.manifest.Mode
}

// SectionCount returns the number of sections in the active manifest.
func (s *Session) SectionCount() int {
	return s.manifest.SectionCount()
}

// CurrentSection returns the 1-based section pointer.
func (s *Session) CurrentSection() int {
	return s.current
}

// Submitted reports whether the session reached the terminal state.
func (s *Session) Submitted() bool {
	return s.submitted
}

// SetField stores a field value and clears any stale inline marker on
// success of its own kind check, mirroring blur-time validation.
func (s *Session) SetField(name, value string) types.ValidationResult {
	s.fields[name] = value
	result := s.validateFieldValue(name, value)
	if result.Valid {
		delete(s.fieldErrors, name)
	} else {
		s.fieldErrors[name] = result.Message
	}
	return result
}

// Field returns the stored value for a field name.
func (s *Session) Field(name string) string {
	return s.fields[name]
}

// FieldError returns the inline marker message for a field, if any.
func (s *Session) FieldError(name string) (string, bool) {
	msg, ok := s.fieldErrors[name]
	return msg, ok
}

// FieldErrorCount returns the number of currently marked fields.
func (s *Session) FieldErrorCount() int {
	return len(s.fieldErrors)
}

// validateFieldValue runs the kind predicate for a manifest field.
// Fields not in the manifest have no kind rule.
func (s *Session) validateFieldValue(name, value string) types.ValidationResult {
	for _, sec := range s.manifest.Sections {
		for _, f := range sec.Fields {
			if f.Name == name {
				return validation.Validate(f.Kind, value, s.now())
			}
		}
	}
	return types.OK()
}

// hasExperienceYes reports whether the "has work experience" radio is
// answered Yes.
func (s *Session) hasExperienceYes() bool {
	return s.fields["hasExperience"] == "Yes"
}

// Snapshot aggregates the session into the submission payload.
// Entirely blank entries are dropped; experience rows are included
// only when the experience radio is Yes; the bank name "Other"
// selection is replaced by the free-text value.
func (s *Session) Snapshot() types.FormSnapshot {
	snap := types.FormSnapshot{
		Personal: types.PersonalDetails{
			Salutation:               s.fields["salutation"],
			EmployeeID:               s.fields["employeeId"],
			FullName:                 s.fields["fullName"],
			FatherName:               s.fields["fatherName"],
			ContactNumber:            s.fields["contactNumber"],
			Gender:                   s.fields["gender"],
			MaritalStatus:            s.fields["maritalStatus"],
			DateOfBirth:              s.fields["dateOfBirth"],
			BloodGroup:               s.fields["bloodGroup"],
			EmergencyContactName:     s.fields["emergencyContactName"],
			EmergencyContactNumber:   s.fields["emergencyContactNumber"],
			EmergencyContactRelation: s.fields["emergencyContactRelation"],
		},
		EmployeeDetails: types.EmployeeDetails{
			EmployeeID:    s.fields["employeeId"],
			Designation:   s.fields["designation"],
			DateOfJoining: s.fields["dateOfJoining"],
			PersonalEmail: s.fields["personalEmail"],
			CompanyEmail:  s.fields["companyEmail"],
		},
		Address: types.AddressDetails{
			CurrentAddress:   s.fields["currentAddress"],
			PermanentAddress: s.fields["permanentAddress"],
			PersonalEmail:    s.fields["personalEmail"],
			CompanyEmail:     s.fields["companyEmail"],
			Country:          s.fields["country"],
			State:            s.fields["state"],
			District:         s.fields["district"],
			City:             s.fields["city"],
			Pincode:          s.fields["pincode"],
		},
		Identification: types.IdentificationDetails{
			AadharNumber:      s.fields["aadharNumber"],
			UANNumber:         s.fields["uanNumber"],
			PANNumber:         s.fields["panNumber"],
			PassportNumber:    s.fields["passportNumber"],
			PassportValidUpto: s.fields["passportValidUpto"],
		},
		Bank: types.BankDetails{
			BankName:       s.snapshotBankName(),
			AccountNumber:  s.fields["accountNumber"],
			IFSCCode:       s.fields["ifscCode"],
			BankHolderName: s.fields["bankHolderName"],
		},
	}

	for _, rec := range s.education {
		if !rec.entry.IsBlank() {
			snap.Education = append(snap.Education, rec.entry)
		}
	}
	if s.hasExperienceYes() {
		for _, rec := range s.experience {
			if !rec.entry.IsBlank() {
				snap.Experience = append(snap.Experience, rec.entry)
			}
		}
	}

	qualification, passingYear := s.highestQualification()
	snap.Other = types.OtherDetails{
		HighestQualification:            qualification,
		HighestQualificationPassingYear: passingYear,
		DetailsConfirmation:             s.declarationConfirmed(),
	}
	return snap
}

func (s *Session) snapshotBankName() string {
	name := s.fields["bankName"]
	if name == "Other" {
		return strings.TrimSpace(s.fields["bankNameOther"])
	}
	return name
}

func (s *Session) declarationConfirmed() bool {
	return s.fields["detailsConfirmation"] == "true"
}

// highestQualification derives the qualification with the latest
// parseable year of passing; later entries win ties.
func (s *Session) highestQualification() (qualification, passingYear string) {
	var latest time.Time
	found := false
	for _, rec := range s.education {
		if rec.entry.YearOfPassing == "" || rec.entry.Qualification == "" {
			continue
		}
		passed, err := time.Parse(validation.DateLayout, rec.entry.YearOfPassing)
		if err != nil {
			continue
		}
		if !found || !passed.Before(latest) {
			latest = passed
			found = true
			qualification = rec.entry.Qualification
			passingYear = passed.Format("2006")
		}
	}
	return qualification, passingYear
}

// TotalFileCount counts every attached document across the session.
func (s *Session) TotalFileCount() int {
	count := len(s.aadharFiles)
	if s.panFile != nil {
		count++
	}
	count += len(s.educationCertificates)
	for _, docs := range s.experienceDocuments {
		if docs.Appointment != nil {
			count++
		}
		if docs.Experience != nil {
			count++
		}
		if docs.Relieving != nil {
			count++
		}
	}
	return count
}
