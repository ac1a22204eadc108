package session

import (
	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/validation"
)

// AddEducation appends an empty education entry and returns its
// positional index.
func (s *Session) AddEducation() int {
	s.education = append(s.education, educationRecord{id: s.nextEducationID})
	s.nextEducationID++
	return len(s.education) - 1
}

// RemoveEducation deletes the entry at index. The last remaining
// education entry can never be removed; callers get ErrLastEntry and
// state is unchanged. Remaining entries keep their relative order and
// their attached certificates.
func (s *Session) RemoveEducation(index int) error {
	if index < 0 || index >= len(s.education) {
		return &ErrNoSuchEntry{Kind: "education", Index: index}
	}
	if len(s.education) == 1 {
		err := &ErrLastEntry{Kind: "education"}
		s.notifier.Notify(LevelWarning, "You must keep at least one education entry")
		return err
	}
	delete(s.educationCertificates, s.education[index].id)
	s.education = append(s.education[:index], s.education[index+1:]...)
	s.notifier.Notify(LevelSuccess, "Education entry removed successfully")
	return nil
}

// EducationCount returns the number of education entries.
func (s *Session) EducationCount() int {
	return len(s.education)
}

// EducationEntry returns a copy of the entry at index.
func (s *Session) EducationEntry(index int) (types.EducationEntry, error) {
	if index < 0 || index >= len(s.education) {
		return types.EducationEntry{}, &ErrNoSuchEntry{Kind: "education", Index: index}
	}
	return s.education[index].entry, nil
}

// EducationEntries returns copies of all entries in order.
func (s *Session) EducationEntries() []types.EducationEntry {
	entries := make([]types.EducationEntry, len(s.education))
	for i, rec := range s.education {
		entries[i] = rec.entry
	}
	return entries
}

// UpdateEducation replaces the entry at index.
func (s *Session) UpdateEducation(index int, entry types.EducationEntry) error {
	if index < 0 || index >= len(s.education) {
		return &ErrNoSuchEntry{Kind: "education", Index: index}
	}
	s.education[index].entry = entry
	return nil
}

// SetEducationLevel changes an entry's level. A qualification or
// specialization not present in the new level's option set is cleared
// unless preserve is set (the repopulation pass keeps matching values
// either way).
func (s *Session) SetEducationLevel(index int, level string, preserve bool) error {
	if index < 0 || index >= len(s.education) {
		return &ErrNoSuchEntry{Kind: "education", Index: index}
	}
	entry := &s.education[index].entry
	entry.Level = level

	if !preserve || !s.master.HasQualification(level, entry.Qualification) {
		entry.Qualification = ""
	}
	if !preserve || entry.Qualification == "" ||
		!s.master.HasSpecialization(level, entry.Qualification, entry.Specialization) {
		entry.Specialization = ""
	}
	return nil
}

// SetEducationQualification changes an entry's qualification and
// clears a specialization that is not valid for the new pair.
func (s *Session) SetEducationQualification(index int, qualification string) error {
	if index < 0 || index >= len(s.education) {
		return &ErrNoSuchEntry{Kind: "education", Index: index}
	}
	entry := &s.education[index].entry
	entry.Qualification = qualification
	if !s.master.HasSpecialization(entry.Level, qualification, entry.Specialization) {
		entry.Specialization = ""
	}
	return nil
}

// AddExperience appends an empty experience entry and returns its
// positional index.
func (s *Session) AddExperience() int {
	s.experience = append(s.experience, experienceRecord{id: s.nextExperienceID})
	s.nextExperienceID++
	return len(s.experience) - 1
}

// RemoveExperience deletes the entry at index. While the experience
// radio is answered Yes the collection must stay non-empty; the last
// entry is kept and ErrLastEntry returned. Document sets follow their
// entries.
func (s *Session) RemoveExperience(index int) error {
	if index < 0 || index >= len(s.experience) {
		return &ErrNoSuchEntry{Kind: "experience", Index: index}
	}
	if len(s.experience) == 1 && s.hasExperienceYes() {
		err := &ErrLastEntry{Kind: "experience"}
		s.notifier.Notify(LevelWarning, `You must keep at least one experience entry when "Yes" is selected`)
		return err
	}
	delete(s.experienceDocuments, s.experience[index].id)
	s.experience = append(s.experience[:index], s.experience[index+1:]...)
	s.notifier.Notify(LevelSuccess, "Experience entry removed successfully")
	return nil
}

// ExperienceCount returns the number of experience entries.
func (s *Session) ExperienceCount() int {
	return len(s.experience)
}

// ExperienceEntry returns a copy of the entry at index.
func (s *Session) ExperienceEntry(index int) (types.ExperienceEntry, error) {
	if index < 0 || index >= len(s.experience) {
		return types.ExperienceEntry{}, &ErrNoSuchEntry{Kind: "experience", Index: index}
	}
	return s.experience[index].entry, nil
}

// ExperienceEntries returns copies of all entries in order.
func (s *Session) ExperienceEntries() []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, len(s.experience))
	for i, rec := range s.experience {
		entries[i] = rec.entry
	}
	return entries
}

// UpdateExperience replaces the entry at index.
func (s *Session) UpdateExperience(index int, entry types.ExperienceEntry) error {
	if index < 0 || index >= len(s.experience) {
		return &ErrNoSuchEntry{Kind: "experience", Index: index}
	}
	s.experience[index].entry = entry
	return nil
}

// DocType names one experience document slot.
type DocType string

const (
	DocAppointment DocType = "appointment"
	DocExperience  DocType = "experience"
	DocRelieving   DocType = "relieving"
)

// AttachExperienceDocument stores a document for the entry at index.
// Files over MaxFileSize are refused with an error notification.
func (s *Session) AttachExperienceDocument(index int, docType DocType, file types.FileRef) error {
	if index < 0 || index >= len(s.experience) {
		return &ErrNoSuchEntry{Kind: "experience", Index: index}
	}
	if file.Size > MaxFileSize {
		s.notifier.Notify(LevelError, "File size must be less than 2MB")
		return &ErrFileTooLarge{Name: file.Name, Size: file.Size}
	}

	id := s.experience[index].id
	docs := s.experienceDocuments[id]
	if docs == nil {
		docs = &types.DocSet{}
		s.experienceDocuments[id] = docs
	}
	switch docType {
	case DocAppointment:
		docs.Appointment = &file
	case DocExperience:
		docs.Experience = &file
	case DocRelieving:
		docs.Relieving = &file
	}
	return nil
}

// RemoveExperienceDocument clears one document slot for an entry.
func (s *Session) RemoveExperienceDocument(index int, docType DocType) error {
	if index < 0 || index >= len(s.experience) {
		return &ErrNoSuchEntry{Kind: "experience", Index: index}
	}
	docs := s.experienceDocuments[s.experience[index].id]
	if docs == nil {
		return nil
	}
	switch docType {
	case DocAppointment:
		docs.Appointment = nil
	case DocExperience:
		docs.Experience = nil
	case DocRelieving:
		docs.Relieving = nil
	}
	return nil
}

// ExperienceDocuments returns the document set attached to the entry
// at index, or nil.
func (s *Session) ExperienceDocuments(index int) *types.DocSet {
	if index < 0 || index >= len(s.experience) {
		return nil
	}
	return s.experienceDocuments[s.experience[index].id]
}

// RequiredDocuments implements the document-requirement rule: once an
// experience letter is attached, appointment and relieving letters are
// optional for that entry; otherwise both are required. The result is
// recomputed on every call, matching re-evaluation on every document
// change event.
func (s *Session) RequiredDocuments(index int) []DocType {
	if index < 0 || index >= len(s.experience) {
		return nil
	}
	docs := s.experienceDocuments[s.experience[index].id]
	if docs != nil && docs.Experience != nil {
		return nil
	}
	return []DocType{DocAppointment, DocRelieving}
}

// experienceDocumentComplete applies the completeness rule for one
// experience record.
func (s *Session) experienceDocumentComplete(rec experienceRecord) bool {
	return validation.DocumentComplete(s.experienceDocuments[rec.id])
}

// AttachAadharFile appends an Aadhar document to the identity file
// list, subject to the size limit.
func (s *Session) AttachAadharFile(file types.FileRef) error {
	if file.Size > MaxFileSize {
		s.notifier.Notify(LevelError, "File size must be less than 2MB")
		return &ErrFileTooLarge{Name: file.Name, Size: file.Size}
	}
	s.aadharFiles = append(s.aadharFiles, file)
	return nil
}

// RemoveAadharFile deletes the Aadhar document at index.
func (s *Session) RemoveAadharFile(index int) error {
	if index < 0 || index >= len(s.aadharFiles) {
		return &ErrNoSuchEntry{Kind: "aadhar file", Index: index}
	}
	s.aadharFiles = append(s.aadharFiles[:index], s.aadharFiles[index+1:]...)
	return nil
}

// AadharFiles returns the attached Aadhar documents.
func (s *Session) AadharFiles() []types.FileRef {
	return s.aadharFiles
}

// AttachPANFile stores the single PAN document, replacing any
// previous one.
func (s *Session) AttachPANFile(file types.FileRef) error {
	if file.Size > MaxFileSize {
		s.notifier.Notify(LevelError, "PAN file must be less than 2MB")
		return &ErrFileTooLarge{Name: file.Name, Size: file.Size}
	}
	s.panFile = &file
	return nil
}

// AttachEducationCertificate stores the certificate for the education
// entry at index.
func (s *Session) AttachEducationCertificate(index int, file types.FileRef) error {
	if index < 0 || index >= len(s.education) {
		return &ErrNoSuchEntry{Kind: "education", Index: index}
	}
	if file.Size > MaxFileSize {
		s.notifier.Notify(LevelError, "File size must be less than 2MB")
		return &ErrFileTooLarge{Name: file.Name, Size: file.Size}
	}
	s.educationCertificates[s.education[index].id] = &file
	return nil
}

// EducationCertificate returns the certificate attached to the entry
// at index, or nil.
func (s *Session) EducationCertificate(index int) *types.FileRef {
	if index < 0 || index >= len(s.education) {
		return nil
	}
	return s.educationCertificates[s.education[index].id]
}
