package session

import (
	"time"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/masterdata"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
)

var testNow = time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	levels   []Level
	messages []string
}

func (n *recordingNotifier) Notify(level Level, message string) {
	n.levels = append(n.levels, level)
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) last() string {
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

func testMaster() *masterdata.Education {
	return masterdata.BuildEducation([]masterdata.Row{
		{DegreeType: "Bachelor's", DegreeName: "B.Tech", Specialization: "Computer Science"},
		{DegreeType: "Bachelor's", DegreeName: "B.Sc", Specialization: "Physics"},
		{DegreeType: "Master's", DegreeName: "M.Tech", Specialization: "Computer Science"},
	})
}

func newTestSession() (*Session, *recordingNotifier) {
	notifier := &recordingNotifier{}
	s := New(Config{
		Master:   testMaster(),
		Notifier: notifier,
		Now:      func() time.Time { return testNow },
	})
	return s, notifier
}

func fillPersonal(s *Session) {
	s.SetField("salutation", "Mr")
	s.SetField("fullName", "John Doe")
	s.SetField("fatherName", "Richard Doe")
	s.SetField("dateOfBirth", "1995-05-20")
	s.SetField("gender", "Male")
	s.SetField("maritalStatus", "Single")
	s.SetField("contactNumber", "9876543210")
	s.SetField("emergencyContactName", "Jane Doe")
	s.SetField("emergencyContactNumber", "9123456780")
	s.SetField("emergencyContactRelation", "Spouse")
}

func fillEmployee(s *Session) {
	s.SetField("employeeId", "EMP-1042")
	s.SetField("designation", "Software Engineer")
	s.SetField("dateOfJoining", "2026-03-01")
	s.SetField("personalEmail", "john.doe@example.com")
	s.SetField("companyEmail", "john.doe@polosoft.com")
}

func fillAddress(s *Session) {
	s.SetField("currentAddress", "12 MG Road")
	s.SetField("permanentAddress", "12 MG Road")
	s.SetField("country", "India")
	s.SetField("state", "Telangana")
	s.SetField("district", "Hyderabad")
	s.SetField("city", "Hyderabad")
	s.SetField("pincode", "500081")
	s.SetField("aadharNumber", "123412341234")
	s.SetField("panNumber", "ABCDE1234F")
	_ = s.AttachAadharFile(types.FileRef{Name: "aadhar-front.png", Size: 1024})
}

func fillEducation(s *Session) {
	_ = s.UpdateEducation(0, types.EducationEntry{
		Level:           "Bachelor's",
		Qualification:   "B.Tech",
		YearOfPassing:   "2017-06-30",
		Specialization:  "Computer Science",
		BoardUniversity: "Osmania University",
		CGPA:            "8.1",
	})
}

func fillBank(s *Session) {
	s.SetField("bankName", "State Bank of India")
	s.SetField("accountNumber", "00112233445566")
	s.SetField("ifscCode", "SBIN0001234")
	s.SetField("bankHolderName", "John Doe")
}

func fillExperienceNone(s *Session) {
	s.SetField("hasExperience", "No")
	s.SetField("previousInterview", "No")
	s.SetField("criminalCase", "No")
	s.SetField("disability", "No")
	s.SetField("detailsConfirmation", "true")
}

func addCompleteExperience(s *Session, from, to string) int {
	index := s.AddExperience()
	_ = s.UpdateExperience(index, types.ExperienceEntry{
		Organization:      "Acme Corp",
		Designation:       "Developer",
		ExperienceAddress: "1 Industrial Estate",
		CompanyContact:    "9988776655",
		FromDate:          from,
		ToDate:            to,
		CTC:               "12 LPA",
		ReasonForLeaving:  "Relocation",
	})
	return index
}
