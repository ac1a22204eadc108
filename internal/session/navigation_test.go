package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker scripts the availability answer.
type stubChecker struct {
	allowed bool
	message string
	err     error
	calls   int
}

func (c *stubChecker) Check(_ context.Context, _ string) (bool, string, error) {
	c.calls++
	return c.allowed, c.message, c.err
}

// stubSubmitter records the snapshot it receives.
type stubSubmitter struct {
	snapshot types.FormSnapshot
	files    int
	err      error
	calls    int
}

func (s *stubSubmitter) Submit(_ context.Context, snapshot types.FormSnapshot, files int) error {
	s.calls++
	s.snapshot = snapshot
	s.files = files
	return s.err
}

func fillAllSections(s *Session) {
	fillPersonal(s)
	fillEmployee(s)
	fillAddress(s)
	fillEducation(s)
	fillBank(s)
	fillExperienceNone(s)
}

func TestNext_BlockedByInvalidSection(t *testing.T) {
	s, notifier := newTestSession()
	fillPersonal(s)
	s.SetField("fatherName", "")

	err := s.Next(context.Background())
	var sectionErr *ErrSectionInvalid
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, 1, s.CurrentSection())
	assert.Contains(t, notifier.last(), "Please fill all required fields in this section. Check: Father's Name")
}

func TestNext_AdvancesOnValidSection(t *testing.T) {
	s, _ := newTestSession()
	fillPersonal(s)
	require.NoError(t, s.Next(context.Background()))
	assert.Equal(t, 2, s.CurrentSection())
}

func TestNext_StopsAtFinalSection(t *testing.T) {
	s, _ := newTestSession()
	fillAllSections(s)
	s.current = s.SectionCount()
	require.NoError(t, s.Next(context.Background()))
	assert.Equal(t, s.SectionCount(), s.CurrentSection())
}

func TestNext_AvailabilityDeniedBlocksNavigation(t *testing.T) {
	checker := &stubChecker{allowed: false}
	notifier := &recordingNotifier{}
	s := New(Config{
		Master:       testMaster(),
		Notifier:     notifier,
		Availability: checker,
		Now:          func() time.Time { return testNow },
	})
	fillPersonal(s)
	require.NoError(t, s.Next(context.Background()))
	fillEmployee(s)

	err := s.Next(context.Background())
	var blocked *ErrEmployeeIDBlocked
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 2, s.CurrentSection())
	assert.Equal(t, 1, checker.calls)
	msg, marked := s.FieldError("employeeId")
	require.True(t, marked)
	assert.Equal(t, "This employee ID has already verified and cannot apply again.", msg)
	assert.Equal(t, msg, notifier.last())
}

func TestNext_AvailabilityErrorFailsClosed(t *testing.T) {
	checker := &stubChecker{err: errors.New("connection refused")}
	notifier := &recordingNotifier{}
	s := New(Config{
		Master:       testMaster(),
		Notifier:     notifier,
		Availability: checker,
		Now:          func() time.Time { return testNow },
	})
	fillPersonal(s)
	require.NoError(t, s.Next(context.Background()))
	fillEmployee(s)

	err := s.Next(context.Background())
	var blocked *ErrEmployeeIDBlocked
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 2, s.CurrentSection())
	assert.Equal(t, "Unable to validate Employee ID right now. Please try again.", notifier.last())
}

func TestNext_AvailabilitySkippedForEmptyEmployeeID(t *testing.T) {
	checker := &stubChecker{allowed: false}
	s := New(Config{
		Master:       testMaster(),
		Notifier:     &recordingNotifier{},
		Availability: checker,
		Now:          func() time.Time { return testNow },
	})
	s.current = 2
	// Section validation fails on the empty fields, but the checker
	// must not have been consulted.
	_ = s.Next(context.Background())
	assert.Equal(t, 0, checker.calls)
}

func TestNext_AvailabilityAllowedClearsMarker(t *testing.T) {
	checker := &stubChecker{allowed: false}
	s := New(Config{
		Master:       testMaster(),
		Notifier:     &recordingNotifier{},
		Availability: checker,
		Now:          func() time.Time { return testNow },
	})
	fillPersonal(s)
	require.NoError(t, s.Next(context.Background()))
	fillEmployee(s)
	_ = s.Next(context.Background())
	_, marked := s.FieldError("employeeId")
	require.True(t, marked)

	checker.allowed = true
	require.NoError(t, s.Next(context.Background()))
	_, marked = s.FieldError("employeeId")
	assert.False(t, marked)
	assert.Equal(t, 3, s.CurrentSection())
}

func TestPrev_AlwaysAllowed(t *testing.T) {
	s, _ := newTestSession()
	s.current = 4
	s.Prev()
	assert.Equal(t, 3, s.CurrentSection())

	s.current = 1
	s.Prev()
	assert.Equal(t, 1, s.CurrentSection(), "cannot move before the first section")
}

func TestJumpTo_BackwardWithValidHistory(t *testing.T) {
	s, _ := newTestSession()
	fillPersonal(s)
	fillEmployee(s)
	s.current = 3
	require.NoError(t, s.JumpTo(2))
	assert.Equal(t, 2, s.CurrentSection())
}

func TestJumpTo_ForwardRejected(t *testing.T) {
	s, _ := newTestSession()
	fillAllSections(s)
	assert.Error(t, s.JumpTo(3))
	assert.Equal(t, 1, s.CurrentSection())
}

func TestJumpTo_BlockedByIncompleteInterveningSection(t *testing.T) {
	s, notifier := newTestSession()
	fillEmployee(s) // section 1 left empty
	s.current = 3

	err := s.JumpTo(2)
	var sectionErr *ErrSectionInvalid
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, 1, sectionErr.Section)
	assert.Equal(t, 3, s.CurrentSection())
	assert.Equal(t, "Please complete section 1 first", notifier.last())
	assert.Equal(t, 0, s.FieldErrorCount(), "jump validation is silent")
}

func TestJumpTo_OutOfRange(t *testing.T) {
	s, _ := newTestSession()
	assert.Error(t, s.JumpTo(0))
	assert.Error(t, s.JumpTo(s.SectionCount()+1))
}

func TestProgressAndCompletion(t *testing.T) {
	s, _ := newTestSession()
	assert.InDelta(t, 100.0/6.0, s.Progress(), 0.001)

	s.current = 4
	assert.InDelta(t, 400.0/6.0, s.Progress(), 0.001)
	assert.True(t, s.SectionCompleted(3))
	assert.False(t, s.SectionCompleted(4))
	assert.False(t, s.SectionCompleted(0))
}

func TestSubmit_DeliversSnapshotAndFileCount(t *testing.T) {
	sink := &stubSubmitter{}
	notifier := &recordingNotifier{}
	s := New(Config{
		Master:    testMaster(),
		Notifier:  notifier,
		Submitter: sink,
		Now:       func() time.Time { return testNow },
	})
	fillAllSections(s)
	s.current = s.SectionCount()

	require.NoError(t, s.Submit(context.Background()))
	assert.True(t, s.Submitted())
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, "John Doe", sink.snapshot.Personal.FullName)
	assert.Equal(t, 1, sink.files, "one Aadhar file attached")
	assert.Equal(t, "Application submitted successfully!", notifier.last())
}

func TestSubmit_BlockedByInvalidFinalSection(t *testing.T) {
	sink := &stubSubmitter{}
	s := New(Config{
		Master:    testMaster(),
		Notifier:  &recordingNotifier{},
		Submitter: sink,
		Now:       func() time.Time { return testNow },
	})
	fillAllSections(s)
	s.SetField("disability", "")
	s.current = s.SectionCount()

	err := s.Submit(context.Background())
	var sectionErr *ErrSectionInvalid
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, 0, sink.calls)
	assert.False(t, s.Submitted())
}

func TestSubmit_RequiresDeclaration(t *testing.T) {
	sink := &stubSubmitter{}
	s := New(Config{
		Master:    testMaster(),
		Notifier:  &recordingNotifier{},
		Submitter: sink,
		Now:       func() time.Time { return testNow },
	})
	fillAllSections(s)
	s.SetField("detailsConfirmation", "")
	s.current = s.SectionCount()

	err := s.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, sink.calls)
}

func TestSubmit_RechecksAvailability(t *testing.T) {
	sink := &stubSubmitter{}
	checker := &stubChecker{allowed: false, message: "already verified"}
	s := New(Config{
		Master:       testMaster(),
		Notifier:     &recordingNotifier{},
		Submitter:    sink,
		Availability: checker,
		Now:          func() time.Time { return testNow },
	})
	fillAllSections(s)
	s.current = s.SectionCount()

	err := s.Submit(context.Background())
	var blocked *ErrEmployeeIDBlocked
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "already verified", blocked.Message)
	assert.Equal(t, 0, sink.calls)
	assert.False(t, s.Submitted())
}

func TestSubmit_SinkFailureKeepsSessionOpen(t *testing.T) {
	sink := &stubSubmitter{err: errors.New("service unavailable")}
	notifier := &recordingNotifier{}
	s := New(Config{
		Master:    testMaster(),
		Notifier:  notifier,
		Submitter: sink,
		Now:       func() time.Time { return testNow },
	})
	fillAllSections(s)
	s.current = s.SectionCount()

	assert.Error(t, s.Submit(context.Background()))
	assert.False(t, s.Submitted())
	assert.Contains(t, notifier.last(), "Failed to submit application")
}
