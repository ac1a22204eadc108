package session

import (
	"context"
	"fmt"
)

// Next attempts to advance from the current section to the next one.
// Leaving the section that owns the employee ID first runs the
// availability check (fail-closed on errors); then the current section
// must validate. Returns nil and advances the pointer on success.
func (s *Session) Next(ctx context.Context) error {
	spec := s.manifest.Section(s.current)
	if spec == nil {
		return &ErrSectionInvalid{Section: s.current}
	}

	if spec.OwnsEmployeeID {
		if err := s.checkEmployeeIDAvailability(ctx, true); err != nil {
			return err
		}
	}

	result := s.ValidateSection(s.current, false)
	if !result.Valid {
		message := "Please fill all required fields in this section."
		if label := result.FirstInvalid(); label != "" {
			message = fmt.Sprintf("Please fill all required fields in this section. Check: %s", label)
		}
		s.notifier.Notify(LevelError, message)
		return &ErrSectionInvalid{Section: s.current}
	}

	if s.current < s.manifest.SectionCount() {
		s.current++
	}
	return nil
}

// Prev moves backward one section. Backward navigation is always
// allowed and never validates: reviewing earlier answers carries no
// penalty.
func (s *Session) Prev() {
	if s.current > 1 {
		s.current--
	}
}

// JumpTo moves directly to an earlier section via a progress-step
// click. Only targets strictly before the current pointer are allowed,
// and every intervening section from 1 to target-1 must pass silent
// validation; otherwise the jump is blocked with a warning naming the
// first incomplete section.
func (s *Session) JumpTo(target int) error {
	if target < 1 || target > s.manifest.SectionCount() {
		return &ErrSectionInvalid{Section: target}
	}
	if target >= s.current {
		return &ErrSectionInvalid{Section: target}
	}
	for i := 1; i < target; i++ {
		if !s.ValidateSection(i, true).Valid {
			s.notifier.Notify(LevelWarning, fmt.Sprintf("Please complete section %d first", i))
			return &ErrSectionInvalid{Section: i}
		}
	}
	s.current = target
	return nil
}

// Progress returns the progress indicator value: current/N * 100.
func (s *Session) Progress() float64 {
	return float64(s.current) / float64(s.manifest.SectionCount()) * 100
}

// SectionCompleted reports whether a step indicator should show as
// completed: every section before the current pointer is.
func (s *Session) SectionCompleted(n int) bool {
	return n >= 1 && n < s.current
}

// checkEmployeeIDAvailability runs the uniqueness pre-check. An empty
// employee ID passes (the required sweep owns that failure); checker
// errors deny navigation with a retry message (fail-closed).
func (s *Session) checkEmployeeIDAvailability(ctx context.Context, notify bool) error {
	if s.checker == nil {
		return nil
	}
	employeeID := s.fields["employeeId"]
	if employeeID == "" {
		return nil
	}

	allowed, message, err := s.checker.Check(ctx, employeeID)
	if err != nil {
		retry := "Unable to validate Employee ID right now. Please try again."
		if notify {
			s.notifier.Notify(LevelError, retry)
		}
		return &ErrEmployeeIDBlocked{Message: retry}
	}
	if !allowed {
		if message == "" {
			message = "This employee ID has already verified and cannot apply again."
		}
		s.fieldErrors["employeeId"] = message
		if notify {
			s.notifier.Notify(LevelError, message)
		}
		return &ErrEmployeeIDBlocked{Message: message}
	}

	delete(s.fieldErrors, "employeeId")
	return nil
}

// Submit validates the final section, requires the declaration,
// re-checks employee-ID availability and hands the snapshot to the
// submission sink. On success the session reaches its terminal state.
func (s *Session) Submit(ctx context.Context) error {
	final := s.manifest.SectionCount()
	if !s.ValidateSection(final, false).Valid {
		s.notifier.Notify(LevelError, "Please fill all required fields in this section")
		return &ErrSectionInvalid{Section: final}
	}

	if !s.declarationConfirmed() {
		s.notifier.Notify(LevelError, "Please confirm the declaration before submitting")
		return &ErrNotConfirmed{}
	}

	if err := s.checkEmployeeIDAvailability(ctx, true); err != nil {
		return err
	}

	if s.sink == nil {
		return fmt.Errorf("no submission sink configured")
	}

	s.notifier.Notify(LevelInfo, "Submitting your application...")
	if err := s.sink.Submit(ctx, s.Snapshot(), s.TotalFileCount()); err != nil {
		s.notifier.Notify(LevelError, fmt.Sprintf("Failed to submit application. %v", err))
		return err
	}

	s.submitted = true
	s.notifier.Notify(LevelSuccess, "Application submitted successfully!")
	return nil
}
