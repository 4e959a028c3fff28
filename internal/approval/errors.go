package approval

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleRequired indicates the entry draft has no title.
	ErrTitleRequired = errors.New("entry title is required")

	// ErrEndBeforeStart indicates the entry's end precedes its start.
	ErrEndBeforeStart = errors.New("entry end time is before its start time")

	// ErrDurationTooShort indicates the entry spans less than one minute.
	ErrDurationTooShort = errors.New("entry duration is under one minute")

	// ErrProofRequired indicates an approval-gated submission carries
	// no proof artifact.
	ErrProofRequired = errors.New("at least one proof artifact is required")
)

// Step identifies which I/O step of the submission workflow failed.
type Step string

const (
	StepDiscard       Step = "discard"
	StepCreateRequest Step = "createRequest"
	StepCreateSession Step = "createSession"
)

// StepError wraps a collaborator failure with the workflow step it
// occurred in, so callers can report exactly where the submission broke.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("approval workflow step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
