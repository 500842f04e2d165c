package publish

import "fmt"

// StageError wraps the error that moved a run to StageFailed.
// Message, when set, replaces the wrapped error's text for the operator.
type StageError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErrorf(stage Stage, err error, format string, args ...any) *StageError {
	return &StageError{Stage: stage, Message: fmt.Sprintf(format, args...), Err: err}
}
