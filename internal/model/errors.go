package model

import "errors"

// ErrInvalidTransition matches every *TransitionError via errors.Is.
var ErrInvalidTransition = errors.New("invalid transition")

// TransitionError reports a skip or complete that the todo's current
// state does not allow. Message names the rule that was violated; Error
// always returns the same generic label.
type TransitionError struct {
	Message string
}

func newTransitionError(msg string) *TransitionError {
	return &TransitionError{Message: msg}
}

func (e *TransitionError) Error() string {
	return "Invalid action for Todo"
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// TransitionMessage returns the rule message carried by err, or "" when err
// is not a transition error.
func TransitionMessage(err error) string {
	var terr *TransitionError
	if errors.As(err, &terr) {
		return terr.Message
	}
	return ""
}
