// Package model holds the Todo entity and the rules for moving it between
// states.
package model

import "fmt"

const (
	msgSkipDeleted     = "Cannot skip a deleted todo"
	msgSkipCompleted   = "Cannot skip a completed todo"
	msgCompleteDeleted = "Cannot complete a deleted todo"
)

// Todo is a single task. Its title never changes after New, and once
// deleted it stays deleted.
//
// A Todo is not safe for concurrent use; whoever holds it serialises access.
type Todo struct {
	title   string
	status  Status
	deleted bool
}

// New returns a pending, non-deleted todo. The title is stored as given.
func New(title string) *Todo {
	return &Todo{title: title, status: StatusPending}
}

func (t *Todo) Title() string   { return t.title }
func (t *Todo) Status() Status  { return t.status }
func (t *Todo) IsDeleted() bool { return t.deleted }

// Skip marks the todo skipped. Deleted and completed todos can't be skipped.
func (t *Todo) Skip() error {
	if t.deleted {
		return newTransitionError(msgSkipDeleted)
	}
	switch t.status {
	case StatusCompleted:
		return newTransitionError(msgSkipCompleted)
	case StatusPending, StatusSkipped:
		t.status = StatusSkipped
		return nil
	default:
		panic(fmt.Sprintf("model: unhandled status %v", t.status))
	}
}

// Complete marks the todo completed from any status unless it was deleted.
func (t *Todo) Complete() error {
	if t.deleted {
		return newTransitionError(msgCompleteDeleted)
	}
	switch t.status {
	case StatusPending, StatusSkipped, StatusCompleted:
		t.status = StatusCompleted
		return nil
	default:
		panic(fmt.Sprintf("model: unhandled status %v", t.status))
	}
}

// Delete soft-deletes the todo. The status is kept as it was.
func (t *Todo) Delete() {
	t.deleted = true
}
