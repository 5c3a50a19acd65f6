package model

import "fmt"

// Snapshot is the persisted form of a Todo.
type Snapshot struct {
	Title   string `json:"title"`
	Status  Status `json:"status"`
	Deleted bool   `json:"deleted"`
}

func (t *Todo) Snapshot() Snapshot {
	return Snapshot{Title: t.title, Status: t.status, Deleted: t.deleted}
}

// Restore rebuilds a Todo from a snapshot. It bypasses the transition
// rules, so any valid status/deleted combination is accepted.
func Restore(s Snapshot) (*Todo, error) {
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("restore todo: invalid status %v", s.Status)
	}
	return &Todo{title: s.Title, status: s.Status, deleted: s.Deleted}, nil
}
