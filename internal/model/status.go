package model

import "fmt"

// Status is the lifecycle state of a Todo.
type Status int

const (
	StatusPending Status = iota
	StatusSkipped
	StatusCompleted
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSkipped, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus is the inverse of String.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "pending":
		return StatusPending, nil
	case "skipped":
		return StatusSkipped, nil
	case "completed":
		return StatusCompleted, nil
	}
	return 0, fmt.Errorf("unknown status %q", name)
}

// MarshalText encodes the status by name so persisted files stay readable.
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
