package tasksrepo

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidStatus and ErrInvalidPriority are returned when parsing a value
// outside the closed sets.
var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Status is the completion state of a task. The zero value is not a valid
// status; use the package variables or ParseStatus.
type Status struct {
	value string
}

// The set of statuses a task can be in.
var (
	StatusNotDone = Status{"not done"}
	StatusDone    = Status{"done"}
)

var statuses = map[string]Status{
	StatusNotDone.value: StatusNotDone,
	StatusDone.value:    StatusDone,
}

// Statuses returns every valid status in display order.
func Statuses() []Status {
	return []Status{StatusNotDone, StatusDone}
}

// ParseStatus parses the string value into a Status.
func ParseStatus(value string) (Status, error) {
	s, exists := statuses[value]
	if !exists {
		return Status{}, fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return s, nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	return s.value
}

// IsZero reports whether s was never set.
func (s Status) IsZero() bool {
	return s.value == ""
}

// Rank orders statuses as listed by Statuses, starting at 1. The zero value
// ranks 0.
func (s Status) Rank() int {
	return slices.Index(Statuses(), s) + 1
}

// Priority is the importance of a task. The zero value is not a valid
// priority; use the package variables or ParsePriority.
type Priority struct {
	value string
}

// The set of priorities a task can have.
var (
	PriorityLow    = Priority{"low"}
	PriorityMedium = Priority{"medium"}
	PriorityHigh   = Priority{"high"}
)

var priorities = map[string]Priority{
	PriorityLow.value:    PriorityLow,
	PriorityMedium.value: PriorityMedium,
	PriorityHigh.value:   PriorityHigh,
}

// Priorities returns every valid priority from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority parses the string value into a Priority.
func ParsePriority(value string) (Priority, error) {
	p, exists := priorities[value]
	if !exists {
		return Priority{}, fmt.Errorf("%w: %q", ErrInvalidPriority, value)
	}
	return p, nil
}

// String returns the wire form of the priority.
func (p Priority) String() string {
	return p.value
}

// IsZero reports whether p was never set.
func (p Priority) IsZero() bool {
	return p.value == ""
}

// Rank orders priorities from low (1) to high (3). The zero value ranks 0.
func (p Priority) Rank() int {
	return slices.Index(Priorities(), p) + 1
}
