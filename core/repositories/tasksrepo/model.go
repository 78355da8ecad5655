package tasksrepo

import (
	"time"
)

// MaxTitleLength is the longest title, in characters, a task may carry.
const MaxTitleLength = 255

// Task is a single to-do item.
type Task struct {
	ID          int
	Title       string
	Description *string
	DueDate     time.Time
	CreateDate  time.Time
	Status      Status
	Priority    Priority
	Category    string
}

// CreateTask contains the client supplied fields for a new task. Status and
// create date are always assigned by the repository.
type CreateTask struct {
	Title       string
	Description *string
	DueDate     time.Time
	Priority    Priority
	Category    string
}

// UpdateTask is the set of writable fields for a partial update. A nil field
// is left unchanged. An empty Description clears it.
type UpdateTask struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *Priority
	Category    *string
	Status      *Status
}

// IsEmpty reports whether the update changes nothing.
func (u UpdateTask) IsEmpty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.DueDate == nil &&
		u.Priority == nil &&
		u.Category == nil &&
		u.Status == nil
}
