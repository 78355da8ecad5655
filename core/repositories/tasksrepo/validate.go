package tasksrepo

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	msgRequired = "is required"
	msgTooLong  = "must not be greater than %d characters"
)

func (ct CreateTask) validate() error {
	var ve ValidationError

	checkTitle(&ve, ct.Title)
	if ct.DueDate.IsZero() {
		ve.add("due_date", msgRequired)
	}
	if ct.Priority.IsZero() {
		ve.add("priority", msgRequired)
	}
	checkCategory(&ve, ct.Category)

	return ve.errOrNil()
}

func (ut UpdateTask) validate() error {
	var ve ValidationError

	if ut.Title != nil {
		checkTitle(&ve, *ut.Title)
	}
	if ut.DueDate != nil && ut.DueDate.IsZero() {
		ve.add("due_date", msgRequired)
	}
	if ut.Priority != nil && ut.Priority.IsZero() {
		ve.add("priority", msgRequired)
	}
	if ut.Category != nil {
		checkCategory(&ve, *ut.Category)
	}
	if ut.Status != nil && ut.Status.IsZero() {
		ve.add("status", msgRequired)
	}

	return ve.errOrNil()
}

func checkTitle(ve *ValidationError, title string) {
	switch {
	case strings.TrimSpace(title) == "":
		ve.add("title", msgRequired)
	case utf8.RuneCountInString(title) > MaxTitleLength:
		ve.add("title", fmt.Sprintf(msgTooLong, MaxTitleLength))
	}
}

func checkCategory(ve *ValidationError, category string) {
	if strings.TrimSpace(category) == "" {
		ve.add("category", msgRequired)
	}
}
