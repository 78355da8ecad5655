package tasksrepobridge

import (
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/sdk/validation"
)

// MarshalToBridge converts a core task to its wire form.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     validation.FormatTime(task.DueDate),
		CreateDate:  validation.FormatTime(task.CreateDate),
		Status:      task.Status.String(),
		Priority:    task.Priority.String(),
		Category:    task.Category,
	}
}

// MarshalListToBridge converts a list of core models to bridge models
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input NewTaskInput) (tasksrepo.CreateTask, error) {
	ve := &tasksrepo.ValidationError{}

	dueDate, err := validation.ParseFlexibleDate(input.DueDate)
	if err != nil {
		ve.Fields = append(ve.Fields, tasksrepo.FieldError{Field: "due_date", Err: "must be a valid date"})
	}

	priority, err := tasksrepo.ParsePriority(input.Priority)
	if err != nil {
		ve.Fields = append(ve.Fields, tasksrepo.FieldError{Field: "priority", Err: err.Error()})
	}

	if len(ve.Fields) > 0 {
		return tasksrepo.CreateTask{}, ve
	}

	return tasksrepo.CreateTask{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		Priority:    priority,
		Category:    input.Category,
	}, nil
}

// MarshalUpdateToRepository converts bridge update input to repository input.
func MarshalUpdateToRepository(input UpdateTaskInput) (tasksrepo.UpdateTask, error) {
	ve := &tasksrepo.ValidationError{}

	ut := tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	}

	if input.DueDate != nil {
		dueDate, err := validation.ParseFlexibleDate(*input.DueDate)
		if err != nil {
			ve.Fields = append(ve.Fields, tasksrepo.FieldError{Field: "due_date", Err: "must be a valid date"})
		} else {
			ut.DueDate = &dueDate
		}
	}

	if input.Priority != nil {
		priority, err := tasksrepo.ParsePriority(*input.Priority)
		if err != nil {
			ve.Fields = append(ve.Fields, tasksrepo.FieldError{Field: "priority", Err: err.Error()})
		} else {
			ut.Priority = &priority
		}
	}

	if input.Status != nil {
		status, err := tasksrepo.ParseStatus(*input.Status)
		if err != nil {
			ve.Fields = append(ve.Fields, tasksrepo.FieldError{Field: "status", Err: err.Error()})
		} else {
			ut.Status = &status
		}
	}

	if len(ve.Fields) > 0 {
		return tasksrepo.UpdateTask{}, ve
	}

	return ut, nil
}
