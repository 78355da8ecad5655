package tasksgormstore

import (
	"fmt"
	"time"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
)

// taskRow is the gorm model of the tasks table.
type taskRow struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	DueDate     time.Time `gorm:"not null;index"`
	CreateDate  time.Time `gorm:"not null"`
	Status      string    `gorm:"not null;index;check:chk_tasks_status,status IN ('not done','done')"`
	Priority    string    `gorm:"not null;index;check:chk_tasks_priority,priority IN ('low','medium','high')"`
	Category    string    `gorm:"not null;index;check:chk_tasks_category,category <> ''"`
}

// TableName returns the table name for the task model.
func (taskRow) TableName() string {
	return "tasks"
}

func toTaskRow(task tasksrepo.Task) taskRow {
	return taskRow{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		CreateDate:  task.CreateDate,
		Status:      task.Status.String(),
		Priority:    task.Priority.String(),
		Category:    task.Category,
	}
}

func toCoreTask(row taskRow) (tasksrepo.Task, error) {
	status, err := tasksrepo.ParseStatus(row.Status)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("task %d: %w", row.ID, err)
	}

	priority, err := tasksrepo.ParsePriority(row.Priority)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("task %d: %w", row.ID, err)
	}

	return tasksrepo.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		DueDate:     row.DueDate.UTC(),
		CreateDate:  row.CreateDate.UTC(),
		Status:      status,
		Priority:    priority,
		Category:    row.Category,
	}, nil
}

// updateColumns maps the present fields of ut to column values. An empty
// description becomes NULL.
func updateColumns(ut tasksrepo.UpdateTask) map[string]any {
	cols := make(map[string]any)

	if ut.Title != nil {
		cols["title"] = *ut.Title
	}
	if ut.Description != nil {
		if *ut.Description == "" {
			cols["description"] = nil
		} else {
			cols["description"] = *ut.Description
		}
	}
	if ut.DueDate != nil {
		cols["due_date"] = *ut.DueDate
	}
	if ut.Priority != nil {
		cols["priority"] = ut.Priority.String()
	}
	if ut.Category != nil {
		cols["category"] = *ut.Category
	}
	if ut.Status != nil {
		cols["status"] = ut.Status.String()
	}

	return cols
}
