package taskspgxstore

import (
	"fmt"
	"time"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
)

// dbTask is a row of the tasks table.
type dbTask struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	DueDate     time.Time `db:"due_date"`
	CreateDate  time.Time `db:"create_date"`
	Status      string    `db:"status"`
	Priority    string    `db:"priority"`
	Category    string    `db:"category"`
}

const taskColumns = `id, title, description, due_date, create_date, status, priority, category`

func toCoreTask(row dbTask) (tasksrepo.Task, error) {
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

func toCoreTasks(rows []dbTask) ([]tasksrepo.Task, error) {
	tasks := make([]tasksrepo.Task, len(rows))
	for i, row := range rows {
		task, err := toCoreTask(row)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}
