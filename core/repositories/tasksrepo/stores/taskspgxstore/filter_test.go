package taskspgxstore

import (
	"bytes"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilter(t *testing.T) {
	search := "50%_off"
	status := tasksrepo.StatusDone
	category := "Home"

	buf := bytes.NewBufferString("SELECT count(1) FROM tasks")
	data := pgx.NamedArgs{}
	applyFilter(tasksrepo.QueryFilter{Search: &search, Status: &status, Category: &category}, data, buf)

	assert.Equal(t, `SELECT count(1) FROM tasks WHERE title LIKE @search ESCAPE '\' AND status = @status AND category = @category`, buf.String())
	assert.Equal(t, pgx.NamedArgs{
		"search":   `%50\%\_off%`,
		"status":   "done",
		"category": "Home",
	}, data)
}

func TestApplyFilter_Empty(t *testing.T) {
	buf := bytes.NewBufferString("SELECT count(1) FROM tasks")
	data := pgx.NamedArgs{}
	applyFilter(tasksrepo.QueryFilter{}, data, buf)

	assert.Equal(t, "SELECT count(1) FROM tasks", buf.String())
	assert.Empty(t, data)
}

func TestApplyUpdate(t *testing.T) {
	title := "Buy oat milk"
	empty := ""
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	priority := tasksrepo.PriorityLow

	buf := bytes.NewBufferString("UPDATE tasks")
	data := pgx.NamedArgs{}
	ok := applyUpdate(tasksrepo.UpdateTask{Title: &title, Description: &empty, DueDate: &due, Priority: &priority}, data, buf)

	assert.True(t, ok)
	assert.Equal(t, "UPDATE tasks SET title = @title, description = NULLIF(@description, ''), due_date = @due_date, priority = @priority", buf.String())
	assert.Equal(t, pgx.NamedArgs{
		"title":       title,
		"description": "",
		"due_date":    due,
		"priority":    "low",
	}, data)

	buf.Reset()
	assert.False(t, applyUpdate(tasksrepo.UpdateTask{}, pgx.NamedArgs{}, buf))
	assert.Zero(t, buf.Len())
}

func TestToCoreTask(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	row := dbTask{
		ID:         7,
		Title:      "Buy milk",
		DueDate:    time.Date(2025, 1, 20, 10, 0, 0, 0, loc),
		CreateDate: time.Date(2025, 1, 10, 4, 0, 0, 0, loc),
		Status:     "not done",
		Priority:   "high",
		Category:   "Home",
	}

	task, err := toCoreTask(row)
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, task.DueDate.Location())
	assert.Equal(t, 15, task.DueDate.Hour())
	assert.Equal(t, tasksrepo.StatusNotDone, task.Status)
	assert.Equal(t, tasksrepo.PriorityHigh, task.Priority)

	row.Priority = "urgent"
	_, err = toCoreTask(row)
	assert.ErrorIs(t, err, tasksrepo.ErrInvalidPriority)
}

func TestApplyOrder(t *testing.T) {
	tests := []struct {
		by   fop.By
		want string
	}{
		{fop.NewBy(tasksrepo.OrderByPriority, fop.ASC), ` ORDER BY CASE "priority" WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 ELSE 0 END ASC, "id" ASC`},
		{fop.NewBy(tasksrepo.OrderByStatus, fop.DESC), ` ORDER BY CASE "status" WHEN 'not done' THEN 1 WHEN 'done' THEN 2 ELSE 0 END DESC, "id" DESC`},
		{fop.NewBy(tasksrepo.OrderByTitle, fop.ASC), ` ORDER BY "title" COLLATE "C" ASC, "id" ASC`},
		{fop.NewBy(tasksrepo.OrderByDueDate, fop.DESC), ` ORDER BY "due_date" DESC, "id" DESC`},
		{fop.NewBy(tasksrepo.OrderByID, fop.ASC), ` ORDER BY "id" ASC`},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, applyOrder(tt.by, &buf), tt.by.Field)
		assert.Equal(t, tt.want, buf.String(), tt.by.Field)
	}
}
