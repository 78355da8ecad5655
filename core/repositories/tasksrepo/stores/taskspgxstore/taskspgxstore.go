// Package taskspgxstore persists tasks in Postgres through a pgx pool.
package taskspgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/infrastructure/postgresdb"
	"github.com/jrazmi/taskapi/sdk/logger"
)

// Store manages the set of APIs for task database access.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new task and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	const q = `
	INSERT INTO tasks
		(title, description, due_date, create_date, status, priority, category)
	VALUES
		(@title, NULLIF(@description, ''), @due_date, @create_date, @status, @priority, @category)
	RETURNING ` + taskColumns

	var description string
	if task.Description != nil {
		description = *task.Description
	}

	args := pgx.NamedArgs{
		"title":       task.Title,
		"description": description,
		"due_date":    task.DueDate,
		"create_date": task.CreateDate,
		"status":      task.Status.String(),
		"priority":    task.Priority.String(),
		"category":    task.Category,
	}

	rows, err := s.pool.Query(ctx, q, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[dbTask])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return toCoreTask(row)
}

// Get returns the task with id.
func (s *Store) Get(ctx context.Context, id int) (tasksrepo.Task, error) {
	const q = `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = @id`

	rows, err := s.pool.Query(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[dbTask])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrTaskNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return toCoreTask(row)
}

// List returns one page of tasks matching filter.
func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, orderBy fop.By, page fop.PageNumber) ([]tasksrepo.Task, error) {
	data := pgx.NamedArgs{}

	buf := bytes.NewBufferString("SELECT " + taskColumns + " FROM tasks")
	applyFilter(filter, data, buf)

	if err := applyOrder(orderBy, buf); err != nil {
		return nil, fmt.Errorf("order: %w", err)
	}
	postgresdb.AddLimitClause(page.Size, data, buf)
	postgresdb.AddOffsetClause(page.Offset(), data, buf)

	rows, err := s.pool.Query(ctx, buf.String(), data)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	dbTasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[dbTask])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return toCoreTasks(dbTasks)
}

// Count returns the number of tasks matching filter.
func (s *Store) Count(ctx context.Context, filter tasksrepo.QueryFilter) (int, error) {
	data := pgx.NamedArgs{}

	buf := bytes.NewBufferString("SELECT count(1) FROM tasks")
	applyFilter(filter, data, buf)

	var count int
	if err := s.pool.QueryRow(ctx, buf.String(), data).Scan(&count); err != nil {
		return 0, postgresdb.HandlePgError(err)
	}

	return count, nil
}

// Update writes the fields present in ut.
func (s *Store) Update(ctx context.Context, id int, ut tasksrepo.UpdateTask) error {
	data := pgx.NamedArgs{"id": id}

	buf := bytes.NewBufferString("UPDATE tasks")
	if !applyUpdate(ut, data, buf) {
		_, err := s.Get(ctx, id)
		return err
	}
	buf.WriteString(" WHERE id = @id")

	tag, err := s.pool.Exec(ctx, buf.String(), data)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}

// Delete removes the task with id.
func (s *Store) Delete(ctx context.Context, id int) error {
	const q = `
	DELETE FROM tasks
	WHERE id = @id`

	tag, err := s.pool.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}
