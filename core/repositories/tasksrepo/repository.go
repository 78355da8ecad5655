// Package tasksrepo is the task resource service: validation, defaults and
// the persistence contract for tasks.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrazmi/taskapi/core/repositories"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/sdk/logger"
)

// Storer is the persistence collaborator for tasks. Create receives a
// complete task without an id and returns it with the store assigned id.
// Get, Update and Delete return ErrTaskNotFound for unknown ids. Stores
// persist an empty Description as absent.
type Storer interface {
	repositories.Store[Task, int, Task, UpdateTask, QueryFilter]
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	now    func() time.Time
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock replaces the clock used to stamp create_date.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// NewRepository creates a new Task repository.
func NewRepository(log *logger.Logger, storer Storer, opts ...Option) *Repository {
	r := &Repository{
		log:    log,
		storer: storer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create validates and stores a new task. Status always starts as not done
// and create date is the current time, whatever the caller sent.
func (r *Repository) Create(ctx context.Context, ct CreateTask) (Task, error) {
	if err := ct.validate(); err != nil {
		return Task{}, err
	}

	task := Task{
		Title:       ct.Title,
		Description: normalizeDescription(ct.Description),
		DueDate:     normalizeTime(ct.DueDate),
		CreateDate:  normalizeTime(r.now()),
		Status:      StatusNotDone,
		Priority:    ct.Priority,
		Category:    ct.Category,
	}

	created, err := r.storer.Create(ctx, task)
	if err != nil {
		return Task{}, storeErr("create", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", created.ID)
	return created, nil
}

// Get returns the task with the given id.
func (r *Repository) Get(ctx context.Context, id int) (Task, error) {
	task, err := r.storer.Get(ctx, id)
	if err != nil {
		return Task{}, storeErr("get", err)
	}
	return task, nil
}

// List returns one page of tasks matching filter. A page past the end is
// clamped to the last page.
func (r *Repository) List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.PageNumber) ([]Task, fop.PageInfoNumber, error) {
	if !IsOrderable(orderBy.Field) {
		return nil, fop.PageInfoNumber{}, &ValidationError{Fields: []FieldError{{Field: "sort", Err: fmt.Sprintf("cannot sort by %q", orderBy.Field)}}}
	}

	total, err := r.storer.Count(ctx, filter)
	if err != nil {
		return nil, fop.PageInfoNumber{}, storeErr("count", err)
	}

	page = page.Clamp(total)

	tasks, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fop.PageInfoNumber{}, storeErr("list", err)
	}

	return tasks, fop.NewPageInfoNumber(page, total, len(tasks)), nil
}

// Update applies the fields present in ut to the task with the given id.
func (r *Repository) Update(ctx context.Context, id int, ut UpdateTask) error {
	if err := ut.validate(); err != nil {
		return err
	}

	if ut.DueDate != nil {
		d := normalizeTime(*ut.DueDate)
		ut.DueDate = &d
	}

	if err := r.storer.Update(ctx, id, ut); err != nil {
		return storeErr("update", err)
	}

	r.log.InfoContext(ctx, "task updated", "task_id", id)
	return nil
}

// Delete permanently removes the task with the given id.
func (r *Repository) Delete(ctx context.Context, id int) error {
	if err := r.storer.Delete(ctx, id); err != nil {
		return storeErr("delete", err)
	}

	r.log.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}

// storeErr keeps not-found errors recognisable and marks every other store
// failure as a persistence error.
func storeErr(op string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrTaskNotFound)
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// normalizeTime puts times in UTC at the microsecond precision every store
// can hold.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func normalizeDescription(d *string) *string {
	if d == nil || *d == "" {
		return nil
	}
	return d
}
