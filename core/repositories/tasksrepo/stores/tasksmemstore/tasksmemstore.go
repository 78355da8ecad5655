// Package tasksmemstore is an in-memory task store for tests and local runs.
package tasksmemstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
)

// Store keeps tasks in a map guarded by a mutex. Ids increase monotonically
// and are never reused.
type Store struct {
	mu     sync.RWMutex
	tasks  map[int]tasksrepo.Task
	lastID int
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		tasks: make(map[int]tasksrepo.Task),
	}
}

// Create assigns the next id and stores the task.
func (s *Store) Create(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	if err := ctx.Err(); err != nil {
		return tasksrepo.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	task.ID = s.lastID
	task.Description = clone(task.Description)
	s.tasks[task.ID] = task

	return copyTask(task), nil
}

// Get returns the task with id.
func (s *Store) Get(ctx context.Context, id int) (tasksrepo.Task, error) {
	if err := ctx.Err(); err != nil {
		return tasksrepo.Task{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return tasksrepo.Task{}, tasksrepo.ErrTaskNotFound
	}
	return copyTask(task), nil
}

// List returns one page of the filtered, ordered tasks.
func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, orderBy fop.By, page fop.PageNumber) ([]tasksrepo.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	matched := s.filter(filter)
	s.mu.RUnlock()

	compare := comparator(orderBy.Field)
	slices.SortFunc(matched, func(a, b tasksrepo.Task) int {
		c := compare(a, b)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if orderBy.Direction == fop.DESC {
			return -c
		}
		return c
	})

	start := min(page.Offset(), len(matched))
	end := min(start+page.Size, len(matched))

	return matched[start:end], nil
}

// Count returns the number of tasks matching filter.
func (s *Store) Count(ctx context.Context, filter tasksrepo.QueryFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.filter(filter)), nil
}

// Update applies the present fields of ut.
func (s *Store) Update(ctx context.Context, id int, ut tasksrepo.UpdateTask) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return tasksrepo.ErrTaskNotFound
	}

	if ut.Title != nil {
		task.Title = *ut.Title
	}
	if ut.Description != nil {
		task.Description = nil
		if *ut.Description != "" {
			task.Description = clone(ut.Description)
		}
	}
	if ut.DueDate != nil {
		task.DueDate = *ut.DueDate
	}
	if ut.Priority != nil {
		task.Priority = *ut.Priority
	}
	if ut.Category != nil {
		task.Category = *ut.Category
	}
	if ut.Status != nil {
		task.Status = *ut.Status
	}

	s.tasks[id] = task
	return nil
}

// Delete removes the task with id.
func (s *Store) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return tasksrepo.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// filter must be called with the lock held.
func (s *Store) filter(filter tasksrepo.QueryFilter) []tasksrepo.Task {
	out := make([]tasksrepo.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Search != nil && !strings.Contains(task.Title, *filter.Search) {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.Category != nil && task.Category != *filter.Category {
			continue
		}
		out = append(out, copyTask(task))
	}
	return out
}

func comparator(field string) func(a, b tasksrepo.Task) int {
	switch field {
	case tasksrepo.OrderByTitle:
		return func(a, b tasksrepo.Task) int { return strings.Compare(a.Title, b.Title) }
	case tasksrepo.OrderByDueDate:
		return func(a, b tasksrepo.Task) int { return a.DueDate.Compare(b.DueDate) }
	case tasksrepo.OrderByCreateDate:
		return func(a, b tasksrepo.Task) int { return a.CreateDate.Compare(b.CreateDate) }
	case tasksrepo.OrderByPriority:
		return func(a, b tasksrepo.Task) int { return cmp.Compare(a.Priority.Rank(), b.Priority.Rank()) }
	case tasksrepo.OrderByStatus:
		return func(a, b tasksrepo.Task) int { return cmp.Compare(a.Status.Rank(), b.Status.Rank()) }
	case tasksrepo.OrderByCategory:
		return func(a, b tasksrepo.Task) int { return strings.Compare(a.Category, b.Category) }
	default:
		return func(a, b tasksrepo.Task) int { return cmp.Compare(a.ID, b.ID) }
	}
}

func copyTask(t tasksrepo.Task) tasksrepo.Task {
	t.Description = clone(t.Description)
	return t
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
