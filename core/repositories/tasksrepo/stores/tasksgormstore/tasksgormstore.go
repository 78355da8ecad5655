// Package tasksgormstore persists tasks in an embedded SQLite database
// through gorm.
package tasksgormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/sdk/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store provides access to task storage.
type Store struct {
	log *logger.Logger
	db  *gorm.DB
}

// NewStore creates a new task store.
func NewStore(log *logger.Logger, db *gorm.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// Migrate creates or updates the tasks table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&taskRow{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Create saves a new task and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, task tasksrepo.Task) (tasksrepo.Task, error) {
	row := toTaskRow(task)
	row.ID = 0

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return tasksrepo.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return toCoreTask(row)
}

// Get retrieves a task by its id.
func (s *Store) Get(ctx context.Context, id int) (tasksrepo.Task, error) {
	var row taskRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tasksrepo.Task{}, tasksrepo.ErrTaskNotFound
		}
		return tasksrepo.Task{}, fmt.Errorf("failed to find task: %w", err)
	}

	return toCoreTask(row)
}

// List returns one page of tasks matching filter.
func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, orderBy fop.By, page fop.PageNumber) ([]tasksrepo.Task, error) {
	if !tasksrepo.IsOrderable(orderBy.Field) {
		return nil, fmt.Errorf("cannot order by %q", orderBy.Field)
	}
	desc := orderBy.Direction == fop.DESC

	q := applyFilter(s.db.WithContext(ctx).Model(&taskRow{}), filter)
	if values, ok := tasksrepo.RankedValues(orderBy.Field); ok {
		q = q.Order(rankOrder(orderBy.Field, values, desc))
	} else {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy.Field}, Desc: desc})
	}
	if orderBy.Field != tasksrepo.OrderByID {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: tasksrepo.OrderByID}, Desc: desc})
	}

	var rows []taskRow
	if err := q.Limit(page.Size).Offset(page.Offset()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

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

// rankOrder orders an enum column by the position of its value in values.
// column must already be allowlisted by tasksrepo.IsOrderable.
func rankOrder(column string, values []string, desc bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE %s", column)
	for i, v := range values {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", strings.ReplaceAll(v, "'", "''"), i+1)
	}
	b.WriteString(" ELSE 0 END")
	if desc {
		b.WriteString(" DESC")
	}
	return b.String()
}

// Count returns the number of tasks matching filter.
func (s *Store) Count(ctx context.Context, filter tasksrepo.QueryFilter) (int, error) {
	var n int64
	if err := applyFilter(s.db.WithContext(ctx).Model(&taskRow{}), filter).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return int(n), nil
}

// Update writes the present fields of ut.
func (s *Store) Update(ctx context.Context, id int, ut tasksrepo.UpdateTask) error {
	cols := updateColumns(ut)
	if len(cols) == 0 {
		_, err := s.Get(ctx, id)
		return err
	}

	result := s.db.WithContext(ctx).Model(&taskRow{}).Where("id = ?", id).Updates(cols)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task by id.
func (s *Store) Delete(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&taskRow{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return tasksrepo.ErrTaskNotFound
	}

	return nil
}

// applyFilter narrows q to the tasks matching filter. Search uses instr so
// the match is literal and case sensitive.
func applyFilter(q *gorm.DB, filter tasksrepo.QueryFilter) *gorm.DB {
	if filter.Search != nil {
		q = q.Where("instr(title, ?) > 0", *filter.Search)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	return q
}
