package tasksrepo_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 10, 9, 30, 0, 123456789, time.UTC)

func newRepository(t *testing.T) (*tasksrepo.Repository, *tasksmemstore.Store) {
	t.Helper()

	store := tasksmemstore.NewStore()
	repo := tasksrepo.NewRepository(logger.NewDiscard(), store, tasksrepo.WithClock(func() time.Time { return now }))
	return repo, store
}

func buyMilk() tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Title:    "Buy milk",
		DueDate:  time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC),
		Priority: tasksrepo.PriorityHigh,
		Category: "Home",
	}
}

func fieldNames(err error) []string {
	ve, ok := tasksrepo.IsValidationError(err)
	if !ok {
		return nil
	}
	names := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		names[i] = fe.Field
	}
	return names
}

func TestRepository_BuyMilkScenario(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	created, err := repo.Create(ctx, buyMilk())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, tasksrepo.StatusNotDone, got.Status)

	done := tasksrepo.StatusDone
	require.NoError(t, repo.Update(ctx, 1, tasksrepo.UpdateTask{Status: &done}))

	got, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, tasksrepo.StatusDone, got.Status)
	assert.Equal(t, "Buy milk", got.Title)
}

func TestRepository_CreateAssignsServerFields(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	created, err := repo.Create(ctx, buyMilk())
	require.NoError(t, err)

	assert.Equal(t, tasksrepo.StatusNotDone, created.Status)
	assert.True(t, now.Truncate(time.Microsecond).Equal(created.CreateDate))
	assert.Equal(t, time.UTC, created.CreateDate.Location())
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	desc := "semi-skimmed"
	in := buyMilk()
	in.Description = &desc
	in.DueDate = time.Date(2025, 1, 20, 17, 0, 0, 0, time.FixedZone("EET", 2*60*60))

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.True(t, in.DueDate.Equal(got.DueDate))
	assert.Equal(t, in.Priority, got.Priority)
	assert.Equal(t, in.Category, got.Category)
}

func TestRepository_CreateEmptyDescriptionIsAbsent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	empty := ""
	in := buyMilk()
	in.Description = &empty

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Nil(t, created.Description)
}

func TestRepository_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tasksrepo.CreateTask)
		fields []string
	}{
		{"missing title", func(ct *tasksrepo.CreateTask) { ct.Title = "" }, []string{"title"}},
		{"blank title", func(ct *tasksrepo.CreateTask) { ct.Title = "   " }, []string{"title"}},
		{"long title", func(ct *tasksrepo.CreateTask) { ct.Title = strings.Repeat("é", 256) }, []string{"title"}},
		{"missing due date", func(ct *tasksrepo.CreateTask) { ct.DueDate = time.Time{} }, []string{"due_date"}},
		{"missing priority", func(ct *tasksrepo.CreateTask) { ct.Priority = tasksrepo.Priority{} }, []string{"priority"}},
		{"missing category", func(ct *tasksrepo.CreateTask) { ct.Category = "" }, []string{"category"}},
		{"everything missing", func(ct *tasksrepo.CreateTask) { *ct = tasksrepo.CreateTask{} }, []string{"title", "due_date", "priority", "category"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo, store := newRepository(t)

			in := buyMilk()
			tt.mutate(&in)

			_, err := repo.Create(ctx, in)
			require.Error(t, err)
			assert.Equal(t, tt.fields, fieldNames(err))

			n, err := store.Count(ctx, tasksrepo.QueryFilter{})
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestRepository_TitleAtLimit(t *testing.T) {
	repo, _ := newRepository(t)

	in := buyMilk()
	in.Title = strings.Repeat("é", tasksrepo.MaxTitleLength)

	_, err := repo.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestRepository_UrgentPriorityPersistsNothing(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepository(t)

	priority, err := tasksrepo.ParsePriority("urgent")
	require.ErrorIs(t, err, tasksrepo.ErrInvalidPriority)

	in := buyMilk()
	in.Priority = priority

	_, err = repo.Create(ctx, in)
	assert.Equal(t, []string{"priority"}, fieldNames(err))

	n, err := store.Count(ctx, tasksrepo.QueryFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	desc := "semi-skimmed"
	in := buyMilk()
	in.Description = &desc

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)

	title := "Buy oat milk"
	require.NoError(t, repo.Update(ctx, created.ID, tasksrepo.UpdateTask{Title: &title}))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.CreateDate, got.CreateDate)
	assert.Equal(t, created.DueDate, got.DueDate)
	assert.Equal(t, created.Priority, got.Priority)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.Status, got.Status)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
}

func TestRepository_EmptyUpdate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	created, err := repo.Create(ctx, buyMilk())
	require.NoError(t, err)

	assert.True(t, tasksrepo.UpdateTask{}.IsEmpty())
	require.NoError(t, repo.Update(ctx, created.ID, tasksrepo.UpdateTask{}))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestRepository_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	created, err := repo.Create(ctx, buyMilk())
	require.NoError(t, err)

	blank := ""
	zero := time.Time{}
	err = repo.Update(ctx, created.ID, tasksrepo.UpdateTask{Title: &blank, Category: &blank, DueDate: &zero, Status: &tasksrepo.Status{}})
	assert.Equal(t, []string{"title", "due_date", "category", "status"}, fieldNames(err))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	_, err := repo.Get(ctx, 7)
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))

	done := tasksrepo.StatusDone
	err = repo.Update(ctx, 7, tasksrepo.UpdateTask{Status: &done})
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))

	err = repo.Delete(ctx, 7)
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))
	assert.False(t, errors.Is(err, tasksrepo.ErrPersistence))
}

func TestRepository_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	created, err := repo.Create(ctx, buyMilk())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))
}

func TestRepository_ListSearch(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	for _, title := range []string{"Buy milk", "buy bread", "Buy eggs", "Walk dog"} {
		in := buyMilk()
		in.Title = title
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	search := "Buy"
	tasks, info, err := repo.List(ctx, tasksrepo.QueryFilter{Search: &search}, tasksrepo.DefaultOrderBy, fop.NewPageNumber(1, fop.DefaultPageSize))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Contains(t, task.Title, "Buy")
	}
	assert.Equal(t, 2, info.Total)

	tasks, info, err = repo.List(ctx, tasksrepo.QueryFilter{}, tasksrepo.DefaultOrderBy, fop.NewPageNumber(1, fop.DefaultPageSize))
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
	assert.Equal(t, 4, info.Total)
}

func TestRepository_ListPagination(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepository(t)

	for range 23 {
		_, err := repo.Create(ctx, buyMilk())
		require.NoError(t, err)
	}

	tasks, info, err := repo.List(ctx, tasksrepo.QueryFilter{}, tasksrepo.DefaultOrderBy, fop.NewPageNumber(1, fop.DefaultPageSize))
	require.NoError(t, err)
	assert.Len(t, tasks, 10)
	assert.Equal(t, fop.PageInfoNumber{Total: 23, PerPage: 10, CurrentPage: 1, LastPage: 3, From: 1, To: 10}, info)

	tasks, info, err = repo.List(ctx, tasksrepo.QueryFilter{}, tasksrepo.DefaultOrderBy, fop.NewPageNumber(99, fop.DefaultPageSize))
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	assert.Equal(t, 3, info.CurrentPage)
	assert.Equal(t, 21, tasks[0].ID)
}

func TestRepository_ListRejectsUnknownOrder(t *testing.T) {
	repo, _ := newRepository(t)

	_, _, err := repo.List(context.Background(), tasksrepo.QueryFilter{}, fop.NewBy("password", fop.ASC), fop.NewPageNumber(1, 10))
	assert.Equal(t, []string{"sort"}, fieldNames(err))
}

type failingStore struct {
	*tasksmemstore.Store
}

func (failingStore) Create(context.Context, tasksrepo.Task) (tasksrepo.Task, error) {
	return tasksrepo.Task{}, errors.New("connection refused")
}

func TestRepository_PersistenceError(t *testing.T) {
	repo := tasksrepo.NewRepository(logger.NewDiscard(), failingStore{tasksmemstore.NewStore()})

	_, err := repo.Create(context.Background(), buyMilk())
	require.Error(t, err)
	assert.True(t, errors.Is(err, tasksrepo.ErrPersistence))
	assert.Contains(t, err.Error(), "connection refused")
}
