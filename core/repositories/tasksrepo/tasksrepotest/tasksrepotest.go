// Package tasksrepotest holds the behaviour every tasksrepo.Storer must
// show, run against each store implementation.
package tasksrepotest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewStoreFunc returns an empty store for one subtest.
type NewStoreFunc func(t *testing.T) tasksrepo.Storer

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// Task returns a valid, unsaved task.
func Task(title string) tasksrepo.Task {
	return tasksrepo.Task{
		Title:      title,
		DueDate:    base.Add(48 * time.Hour),
		CreateDate: base,
		Status:     tasksrepo.StatusNotDone,
		Priority:   tasksrepo.PriorityMedium,
		Category:   "Home",
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Run exercises the Storer contract.
func Run(t *testing.T, newStore NewStoreFunc) {
	t.Run("create and get", func(t *testing.T) { createAndGet(t, newStore(t)) })
	t.Run("ids never reused", func(t *testing.T) { idsNeverReused(t, newStore(t)) })
	t.Run("not found", func(t *testing.T) { notFound(t, newStore(t)) })
	t.Run("update", func(t *testing.T) { update(t, newStore(t)) })
	t.Run("empty update", func(t *testing.T) { emptyUpdate(t, newStore(t)) })
	t.Run("list order and page", func(t *testing.T) { listOrderAndPage(t, newStore(t)) })
	t.Run("enums sort by rank", func(t *testing.T) { enumsSortByRank(t, newStore(t)) })
	t.Run("filter", func(t *testing.T) { filter(t, newStore(t)) })
	t.Run("search is literal", func(t *testing.T) { searchIsLiteral(t, newStore(t)) })
}

func createAndGet(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	in := Task("Buy milk")
	in.Description = Ptr("2 litres")

	created, err := store.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "2 litres", *got.Description)
	assert.True(t, in.DueDate.Equal(got.DueDate))
	assert.True(t, in.CreateDate.Equal(got.CreateDate))
	assert.Equal(t, tasksrepo.StatusNotDone, got.Status)
	assert.Equal(t, tasksrepo.PriorityMedium, got.Priority)
	assert.Equal(t, "Home", got.Category)

	noDesc, err := store.Create(ctx, Task("No description"))
	require.NoError(t, err)

	got, err = store.Get(ctx, noDesc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func idsNeverReused(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	first, err := store.Create(ctx, Task("one"))
	require.NoError(t, err)
	second, err := store.Create(ctx, Task("two"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	require.NoError(t, store.Delete(ctx, second.ID))

	third, err := store.Create(ctx, Task("three"))
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func notFound(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	_, err := store.Get(ctx, 999)
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))

	err = store.Update(ctx, 999, tasksrepo.UpdateTask{Title: Ptr("x")})
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))

	err = store.Update(ctx, 999, tasksrepo.UpdateTask{})
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))

	err = store.Delete(ctx, 999)
	assert.True(t, errors.Is(err, tasksrepo.ErrTaskNotFound))
}

func update(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	in := Task("Buy milk")
	in.Description = Ptr("2 litres")
	created, err := store.Create(ctx, in)
	require.NoError(t, err)

	due := base.Add(72 * time.Hour)
	err = store.Update(ctx, created.ID, tasksrepo.UpdateTask{
		Title:       Ptr("Buy oat milk"),
		Description: Ptr(""),
		DueDate:     &due,
		Priority:    Ptr(tasksrepo.PriorityLow),
		Category:    Ptr("Errands"),
		Status:      Ptr(tasksrepo.StatusDone),
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.Nil(t, got.Description)
	assert.True(t, due.Equal(got.DueDate))
	assert.Equal(t, tasksrepo.PriorityLow, got.Priority)
	assert.Equal(t, "Errands", got.Category)
	assert.Equal(t, tasksrepo.StatusDone, got.Status)
	assert.True(t, created.CreateDate.Equal(got.CreateDate))

	err = store.Update(ctx, created.ID, tasksrepo.UpdateTask{Description: Ptr("back again")})
	require.NoError(t, err)

	got, err = store.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "back again", *got.Description)
	assert.Equal(t, "Buy oat milk", got.Title)
}

func emptyUpdate(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	created, err := store.Create(ctx, Task("unchanged"))
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, created.ID, tasksrepo.UpdateTask{}))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", got.Title)
}

func listOrderAndPage(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	var ids []int
	for i := range 12 {
		task := Task(fmt.Sprintf("task %02d", i))
		task.DueDate = base.Add(time.Duration(12-i) * time.Hour)
		created, err := store.Create(ctx, task)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	total, err := store.Count(ctx, tasksrepo.QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 12, total)

	first, err := store.List(ctx, tasksrepo.QueryFilter{}, tasksrepo.DefaultOrderBy, fop.NewPageNumber(1, 10))
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, ids[0], first[0].ID)

	second, err := store.List(ctx, tasksrepo.QueryFilter{}, tasksrepo.DefaultOrderBy, fop.NewPageNumber(2, 10))
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, ids[11], second[1].ID)

	byDue, err := store.List(ctx, tasksrepo.QueryFilter{}, fop.NewBy(tasksrepo.OrderByDueDate, fop.ASC), fop.NewPageNumber(1, 10))
	require.NoError(t, err)
	assert.Equal(t, ids[11], byDue[0].ID)

	byTitleDesc, err := store.List(ctx, tasksrepo.QueryFilter{}, fop.NewBy(tasksrepo.OrderByTitle, fop.DESC), fop.NewPageNumber(1, 10))
	require.NoError(t, err)
	assert.Equal(t, "task 11", byTitleDesc[0].Title)

	// equal keys fall back to id order
	byCategory, err := store.List(ctx, tasksrepo.QueryFilter{}, fop.NewBy(tasksrepo.OrderByCategory, fop.ASC), fop.NewPageNumber(1, 10))
	require.NoError(t, err)
	assert.Equal(t, ids[0], byCategory[0].ID)
	assert.Equal(t, ids[1], byCategory[1].ID)
}

func enumsSortByRank(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	for _, title := range []string{"b", "B", "a"} {
		task := Task(title)
		switch title {
		case "b":
			task.Priority = tasksrepo.PriorityLow
		case "B":
			task.Priority = tasksrepo.PriorityHigh
			task.Status = tasksrepo.StatusDone
		case "a":
			task.Priority = tasksrepo.PriorityMedium
		}
		_, err := store.Create(ctx, task)
		require.NoError(t, err)
	}

	titles := func(by fop.By) []string {
		t.Helper()
		tasks, err := store.List(ctx, tasksrepo.QueryFilter{}, by, fop.NewPageNumber(1, 10))
		require.NoError(t, err)
		out := make([]string, len(tasks))
		for i, task := range tasks {
			out[i] = task.Title
		}
		return out
	}

	assert.Equal(t, []string{"b", "a", "B"}, titles(fop.NewBy(tasksrepo.OrderByPriority, fop.ASC)))
	assert.Equal(t, []string{"B", "a", "b"}, titles(fop.NewBy(tasksrepo.OrderByPriority, fop.DESC)))
	assert.Equal(t, []string{"b", "a", "B"}, titles(fop.NewBy(tasksrepo.OrderByStatus, fop.ASC)))
	assert.Equal(t, []string{"B", "a", "b"}, titles(fop.NewBy(tasksrepo.OrderByTitle, fop.ASC)))
}

func filter(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	seed := []struct {
		title    string
		priority tasksrepo.Priority
		category string
		done     bool
	}{
		{"Buy milk", tasksrepo.PriorityHigh, "Home", false},
		{"Buy bread", tasksrepo.PriorityLow, "Home", true},
		{"File taxes", tasksrepo.PriorityHigh, "Work", false},
		{"buy stamps", tasksrepo.PriorityMedium, "Errands", false},
	}
	for _, s := range seed {
		task := Task(s.title)
		task.Priority = s.priority
		task.Category = s.category
		created, err := store.Create(ctx, task)
		require.NoError(t, err)
		if s.done {
			require.NoError(t, store.Update(ctx, created.ID, tasksrepo.UpdateTask{Status: Ptr(tasksrepo.StatusDone)}))
		}
	}

	tests := []struct {
		name   string
		filter tasksrepo.QueryFilter
		want   []string
	}{
		{"none", tasksrepo.QueryFilter{}, []string{"Buy milk", "Buy bread", "File taxes", "buy stamps"}},
		{"search is case sensitive", tasksrepo.QueryFilter{Search: Ptr("Buy")}, []string{"Buy milk", "Buy bread"}},
		{"status", tasksrepo.QueryFilter{Status: Ptr(tasksrepo.StatusDone)}, []string{"Buy bread"}},
		{"priority", tasksrepo.QueryFilter{Priority: Ptr(tasksrepo.PriorityHigh)}, []string{"Buy milk", "File taxes"}},
		{"category", tasksrepo.QueryFilter{Category: Ptr("Home")}, []string{"Buy milk", "Buy bread"}},
		{"combined", tasksrepo.QueryFilter{Search: Ptr("Buy"), Status: Ptr(tasksrepo.StatusNotDone)}, []string{"Buy milk"}},
		{"no match", tasksrepo.QueryFilter{Search: Ptr("nothing")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := store.List(ctx, tt.filter, tasksrepo.DefaultOrderBy, fop.NewPageNumber(1, 10))
			require.NoError(t, err)

			var titles []string
			for _, task := range tasks {
				titles = append(titles, task.Title)
			}
			assert.Equal(t, tt.want, titles)

			count, err := store.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
		})
	}
}

func searchIsLiteral(t *testing.T, store tasksrepo.Storer) {
	ctx := context.Background()

	for _, title := range []string{"100% done", "1000 done", "snake_case", "snakeXcase"} {
		_, err := store.Create(ctx, Task(title))
		require.NoError(t, err)
	}

	for search, want := range map[string]int{"%": 1, "_": 1, "0% d": 1, "snake": 2} {
		count, err := store.Count(ctx, tasksrepo.QueryFilter{Search: Ptr(search)})
		require.NoError(t, err)
		assert.Equal(t, want, count, search)
	}
}
