package tasksrepo_test

import (
	"testing"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, want := range tasksrepo.Statuses() {
		got, err := tasksrepo.ParseStatus(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.False(t, got.IsZero())
	}

	for _, bad := range []string{"", "Done", "not_done", "pending"} {
		_, err := tasksrepo.ParseStatus(bad)
		assert.ErrorIs(t, err, tasksrepo.ErrInvalidStatus, bad)
	}

	assert.Equal(t, "not done", tasksrepo.StatusNotDone.String())
	assert.True(t, tasksrepo.Status{}.IsZero())
}

func TestParsePriority(t *testing.T) {
	for _, want := range tasksrepo.Priorities() {
		got, err := tasksrepo.ParsePriority(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"", "urgent", "HIGH", " low"} {
		_, err := tasksrepo.ParsePriority(bad)
		assert.ErrorIs(t, err, tasksrepo.ErrInvalidPriority, bad)
	}

	assert.True(t, tasksrepo.Priority{}.IsZero())
}

func TestIsOrderable(t *testing.T) {
	for _, field := range []string{"id", "title", "due_date", "create_date", "priority", "status", "category"} {
		assert.True(t, tasksrepo.IsOrderable(field), field)
	}
	for _, field := range []string{"", "description", "password", "title desc"} {
		assert.False(t, tasksrepo.IsOrderable(field), field)
	}
}

func TestRank(t *testing.T) {
	assert.Less(t, tasksrepo.PriorityLow.Rank(), tasksrepo.PriorityMedium.Rank())
	assert.Less(t, tasksrepo.PriorityMedium.Rank(), tasksrepo.PriorityHigh.Rank())
	assert.Less(t, tasksrepo.StatusNotDone.Rank(), tasksrepo.StatusDone.Rank())

	assert.Zero(t, tasksrepo.Priority{}.Rank())
	assert.Zero(t, tasksrepo.Status{}.Rank())
}

func TestRankedValues(t *testing.T) {
	values, ok := tasksrepo.RankedValues(tasksrepo.OrderByPriority)
	require.True(t, ok)
	assert.Equal(t, []string{"low", "medium", "high"}, values)

	values, ok = tasksrepo.RankedValues(tasksrepo.OrderByStatus)
	require.True(t, ok)
	assert.Equal(t, []string{"not done", "done"}, values)

	for _, field := range []string{tasksrepo.OrderByID, tasksrepo.OrderByTitle, tasksrepo.OrderByCategory} {
		_, ok := tasksrepo.RankedValues(field)
		assert.False(t, ok, field)
	}
}
