package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/jrazmi/taskapi/app/tooling/commands"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksgormstore"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/infrastructure/sqlitedb"
	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	log := logger.NewDiscard()
	repo := tasksrepo.NewRepository(log, tasksmemstore.NewStore())
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ids, err := commands.Seed(ctx, log, repo, 15, now)
	require.NoError(t, err)
	assert.Len(t, ids, 15)

	tasks, info, err := repo.List(ctx, tasksrepo.QueryFilter{}, tasksrepo.DefaultOrderBy, fop.NewPageNumber(2, fop.DefaultPageSize))
	require.NoError(t, err)
	assert.Equal(t, 15, info.Total)
	require.Len(t, tasks, 5)
	assert.Equal(t, "Buy milk (2)", tasks[2].Title)

	first, err := repo.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, tasksrepo.StatusNotDone, first.Status)
	assert.Equal(t, now.Add(24*time.Hour), first.DueDate)
	require.NotNil(t, first.Description)

	second, err := repo.Get(ctx, ids[1])
	require.NoError(t, err)
	assert.Nil(t, second.Description)
}

func TestMigrateSQLite(t *testing.T) {
	ctx := context.Background()
	log := logger.NewDiscard()

	db, err := sqlitedb.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlitedb.Close(db) })

	store := tasksgormstore.NewStore(log, db)
	require.NoError(t, commands.MigrateSQLite(ctx, log, store))
	require.NoError(t, commands.MigrateSQLite(ctx, log, store))

	ids, err := commands.Seed(ctx, log, tasksrepo.NewRepository(log, store), 3, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
}
