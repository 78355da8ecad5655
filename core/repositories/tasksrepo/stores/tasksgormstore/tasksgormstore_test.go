package tasksgormstore_test

import (
	"context"
	"testing"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/stores/tasksgormstore"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo/tasksrepotest"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/infrastructure/sqlitedb"
	"github.com/jrazmi/taskapi/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates a migrated store over an in-memory SQLite database.
func setupStore(t *testing.T) *tasksgormstore.Store {
	t.Helper()

	db, err := sqlitedb.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlitedb.Close(db) })

	store := tasksgormstore.NewStore(logger.NewDiscard(), db)
	require.NoError(t, store.Migrate(context.Background()))

	return store
}

func TestStore_Contract(t *testing.T) {
	tasksrepotest.Run(t, func(t *testing.T) tasksrepo.Storer {
		return setupStore(t)
	})
}

func TestStore_MigrateIsIdempotent(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestStore_CheckConstraints(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	task := tasksrepotest.Task("No category")
	task.Category = ""

	_, err := store.Create(ctx, task)
	assert.Error(t, err)

	n, err := store.Count(ctx, tasksrepo.QueryFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_RejectsUnknownOrder(t *testing.T) {
	store := setupStore(t)

	_, err := store.List(context.Background(), tasksrepo.QueryFilter{}, fop.NewBy("title; DROP TABLE tasks", fop.ASC), fop.NewPageNumber(1, fop.DefaultPageSize))
	assert.Error(t, err)
}
