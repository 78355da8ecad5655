package postgresdb

import (
	"testing"
	"testing/fstest"

	"github.com/jrazmi/taskapi/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"m/010_later.sql":   {Data: []byte("SELECT 1;")},
		"m/001_first.sql":   {Data: []byte("SELECT 1;")},
		"m/002_second.sql":  {Data: []byte("SELECT 1;")},
		"m/README.md":       {Data: []byte("notes")},
		"other/999_zzz.sql": {Data: []byte("SELECT 1;")},
	}

	files, err := migrationFiles(fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.sql", "002_second.sql", "010_later.sql"}, files)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := migrationFiles(schema.MigrationsFS, schema.MigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_create_tasks.sql", files[0])
}

func TestChecksum(t *testing.T) {
	a := checksum([]byte("CREATE TABLE a ();"))
	b := checksum([]byte("CREATE TABLE b ();"))

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, checksum([]byte("CREATE TABLE a ();")))
}

func TestPrettyPrintSQL(t *testing.T) {
	in := "\n\tSELECT id\n\tFROM tasks\n\tWHERE id IN ( 1, 2 )\n"
	assert.Equal(t, "SELECT id FROM tasks WHERE id IN(1, 2)", prettyPrintSQL(in))
}
