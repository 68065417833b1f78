package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshotFiles(t *testing.T, dir string) {
	t.Helper()
	for _, name := range TableNames {
		path := filepath.Join(dir, name+".csv")
		require.NoError(t, os.WriteFile(path, []byte("id\n1\n"), 0o644))
	}
}

func TestLoadTables(t *testing.T) {
	t.Run("loads all seven tables in canonical order", func(t *testing.T) {
		dir := t.TempDir()
		writeSnapshotFiles(t, dir)

		ts, err := LoadTables(dir)
		require.NoError(t, err)
		require.Len(t, ts.Tables, len(TableNames))
		for i, name := range TableNames {
			assert.Equal(t, name, ts.Tables[i].Name)
			assert.NotNil(t, ts.Get(name))
		}
	})

	t.Run("missing file is a fatal error", func(t *testing.T) {
		dir := t.TempDir()
		writeSnapshotFiles(t, dir)
		require.NoError(t, os.Remove(filepath.Join(dir, "paid_transactions.csv")))

		_, err := LoadTables(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required table file")
		assert.Contains(t, err.Error(), "paid_transactions.csv")
	})

	t.Run("unknown table name is absent", func(t *testing.T) {
		dir := t.TempDir()
		writeSnapshotFiles(t, dir)
		ts, err := LoadTables(dir)
		require.NoError(t, err)
		assert.Nil(t, ts.Get("nonexistent"))
	})
}
