package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_OrdenYFiltro(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_b.sql"), []byte("SELECT 2;"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_a.sql"), []byte("SELECT 1;"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.sql"), 0o700))

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "001_a.sql", files[0].Name)
	assert.Equal(t, "SELECT 1;", files[0].SQL)
	assert.Equal(t, "002_b.sql", files[1].Name)
}

func TestMigrationFiles_DirectorioInexistente(t *testing.T) {
	_, err := migrationFiles(filepath.Join(t.TempDir(), "nada"))
	assert.Error(t, err)
}

func TestMigrationFiles_Repositorio(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "internal", "infrastructure", "postgres", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Contains(t, files[0].SQL, "validation_runs")
}
