package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRepository(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `name: pclint
rules:
  - key: "530"
    name: Symbol not initialized
  - key: "534"
    name: Ignoring return value of function
    description: The value returned by the named function is never used.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Len())

	rule, ok := repo.Get("534")
	require.True(t, ok)
	assert.Equal(t, "Ignoring return value of function", rule.Name)

	_, ok = repo.Get("999")
	assert.False(t, ok)
}

func TestLoadRepositoryInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [}"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestKnownAcceptsMisraKeyShapes(t *testing.T) {
	t.Parallel()

	repo := Default()
	assert.True(t, repo.Known("M8.10"))
	assert.True(t, repo.Known("M5-0-1"))
	assert.True(t, repo.Known("M2012-1-2-3"))

	assert.False(t, repo.Known("530"))
	assert.False(t, repo.Known("M"))
	assert.False(t, repo.Known("M2012-"))
	assert.False(t, repo.Known(""))
}

func TestWriteStarterRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "starter.yaml")
	require.NoError(t, WriteStarter(path))

	repo, err := Load(path)
	require.NoError(t, err)
	assert.Greater(t, repo.Len(), 0)
	assert.True(t, repo.Known("530"))
}
