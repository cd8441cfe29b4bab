package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureVaultDir(t *testing.T) {
	base := t.TempDir()

	dir, err := EnsureVaultDir(base, "personal")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "personal"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	_, err = EnsureVaultDir(base, "personal")
	assert.NoError(t, err)
}

func TestEnsureDir_Error(t *testing.T) {
	base := t.TempDir()

	// A file in the way makes MkdirAll fail.
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureDir(filepath.Join(blocker, "sub"))
	assert.Error(t, err)
}
