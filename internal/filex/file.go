package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory path (and any parents) if it does not
// exist and returns the path.
func EnsureDir(path string) (string, error) {
	if err := os.MkdirAll(path, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", path, err)
	}
	return path, nil
}

// EnsureVaultDir creates the per-vault directory under baseDir and returns
// its path, e.g. EnsureVaultDir("password_vaults", "personal") creates and
// returns "password_vaults/personal".
func EnsureVaultDir(baseDir, vaultName string) (string, error) {
	return EnsureDir(filepath.Join(baseDir, vaultName))
}
