// Package filex holds small filesystem helpers for the client's state
// directory (token file, occupancy cache).
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateDir returns (creating it if needed) the per-user directory where the
// client keeps its state, under os.UserConfigDir.
func StateDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureParent creates the parent directory of path.
func EnsureParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return nil
}
