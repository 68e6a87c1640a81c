package app

import (
	"os"
	"path/filepath"

	"github.com/noahbw/toolsmith/internal/config"
)

// FindRoot ascends from base until it finds a directory holding
// toolsmith.toml or the page template, falling back to base itself.
func FindRoot(base string) string {
	dir := base
	for {
		if isRoot(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return base
		}
		dir = parent
	}
}

func isRoot(dir string) bool {
	for _, marker := range []string{config.FileName, config.Default().Template} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func joinRoot(root, name string) string {
	return filepath.Join(root, name)
}
