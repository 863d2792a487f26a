package utils

import (
	"os"
	"path/filepath"
)

// GetFilePackage returns the top-level package a Python file belongs to, by
// walking up through directories that contain an __init__.py. Files outside
// any package yield an empty string.
func GetFilePackage(filePath string) string {
	dir := filepath.Dir(filePath)

	pkg := ""
	iterations := 0
	maxIterations := 64 // Prevent runaway walks on odd paths

	for iterations < maxIterations {
		iterations++

		if !hasInitFile(dir) {
			break
		}
		pkg = filepath.Base(dir)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return pkg
}

func hasInitFile(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "__init__.py"))
	return err == nil && !info.IsDir()
}
