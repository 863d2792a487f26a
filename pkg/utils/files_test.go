package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPythonFile(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"python source", "main.py", true},
		{"python stub", "types.pyi", true},
		{"dunder init", "__init__.py", true},
		{"go source", "main.go", false},
		{"no extension", "Makefile", false},
		{"py in the middle", "py.txt", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, IsPythonFile(tt.filename), "IsPythonFile(%q)", tt.filename)
		})
	}
}

func TestFindPythonFiles(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()

	mkdir := func(parts ...string) string {
		dir := filepath.Join(append([]string{root}, parts...)...)
		req.NoError(os.MkdirAll(dir, 0o755))
		return dir
	}
	touch := func(dir, name string) string {
		path := filepath.Join(dir, name)
		req.NoError(os.WriteFile(path, []byte("import os\n"), 0o644))
		return path
	}

	pkg := mkdir("pkg")
	sub := mkdir("pkg", "sub")
	cache := mkdir("pkg", "__pycache__")
	venv := mkdir("venv")
	hidden := mkdir(".git")

	want := []string{
		touch(root, "top.py"),
		touch(pkg, "mod.py"),
		touch(sub, "stub.pyi"),
	}
	touch(root, "notes.txt")
	touch(cache, "cached.py")
	touch(venv, "site.py")
	touch(hidden, "hook.py")

	got, err := FindPythonFiles(root)
	req.NoError(err)
	req.ElementsMatch(want, got)
}

func TestFindPythonFiles_MissingRoot(t *testing.T) {
	req := require.New(t)
	_, err := FindPythonFiles(filepath.Join(t.TempDir(), "absent"))
	req.Error(err)
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "f.py")
	req.NoError(os.WriteFile(file, nil, 0o644))

	isDir, err := IsDirectory(dir)
	req.NoError(err)
	req.True(isDir)

	isDir, err = IsDirectory(file)
	req.NoError(err)
	req.False(isDir)

	_, err = IsDirectory(filepath.Join(dir, "absent"))
	req.Error(err)
}
