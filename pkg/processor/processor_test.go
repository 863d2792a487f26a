package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siyuan-infoblox/py-imports-group/pkg/settings"
)

func newProcessor(t *testing.T, opts settings.Options, config Config) *Processor {
	t.Helper()
	s, _, err := settings.Resolve(opts)
	require.NoError(t, err)
	return New(s, config, zap.NewNop())
}

func TestOrganizeSource(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{KnownFirstParty: []string{"myapp"}}, Config{})

	src := `#!/usr/bin/env python
"""Tool entry."""

import sys
import os
from myapp import core

import requests


def main():
    pass
`
	want := `#!/usr/bin/env python
"""Tool entry."""

import os
import sys

import requests

from myapp import core


def main():
    pass
`

	got, err := p.OrganizeSource(src, "")
	req.NoError(err)
	req.Equal(want, got)

	// A second pass is a no-op.
	again, err := p.OrganizeSource(got, "")
	req.NoError(err)
	req.Equal(got, again)
}

func TestOrganizeSource_NoImports(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{})

	src := "x = 1\ny = 2\n"
	got, err := p.OrganizeSource(src, "")
	req.NoError(err)
	req.Equal(src, got)
}

func TestOrganizeSource_ImportsOnly(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{})

	got, err := p.OrganizeSource("import sys\nimport os\n", "")
	req.NoError(err)
	req.Equal("import os\nimport sys\n", got)
}

func TestOrganizeSource_BlankRunAfterImportsNormalized(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{})

	got, err := p.OrganizeSource("import os\n\n\n\n\nx = 1\n", "")
	req.NoError(err)
	req.Equal("import os\n\n\nx = 1\n", got)
}

func TestOrganizeSource_ParseFailure(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{})

	_, err := p.OrganizeSource("from os import (path\n", "")
	req.Error(err)
}

func TestProcessFile_InPlace(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{InPlace: true})

	path := filepath.Join(t.TempDir(), "mod.py")
	req.NoError(os.WriteFile(path, []byte("import sys\nimport os\n"), 0o600))

	req.NoError(p.ProcessFile(path))

	content, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal("import os\nimport sys\n", string(content))

	info, err := os.Stat(path)
	req.NoError(err)
	req.Equal(os.FileMode(0o600), info.Mode().Perm())

	// Already organized, processing again keeps the file as is.
	req.NoError(p.ProcessFile(path))
	content, err = os.ReadFile(path)
	req.NoError(err)
	req.Equal("import os\nimport sys\n", string(content))
}

func TestProcessFile_SamePackageDetection(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{InPlace: true})

	pkg := filepath.Join(t.TempDir(), "mypkg")
	req.NoError(os.MkdirAll(pkg, 0o755))
	req.NoError(os.WriteFile(filepath.Join(pkg, "__init__.py"), nil, 0o644))

	path := filepath.Join(pkg, "mod.py")
	req.NoError(os.WriteFile(path, []byte("import mypkg\nimport requests\n"), 0o644))

	req.NoError(p.ProcessFile(path))

	content, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal("import requests\n\nimport mypkg\n", string(content))
}

func TestProcessFile_MissingFile(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{InPlace: true})
	req.Error(p.ProcessFile(filepath.Join(t.TempDir(), "absent.py")))
}

func TestProcessFiles_CountsFailures(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{InPlace: true})

	dir := t.TempDir()
	good := filepath.Join(dir, "good.py")
	req.NoError(os.WriteFile(good, []byte("import sys\nimport os\n"), 0o644))

	err := p.ProcessFiles([]string{good, filepath.Join(dir, "absent.py")})
	req.Error(err)

	// The good file is still processed.
	content, readErr := os.ReadFile(good)
	req.NoError(readErr)
	req.Equal("import os\nimport sys\n", string(content))
}

func TestProcessPath_Directory(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{InPlace: true})

	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg")
	req.NoError(os.MkdirAll(sub, 0o755))

	a := filepath.Join(dir, "a.py")
	b := filepath.Join(sub, "b.py")
	req.NoError(os.WriteFile(a, []byte("import sys\nimport os\n"), 0o644))
	req.NoError(os.WriteFile(b, []byte("import json\nimport abc\n"), 0o644))

	req.NoError(p.ProcessPath(dir))

	content, err := os.ReadFile(a)
	req.NoError(err)
	req.Equal("import os\nimport sys\n", string(content))

	content, err = os.ReadFile(b)
	req.NoError(err)
	req.Equal("import abc\nimport json\n", string(content))
}

func TestProcessPath_EmptyDirectory(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{InPlace: true})
	req.NoError(p.ProcessPath(t.TempDir()))
}

func TestProcessPath_MissingPath(t *testing.T) {
	req := require.New(t)
	p := newProcessor(t, settings.Options{}, Config{})
	req.Error(p.ProcessPath(filepath.Join(t.TempDir(), "absent")))
}
