package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptions(t *testing.T) {
	req := require.New(t)

	path := writeConfig(t, `
force-single-line: true
single-line-exclusions:
  - os
  - json
known-first-party:
  - myapp
relative-imports-order: closest-to-furthest
lines-after-imports: 2
section-order:
  - future
  - standard-library
  - django
  - third-party
  - first-party
  - local-folder
sections:
  django:
    - django
`)

	opts, err := LoadOptions(path)
	req.NoError(err)
	req.NotNil(opts.ForceSingleLine)
	req.True(*opts.ForceSingleLine)
	req.Equal([]string{"os", "json"}, opts.SingleLineExclusions)
	req.Equal([]string{"myapp"}, opts.KnownFirstParty)
	req.NotNil(opts.RelativeImportsOrder)
	req.Equal(ClosestToFurthest, *opts.RelativeImportsOrder)
	req.NotNil(opts.LinesAfterImports)
	req.Equal(2, *opts.LinesAfterImports)
	req.Equal(map[string][]string{"django": {"django"}}, opts.Sections)

	// Absent keys stay nil so Resolve applies defaults.
	req.Nil(opts.OrderByType)
	req.Nil(opts.SplitOnTrailingComma)
	req.Len(opts.SectionOrder, 6)
}

func TestLoadOptions_EmptyFile(t *testing.T) {
	req := require.New(t)
	opts, err := LoadOptions(writeConfig(t, ""))
	req.NoError(err)
	req.Equal(Options{}, opts)
}

func TestLoadOptions_UnknownKeyRejected(t *testing.T) {
	req := require.New(t)
	_, err := LoadOptions(writeConfig(t, "no-such-option: true\n"))
	req.Error(err)
}

func TestLoadOptions_InvalidRelativeImportsOrder(t *testing.T) {
	req := require.New(t)
	_, err := LoadOptions(writeConfig(t, "relative-imports-order: sideways\n"))
	req.Error(err)
	req.Contains(err.Error(), "relative-imports-order")
}

func TestLoadOptions_MissingFile(t *testing.T) {
	req := require.New(t)
	_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
	req.Error(err)
}
