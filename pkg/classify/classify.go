// Package classify maps module names to import sections using the compiled
// pattern tables produced by settings resolution.
package classify

import (
	"strings"

	"github.com/siyuan-infoblox/py-imports-group/pkg/sections"
	"github.com/siyuan-infoblox/py-imports-group/pkg/std"
)

// Classifier assigns import sections to module names. Classification is
// total: every input maps to exactly one section.
type Classifier struct {
	known             *KnownModules
	detectSamePackage bool
}

// NewClassifier builds a classifier over the known-module tables.
func NewClassifier(known *KnownModules, detectSamePackage bool) *Classifier {
	return &Classifier{known: known, detectSamePackage: detectSamePackage}
}

// Classify returns the section of a module. level is the relative-import
// dot count (0 for absolute imports) and filePackage is the top-level
// package of the file being analyzed, empty when unknown.
//
// Precedence, highest first:
//  1. `__future__` is always the future section.
//  2. Relative imports (and empty module paths) are local-folder.
//  3. known-first-party patterns.
//  4. known-third-party patterns.
//  5. known-local-folder patterns.
//  6. user-defined section patterns, probed in sorted section-name order.
//  7. The standard-library set, plus extra-standard-library patterns.
//  8. Same-package detection, when enabled.
//  9. Fallback: third-party.
func (c *Classifier) Classify(module string, level int, filePackage string) sections.Section {
	base := module
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	if base == std.FutureModule {
		return sections.Known(sections.Future)
	}
	if module == "" || level > 0 {
		return sections.Known(sections.LocalFolder)
	}
	if section, ok := c.known.category(base); ok {
		return section
	}
	if std.IsStandardModule(base) || c.known.extraStandardLibrary(base) {
		return sections.Known(sections.StandardLibrary)
	}
	if c.detectSamePackage && filePackage != "" && base == filePackage {
		return sections.Known(sections.FirstParty)
	}
	return sections.Known(sections.ThirdParty)
}
