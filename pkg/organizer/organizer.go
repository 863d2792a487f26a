// Package organizer groups classified imports into ordered section blocks
// and renders them back into canonical import lines.
package organizer

import (
	"strings"

	"github.com/woozymasta/pathrules"

	"github.com/siyuan-infoblox/py-imports-group/pkg/classify"
	"github.com/siyuan-infoblox/py-imports-group/pkg/imports"
	"github.com/siyuan-infoblox/py-imports-group/pkg/settings"
)

// Organizer runs the assemble/sort/render pipeline for one file at a time.
// It holds only read-only state and can be shared across goroutines.
type Organizer struct {
	settings   *settings.Settings
	classifier *classify.Classifier
	forced     []forcedPattern
}

// forcedPattern is one forced-separate entry with its compiled matcher. A
// nil matcher never matches (the entry failed to compile; assembly stays
// total).
type forcedPattern struct {
	pattern string
	matcher *pathrules.Matcher
}

// New builds an organizer over resolved settings.
func New(s *settings.Settings) *Organizer {
	forced := make([]forcedPattern, 0, len(s.ForcedSeparate))
	for _, pattern := range s.ForcedSeparate {
		forced = append(forced, forcedPattern{
			pattern: pattern,
			matcher: compileForced(pattern),
		})
	}
	return &Organizer{
		settings:   s,
		classifier: classify.NewClassifier(s.KnownModules, s.DetectSamePackage),
		forced:     forced,
	}
}

// compileForced compiles one forced-separate pattern. The pattern matches a
// module exactly or as a dotted prefix.
func compileForced(pattern string) *pathrules.Matcher {
	p := strings.ReplaceAll(pattern, ".", "/")
	m, err := pathrules.NewMatcher([]pathrules.Rule{
		{Pattern: "/" + p, Action: pathrules.ActionInclude},
		{Pattern: "/" + p + "/**", Action: pathrules.ActionInclude},
	}, pathrules.MatcherOptions{DefaultAction: pathrules.ActionExclude})
	if err != nil {
		return nil
	}
	return m
}

// matchesForced reports whether the statement's module matches the entry.
func (f forcedPattern) matches(stmt imports.Statement) bool {
	if f.matcher == nil || stmt.Module == "" {
		return false
	}
	return f.matcher.Included(strings.ReplaceAll(stmt.Module, ".", "/"), false)
}

// Format is the full pipeline: organize the statements, render the blocks
// and join them into the final import-region text (without trailing blank
// lines, see LinesAfter).
func (o *Organizer) Format(stmts []imports.Statement, filePackage string) string {
	return o.Render(o.Organize(stmts, filePackage)).Text()
}

// LinesAfter returns the number of blank lines to emit after the final
// block. A configured value wins; the automatic setting (-1) uses the
// PEP 8 module-level gap before code and none at end of file.
func (o *Organizer) LinesAfter(followedByCode bool) int {
	if o.settings.LinesAfterImports >= 0 {
		return o.settings.LinesAfterImports
	}
	if followedByCode {
		return 2
	}
	return 0
}
