package classify

import (
	"sort"

	"github.com/woozymasta/pathrules"

	"github.com/siyuan-infoblox/py-imports-group/pkg/sections"
)

// CompileList compiles a list of module-name glob patterns into a matcher.
// Each pattern is matched against a single module root segment; the matcher
// reports no match for an empty pattern list.
func CompileList(patterns []string) (*pathrules.Matcher, error) {
	rules := make([]pathrules.Rule, 0, len(patterns))
	for _, p := range patterns {
		// Anchoring pins the pattern to the whole segment.
		rules = append(rules, pathrules.Rule{Pattern: "/" + p, Action: pathrules.ActionInclude})
	}
	return pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		DefaultAction: pathrules.ActionExclude,
	})
}

// UserSection is one user-defined section with its compiled pattern list.
type UserSection struct {
	Name    string
	Matcher *pathrules.Matcher
}

// KnownModules holds the compiled per-category pattern tables. It is built
// once during settings resolution and is safe for concurrent readers.
type KnownModules struct {
	firstParty  *pathrules.Matcher
	thirdParty  *pathrules.Matcher
	localFolder *pathrules.Matcher
	extraStdlib *pathrules.Matcher
	userDefined []UserSection
}

// NewKnownModules assembles the classification tables from compiled
// matchers. User-defined sections are probed in sorted name order so
// classification is deterministic.
func NewKnownModules(firstParty, thirdParty, localFolder, extraStdlib *pathrules.Matcher, userDefined map[string]*pathrules.Matcher) *KnownModules {
	names := make([]string, 0, len(userDefined))
	for name := range userDefined {
		names = append(names, name)
	}
	sort.Strings(names)

	user := make([]UserSection, 0, len(names))
	for _, name := range names {
		user = append(user, UserSection{Name: name, Matcher: userDefined[name]})
	}

	return &KnownModules{
		firstParty:  firstParty,
		thirdParty:  thirdParty,
		localFolder: localFolder,
		extraStdlib: extraStdlib,
		userDefined: user,
	}
}

// UserSectionNames returns the user-defined section names in probe order.
func (k *KnownModules) UserSectionNames() []string {
	names := make([]string, 0, len(k.userDefined))
	for _, s := range k.userDefined {
		names = append(names, s.Name)
	}
	return names
}

// match reports whether a compiled matcher includes the segment.
func match(m *pathrules.Matcher, segment string) bool {
	if m == nil || segment == "" {
		return false
	}
	return m.Included(segment, false)
}

// category returns the section whose patterns claim the module root
// segment. Probe order fixes the cross-category precedence: first-party,
// then third-party, then local-folder, then user-defined sections.
func (k *KnownModules) category(base string) (sections.Section, bool) {
	switch {
	case match(k.firstParty, base):
		return sections.Known(sections.FirstParty), true
	case match(k.thirdParty, base):
		return sections.Known(sections.ThirdParty), true
	case match(k.localFolder, base):
		return sections.Known(sections.LocalFolder), true
	}
	for _, user := range k.userDefined {
		if match(user.Matcher, base) {
			return sections.UserDefined(user.Name), true
		}
	}
	return sections.Section{}, false
}

// extraStandardLibrary reports whether the segment was configured as an
// additional standard-library module.
func (k *KnownModules) extraStandardLibrary(base string) bool {
	return match(k.extraStdlib, base)
}
