package imports

import "strings"

// Style distinguishes the two Python import statement forms.
type Style int

const (
	// Straight is a whole-module import: `import x` or `import x as y`.
	Straight Style = iota
	// From is a member import: `from x import y, z as w`.
	From
)

// Member is one imported name inside a from-import, with an optional alias.
type Member struct {
	Name  string
	Alias string
}

// Statement is a single normalized import statement. A source line
// importing several modules (`import a, b`) is represented as several
// Statement values.
type Statement struct {
	Module        string   // dotted module path, may be empty for `from . import x`
	Level         int      // number of leading dots, 0 for absolute imports
	Style         Style
	Alias         string   // alias of a straight import, empty otherwise
	Members       []Member // members of a from-import
	TrailingComma bool     // parenthesized member list ended with a comma
}

// ModuleBase returns the root segment of the module path.
func (s Statement) ModuleBase() string {
	if i := strings.IndexByte(s.Module, '.'); i >= 0 {
		return s.Module[:i]
	}
	return s.Module
}

// Relative reports whether the statement is a relative import.
func (s Statement) Relative() bool {
	return s.Level > 0
}

// ModuleRef returns the module path as written, including leading dots.
func (s Statement) ModuleRef() string {
	return strings.Repeat(".", s.Level) + s.Module
}
