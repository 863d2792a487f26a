package settings

import "fmt"

// WarningKind identifies a class of recoverable configuration issue.
type WarningKind string

const (
	// WarnBuiltinSectionKey reports a `sections` key naming a built-in
	// section; the key is dropped.
	WarnBuiltinSectionKey WarningKind = "builtin-section-key"
	// WarnDuplicateSectionOrder reports a duplicated `section-order` entry;
	// the duplicate is kept.
	WarnDuplicateSectionOrder WarningKind = "duplicate-section-order"
	// WarnUnknownSectionOrder reports a `section-order` entry naming an
	// undefined user section.
	WarnUnknownSectionOrder WarningKind = "unknown-section-order"
	// WarnUnknownNoLinesBefore reports a `no-lines-before` entry naming an
	// undefined user section.
	WarnUnknownNoLinesBefore WarningKind = "unknown-no-lines-before"
	// WarnMissingBuiltinSection reports a built-in section absent from
	// `section-order`; the section is appended.
	WarnMissingBuiltinSection WarningKind = "missing-builtin-section"
	// WarnMissingUserSection reports a user-defined section absent from
	// `section-order`; the section is appended.
	WarnMissingUserSection WarningKind = "missing-user-section"
)

// Warning is a recoverable configuration issue found during resolution.
// Warnings are collected rather than logged so Resolve stays side-effect
// free; deduplication is left to the caller.
type Warning struct {
	Kind    WarningKind
	Section string // label of the section involved
}

// Message renders the warning for display.
func (w Warning) Message() string {
	switch w.Kind {
	case WarnBuiltinSectionKey:
		return fmt.Sprintf("`sections` contains built-in section: %q", w.Section)
	case WarnDuplicateSectionOrder:
		return fmt.Sprintf("`section-order` contains duplicate section: %q", w.Section)
	case WarnUnknownSectionOrder:
		return fmt.Sprintf("`section-order` contains unknown section: %q", w.Section)
	case WarnUnknownNoLinesBefore:
		return fmt.Sprintf("`no-lines-before` contains unknown section: %q", w.Section)
	case WarnMissingBuiltinSection:
		return fmt.Sprintf("`section-order` is missing built-in section: %q", w.Section)
	case WarnMissingUserSection:
		return fmt.Sprintf("`section-order` is missing section: %q", w.Section)
	}
	return fmt.Sprintf("%s: %q", w.Kind, w.Section)
}
