package sections

// ImportType is one of the built-in import sections. The declaration order
// is the default section order.
type ImportType int

const (
	Future ImportType = iota
	StandardLibrary
	ThirdParty
	FirstParty
	LocalFolder
)

// typeLabels maps built-in types to their configuration labels.
var typeLabels = map[ImportType]string{
	Future:          "future",
	StandardLibrary: "standard-library",
	ThirdParty:      "third-party",
	FirstParty:      "first-party",
	LocalFolder:     "local-folder",
}

// Label returns the configuration label of a built-in type.
func (t ImportType) Label() string {
	return typeLabels[t]
}

// KnownTypes returns all built-in import types in declaration order.
func KnownTypes() []ImportType {
	return []ImportType{Future, StandardLibrary, ThirdParty, FirstParty, LocalFolder}
}

// Section identifies an import section: either a built-in type or a
// user-defined section. It is a comparable value type and can be used as a
// map key; equal sections always compare equal.
type Section struct {
	kind ImportType
	name string // non-empty for user-defined sections
}

// Known returns the section for a built-in import type.
func Known(t ImportType) Section {
	return Section{kind: t}
}

// UserDefined returns a user-defined section with the given name.
func UserDefined(name string) Section {
	return Section{kind: -1, name: name}
}

// IsUserDefined reports whether the section is user-defined.
func (s Section) IsUserDefined() bool {
	return s.name != ""
}

// Type returns the built-in import type. Only meaningful when the section
// is not user-defined.
func (s Section) Type() ImportType {
	return s.kind
}

// Name returns the user-defined section name, empty for built-in sections.
func (s Section) Name() string {
	return s.name
}

// Label returns the configuration label of the section.
func (s Section) Label() string {
	if s.IsUserDefined() {
		return s.name
	}
	return s.kind.Label()
}

// Parse maps a configuration label to a section. Labels of built-in
// sections resolve to their Known section; anything else is user-defined.
func Parse(label string) Section {
	for t, l := range typeLabels {
		if l == label {
			return Known(t)
		}
	}
	return UserDefined(label)
}

// IsBuiltinLabel reports whether label names a built-in section.
func IsBuiltinLabel(label string) bool {
	return !Parse(label).IsUserDefined()
}
