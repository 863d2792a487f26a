package settings

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RelativeImportsOrder controls the ordering of relative imports within a
// section.
type RelativeImportsOrder string

const (
	// ClosestToFurthest places imports with fewer leading dots first.
	ClosestToFurthest RelativeImportsOrder = "closest-to-furthest"
	// FurthestToClosest places imports with more leading dots first.
	// This is the default.
	FurthestToClosest RelativeImportsOrder = "furthest-to-closest"
)

// UnmarshalYAML validates the enum value while decoding.
func (o *RelativeImportsOrder) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch RelativeImportsOrder(s) {
	case ClosestToFurthest, FurthestToClosest:
		*o = RelativeImportsOrder(s)
		return nil
	}
	return fmt.Errorf("invalid relative-imports-order: %q", s)
}

// Options mirrors the user-facing configuration surface. Every field is
// optional; nil means "use the default". Options values are ephemeral and
// consumed by Resolve.
type Options struct {
	ForceWrapAliases        *bool                 `yaml:"force-wrap-aliases"`
	ForceSingleLine         *bool                 `yaml:"force-single-line"`
	SingleLineExclusions    []string              `yaml:"single-line-exclusions"`
	CombineAsImports        *bool                 `yaml:"combine-as-imports"`
	SplitOnTrailingComma    *bool                 `yaml:"split-on-trailing-comma"`
	OrderByType             *bool                 `yaml:"order-by-type"`
	ForceSortWithinSections *bool                 `yaml:"force-sort-within-sections"`
	CaseSensitive           *bool                 `yaml:"case-sensitive"`
	ForceToTop              []string              `yaml:"force-to-top"`
	KnownFirstParty         []string              `yaml:"known-first-party"`
	KnownThirdParty         []string              `yaml:"known-third-party"`
	KnownLocalFolder        []string              `yaml:"known-local-folder"`
	ExtraStandardLibrary    []string              `yaml:"extra-standard-library"`
	RelativeImportsOrder    *RelativeImportsOrder `yaml:"relative-imports-order"`
	RequiredImports         []string              `yaml:"required-imports"`
	Classes                 []string              `yaml:"classes"`
	Constants               []string              `yaml:"constants"`
	Variables               []string              `yaml:"variables"`
	NoLinesBefore           []string              `yaml:"no-lines-before"`
	LinesAfterImports       *int                  `yaml:"lines-after-imports"`
	LinesBetweenTypes       *int                  `yaml:"lines-between-types"`
	ForcedSeparate          []string              `yaml:"forced-separate"`
	SectionOrder            []string              `yaml:"section-order"`
	DetectSamePackage       *bool                 `yaml:"detect-same-package"`
	Sections                map[string][]string   `yaml:"sections"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
