// Package settings resolves raw user options into an immutable,
// internally-consistent configuration shared by every file analysis.
package settings

import (
	"errors"
	"fmt"

	"github.com/woozymasta/pathrules"

	"github.com/siyuan-infoblox/py-imports-group/pkg/classify"
	"github.com/siyuan-infoblox/py-imports-group/pkg/sections"
)

// Sentinel errors for pattern compilation failures, one per pattern-bearing
// option category. Each wraps the underlying pattern-syntax error.
var (
	ErrInvalidKnownFirstParty      = errors.New("invalid known-first-party pattern")
	ErrInvalidKnownThirdParty      = errors.New("invalid known-third-party pattern")
	ErrInvalidKnownLocalFolder     = errors.New("invalid known-local-folder pattern")
	ErrInvalidExtraStandardLibrary = errors.New("invalid extra-standard-library pattern")
	ErrInvalidUserDefinedSection   = errors.New("invalid user-defined section pattern")
)

// SectionSet is a membership set of sections.
type SectionSet map[sections.Section]struct{}

// Contains reports set membership.
func (s SectionSet) Contains(sec sections.Section) bool {
	_, ok := s[sec]
	return ok
}

// Settings is the fully-resolved configuration. It is immutable once
// constructed and safe to share across concurrent file analyses.
//
// All collection fields are canonical deduplicated sets except
// SectionOrder and ForcedSeparate, which preserve input order and may
// contain duplicates (duplicates are warned about, never removed).
type Settings struct {
	RequiredImports         Set
	CombineAsImports        bool
	ForceSingleLine         bool
	ForceSortWithinSections bool
	CaseSensitive           bool
	ForceWrapAliases        bool
	DetectSamePackage       bool
	OrderByType             bool
	SplitOnTrailingComma    bool
	RelativeImportsOrder    RelativeImportsOrder
	LinesAfterImports       int
	LinesBetweenTypes       int
	ForceToTop              Set
	SingleLineExclusions    Set
	Classes                 Set
	Constants               Set
	Variables               Set
	NoLinesBefore           SectionSet
	ForcedSeparate          []string
	SectionOrder            []sections.Section
	KnownModules            *classify.KnownModules
}

// Default returns the settings produced by resolving empty options.
func Default() *Settings {
	s, _, _ := Resolve(Options{})
	return s
}

// Resolve validates and normalizes options into settings. Pattern-syntax
// failures abort resolution with the category's sentinel error; every other
// inconsistency is auto-corrected and reported as a Warning.
func Resolve(opts Options) (*Settings, []Warning, error) {
	var warnings []Warning

	firstParty, err := classify.CompileList(opts.KnownFirstParty)
	if err != nil {
		return nil, warnings, fmt.Errorf("%w: %w", ErrInvalidKnownFirstParty, err)
	}
	thirdParty, err := classify.CompileList(opts.KnownThirdParty)
	if err != nil {
		return nil, warnings, fmt.Errorf("%w: %w", ErrInvalidKnownThirdParty, err)
	}
	localFolder, err := classify.CompileList(opts.KnownLocalFolder)
	if err != nil {
		return nil, warnings, fmt.Errorf("%w: %w", ErrInvalidKnownLocalFolder, err)
	}
	extraStdlib, err := classify.CompileList(opts.ExtraStandardLibrary)
	if err != nil {
		return nil, warnings, fmt.Errorf("%w: %w", ErrInvalidExtraStandardLibrary, err)
	}

	// Drop built-in names from the user sections map, then compile the
	// remaining pattern lists.
	userSections := make(map[string]*pathrules.Matcher, len(opts.Sections))
	for name, patterns := range opts.Sections {
		if sections.IsBuiltinLabel(name) {
			warnings = append(warnings, Warning{Kind: WarnBuiltinSectionKey, Section: name})
			continue
		}
		matcher, err := classify.CompileList(patterns)
		if err != nil {
			return nil, warnings, fmt.Errorf("%w: %w", ErrInvalidUserDefinedSection, err)
		}
		userSections[name] = matcher
	}

	sectionOrder := make([]sections.Section, 0, len(opts.SectionOrder))
	if opts.SectionOrder == nil {
		for _, t := range sections.KnownTypes() {
			sectionOrder = append(sectionOrder, sections.Known(t))
		}
	} else {
		for _, label := range opts.SectionOrder {
			sectionOrder = append(sectionOrder, sections.Parse(label))
		}
	}

	// Duplicates in section-order are kept but warned about.
	seen := make(map[sections.Section]struct{}, len(sectionOrder))
	for _, section := range sectionOrder {
		if _, dup := seen[section]; dup {
			warnings = append(warnings, Warning{Kind: WarnDuplicateSectionOrder, Section: section.Label()})
		}
		seen[section] = struct{}{}
	}

	// User sections referenced by section-order must be defined.
	for _, section := range sectionOrder {
		if section.IsUserDefined() {
			if _, ok := userSections[section.Name()]; !ok {
				warnings = append(warnings, Warning{Kind: WarnUnknownSectionOrder, Section: section.Label()})
			}
		}
	}

	noLinesBefore := make(SectionSet, len(opts.NoLinesBefore))
	for _, label := range opts.NoLinesBefore {
		section := sections.Parse(label)
		if section.IsUserDefined() {
			if _, ok := userSections[section.Name()]; !ok {
				warnings = append(warnings, Warning{Kind: WarnUnknownNoLinesBefore, Section: section.Label()})
			}
		}
		noLinesBefore[section] = struct{}{}
	}

	// Complete section-order: missing built-ins first, in declaration
	// order, then missing user sections in sorted name order (Go maps have
	// no stable iteration order).
	for _, t := range sections.KnownTypes() {
		section := sections.Known(t)
		if _, ok := seen[section]; !ok {
			warnings = append(warnings, Warning{Kind: WarnMissingBuiltinSection, Section: section.Label()})
			sectionOrder = append(sectionOrder, section)
			seen[section] = struct{}{}
		}
	}
	known := classify.NewKnownModules(firstParty, thirdParty, localFolder, extraStdlib, userSections)
	for _, name := range known.UserSectionNames() {
		section := sections.UserDefined(name)
		if _, ok := seen[section]; !ok {
			warnings = append(warnings, Warning{Kind: WarnMissingUserSection, Section: section.Label()})
			sectionOrder = append(sectionOrder, section)
			seen[section] = struct{}{}
		}
	}

	relativeOrder := FurthestToClosest
	if opts.RelativeImportsOrder != nil {
		relativeOrder = *opts.RelativeImportsOrder
	}

	linesBetweenTypes := intOr(opts.LinesBetweenTypes, 0)
	if linesBetweenTypes < 0 {
		linesBetweenTypes = 0
	}

	return &Settings{
		RequiredImports:         NewSet(opts.RequiredImports),
		CombineAsImports:        boolOr(opts.CombineAsImports, false),
		ForceSingleLine:         boolOr(opts.ForceSingleLine, false),
		ForceSortWithinSections: boolOr(opts.ForceSortWithinSections, false),
		CaseSensitive:           boolOr(opts.CaseSensitive, false),
		ForceWrapAliases:        boolOr(opts.ForceWrapAliases, false),
		DetectSamePackage:       boolOr(opts.DetectSamePackage, true),
		OrderByType:             boolOr(opts.OrderByType, true),
		SplitOnTrailingComma:    boolOr(opts.SplitOnTrailingComma, true),
		RelativeImportsOrder:    relativeOrder,
		LinesAfterImports:       intOr(opts.LinesAfterImports, -1),
		LinesBetweenTypes:       linesBetweenTypes,
		ForceToTop:              NewSet(opts.ForceToTop),
		SingleLineExclusions:    NewSet(opts.SingleLineExclusions),
		Classes:                 NewSet(opts.Classes),
		Constants:               NewSet(opts.Constants),
		Variables:               NewSet(opts.Variables),
		NoLinesBefore:           noLinesBefore,
		ForcedSeparate:          append([]string(nil), opts.ForcedSeparate...),
		SectionOrder:            sectionOrder,
		KnownModules:            known,
	}, warnings, nil
}
