package organizer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/siyuan-infoblox/py-imports-group/pkg/imports"
	"github.com/siyuan-infoblox/py-imports-group/pkg/settings"
)

// Member-type ranks for order-by-type sorting: Class < CONSTANT < variable.
const (
	rankClass = iota
	rankConstant
	rankVariable
)

// memberRank classifies an identifier by the casing heuristic, overridden
// by explicit membership in the classes/constants/variables sets.
func memberRank(s *settings.Settings, name string) int {
	switch {
	case s.Classes.Contains(name):
		return rankClass
	case s.Constants.Contains(name):
		return rankConstant
	case s.Variables.Contains(name):
		return rankVariable
	case isConstantCase(name):
		return rankConstant
	case isClassCase(name):
		return rankClass
	}
	return rankVariable
}

// isConstantCase reports all-uppercase identifiers (letters required,
// digits and underscores allowed).
func isConstantCase(name string) bool {
	hasLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isClassCase reports CapitalizedCamel identifiers: a leading uppercase
// letter (leading underscores ignored) with at least one lowercase letter.
func isClassCase(name string) bool {
	trimmed := strings.TrimLeft(name, "_")
	if trimmed == "" {
		return false
	}
	first := []rune(trimmed)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// normalize applies the combine/split toggles to a block's from-imports:
// merge by module when combine-as-imports is set, otherwise keep aliased
// members on their own statements; force-single-line then splits every
// member, except for excluded modules. Member lists are sorted here so the
// statement comparator sees their final leading member.
func (o *Organizer) normalize(stmts []imports.Statement) []imports.Statement {
	s := o.settings

	type moduleKey struct {
		module string
		level  int
	}

	var out []imports.Statement
	merged := make(map[moduleKey]int) // key -> index in out of the mergeable statement

	for _, stmt := range stmts {
		if stmt.Style != imports.From {
			out = append(out, stmt)
			continue
		}
		key := moduleKey{module: stmt.Module, level: stmt.Level}

		if s.CombineAsImports {
			if i, ok := merged[key]; ok {
				out[i] = mergeMembers(out[i], stmt)
			} else {
				merged[key] = len(out)
				out = append(out, stmt)
			}
			continue
		}

		// Without combine-as-imports, plain members of one module share a
		// statement while every aliased member gets its own.
		plain := imports.Statement{
			Module: stmt.Module, Level: stmt.Level, Style: imports.From,
			TrailingComma: stmt.TrailingComma,
		}
		for _, member := range stmt.Members {
			if member.Alias != "" {
				out = append(out, imports.Statement{
					Module: stmt.Module, Level: stmt.Level, Style: imports.From,
					Members:       []imports.Member{member},
					TrailingComma: stmt.TrailingComma && len(stmt.Members) == 1,
				})
				continue
			}
			plain.Members = append(plain.Members, member)
		}
		if len(plain.Members) > 0 {
			if i, ok := merged[key]; ok {
				out[i] = mergeMembers(out[i], plain)
			} else {
				merged[key] = len(out)
				out = append(out, plain)
			}
		}
	}

	if s.ForceSingleLine {
		var split []imports.Statement
		for _, stmt := range out {
			if stmt.Style != imports.From || len(stmt.Members) <= 1 ||
				s.SingleLineExclusions.Contains(stmt.Module) {
				split = append(split, stmt)
				continue
			}
			for _, member := range stmt.Members {
				split = append(split, imports.Statement{
					Module: stmt.Module, Level: stmt.Level, Style: imports.From,
					Members: []imports.Member{member},
				})
			}
		}
		out = split
	}

	for i := range out {
		o.sortMembers(out[i].Members)
	}
	return out
}

// mergeMembers folds b's members into a, dropping duplicates.
func mergeMembers(a, b imports.Statement) imports.Statement {
	have := make(map[imports.Member]struct{}, len(a.Members))
	for _, member := range a.Members {
		have[member] = struct{}{}
	}
	for _, member := range b.Members {
		if _, dup := have[member]; dup {
			continue
		}
		have[member] = struct{}{}
		a.Members = append(a.Members, member)
	}
	a.TrailingComma = a.TrailingComma || b.TrailingComma
	return a
}

// sortMembers orders a from-import's member list by type rank (when
// order-by-type is set) and then name.
func (o *Organizer) sortMembers(members []imports.Member) {
	s := o.settings
	sort.SliceStable(members, func(i, j int) bool {
		if s.OrderByType {
			ri, rj := memberRank(s, members[i].Name), memberRank(s, members[j].Name)
			if ri != rj {
				return ri < rj
			}
		}
		if c := o.compareNames(members[i].Name, members[j].Name); c != 0 {
			return c < 0
		}
		return members[i].Alias < members[j].Alias
	})
}

// compareNames compares identifiers or module paths with the configured
// case sensitivity, falling back to a case-sensitive comparison to keep
// case-insensitive ordering deterministic.
func (o *Organizer) compareNames(a, b string) int {
	if !o.settings.CaseSensitive {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

// sortIdentifier is the identifier a statement is ordered by under
// order-by-type: the leading member of a from-import, the last module
// segment of a straight import.
func sortIdentifier(stmt imports.Statement) string {
	if stmt.Style == imports.From && len(stmt.Members) > 0 {
		return stmt.Members[0].Name
	}
	if i := strings.LastIndexByte(stmt.Module, '.'); i >= 0 {
		return stmt.Module[i+1:]
	}
	return stmt.Module
}

// sortStatements stable-sorts one block's statements by the multi-key
// comparator: force-to-top hoisting, style (unless force-sort-within-
// sections), member type (when order-by-type), module path, relative
// level, members.
func (o *Organizer) sortStatements(stmts []imports.Statement) {
	s := o.settings
	sort.SliceStable(stmts, func(i, j int) bool {
		a, b := stmts[i], stmts[j]

		topA, topB := s.ForceToTop.Contains(a.Module), s.ForceToTop.Contains(b.Module)
		if topA != topB {
			return topA
		}

		if !s.ForceSortWithinSections && a.Style != b.Style {
			return a.Style == imports.Straight
		}

		if s.OrderByType {
			ra, rb := memberRank(s, sortIdentifier(a)), memberRank(s, sortIdentifier(b))
			if ra != rb {
				return ra < rb
			}
		}

		if c := o.compareNames(a.Module, b.Module); c != 0 {
			return c < 0
		}

		if a.Level != b.Level {
			if s.RelativeImportsOrder == settings.ClosestToFurthest {
				return a.Level < b.Level
			}
			return a.Level > b.Level
		}

		return o.compareNames(memberSignature(a), memberSignature(b)) < 0
	})
}

// memberSignature is a deterministic tie-break key over a statement's
// member list.
func memberSignature(stmt imports.Statement) string {
	if stmt.Style == imports.Straight {
		return stmt.Alias
	}
	var b strings.Builder
	for _, member := range stmt.Members {
		b.WriteString(member.Name)
		if member.Alias != "" {
			b.WriteString(" as ")
			b.WriteString(member.Alias)
		}
		b.WriteByte(',')
	}
	return b.String()
}
