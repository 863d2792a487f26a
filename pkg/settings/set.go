package settings

import "sort"

// Set is a canonical ordered set of strings: sorted and deduplicated, so
// equal inputs in any order produce identical sets.
type Set []string

// NewSet builds a canonical set from items.
func NewSet(items []string) Set {
	if len(items) == 0 {
		return nil
	}
	s := make(Set, len(items))
	copy(s, items)
	sort.Strings(s)

	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports set membership.
func (s Set) Contains(v string) bool {
	i := sort.SearchStrings(s, v)
	return i < len(s) && s[i] == v
}
