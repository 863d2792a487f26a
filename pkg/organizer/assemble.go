package organizer

import (
	"sort"

	"github.com/siyuan-infoblox/py-imports-group/pkg/imports"
	"github.com/siyuan-infoblox/py-imports-group/pkg/sections"
)

// Block is one output group of imports: either a forced-separate block or a
// regular section block. Statements are normalized and sorted.
type Block struct {
	Section    sections.Section // zero value for forced-separate blocks
	Forced     bool
	Pattern    string // forced-separate pattern that formed the block
	Statements []imports.Statement
}

// Organize turns one file's import statements into the ordered block
// sequence: forced-separate blocks in forced-separate list order first,
// then the remaining imports grouped by the resolved section order. Every
// input statement lands in exactly one block; empty sections produce none.
func (o *Organizer) Organize(stmts []imports.Statement, filePackage string) []Block {
	work := make([]imports.Statement, len(stmts))
	copy(work, stmts)
	work = o.injectRequired(work)

	var blocks []Block

	// Forced-separate entries claim statements in list order; a statement
	// matched by an earlier entry is gone for later ones.
	for _, entry := range o.forced {
		var claimed, rest []imports.Statement
		for _, stmt := range work {
			if entry.matches(stmt) {
				claimed = append(claimed, stmt)
			} else {
				rest = append(rest, stmt)
			}
		}
		work = rest
		if len(claimed) == 0 {
			continue
		}
		blocks = append(blocks, Block{
			Forced:     true,
			Pattern:    entry.pattern,
			Statements: o.finalize(claimed),
		})
	}

	grouped := make(map[sections.Section][]imports.Statement)
	for _, stmt := range work {
		section := o.classifier.Classify(stmt.Module, stmt.Level, filePackage)
		grouped[section] = append(grouped[section], stmt)
	}

	// Section order may contain duplicates; a section is emitted once.
	emitted := make(map[sections.Section]struct{}, len(o.settings.SectionOrder))
	for _, section := range o.settings.SectionOrder {
		if _, done := emitted[section]; done {
			continue
		}
		emitted[section] = struct{}{}
		if group := grouped[section]; len(group) > 0 {
			blocks = append(blocks, Block{Section: section, Statements: o.finalize(group)})
			delete(grouped, section)
		}
	}

	// Resolution keeps section order complete, so nothing should remain;
	// if it does, keep it rather than dropping imports.
	if len(grouped) > 0 {
		leftover := make([]sections.Section, 0, len(grouped))
		for section := range grouped {
			leftover = append(leftover, section)
		}
		sort.Slice(leftover, func(i, j int) bool { return leftover[i].Label() < leftover[j].Label() })
		for _, section := range leftover {
			blocks = append(blocks, Block{Section: section, Statements: o.finalize(grouped[section])})
		}
	}

	return blocks
}

// finalize normalizes (merge/split per the combine toggles) and sorts the
// statements of one block.
func (o *Organizer) finalize(stmts []imports.Statement) []imports.Statement {
	stmts = o.normalize(stmts)
	o.sortStatements(stmts)
	return stmts
}

// injectRequired appends required imports that the file does not already
// contain. Each configured source line is parsed; entries that are not
// valid import statements are ignored.
func (o *Organizer) injectRequired(work []imports.Statement) []imports.Statement {
	for _, source := range o.settings.RequiredImports {
		parsed, err := imports.ParseStatement(source)
		if err != nil {
			continue
		}
		for _, req := range parsed {
			if !satisfies(work, req) {
				work = append(work, req)
			}
		}
	}
	return work
}

// satisfies reports whether the file already provides the required import:
// for straight imports any import of the module, for from-imports every
// required member present across the module's from-imports.
func satisfies(work []imports.Statement, req imports.Statement) bool {
	if req.Style == imports.Straight {
		for _, stmt := range work {
			if stmt.Style == imports.Straight && stmt.Module == req.Module && stmt.Level == req.Level {
				return true
			}
		}
		return false
	}

	for _, member := range req.Members {
		found := false
		for _, stmt := range work {
			if stmt.Style != imports.From || stmt.Module != req.Module || stmt.Level != req.Level {
				continue
			}
			for _, have := range stmt.Members {
				if have.Name == member.Name && have.Alias == member.Alias {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
