package organizer

import (
	"strings"

	"github.com/siyuan-infoblox/py-imports-group/pkg/imports"
)

// RenderedBlock is one rendered import group with the number of blank
// lines preceding it.
type RenderedBlock struct {
	BlankBefore int
	Lines       []string
}

// Output is the rendered result, ready for substitution back into source
// text by the caller.
type Output struct {
	Blocks []RenderedBlock
}

// Text joins the rendered blocks into the import-region text, without a
// trailing newline.
func (out Output) Text() string {
	var lines []string
	for _, block := range out.Blocks {
		for i := 0; i < block.BlankBefore; i++ {
			lines = append(lines, "")
		}
		lines = append(lines, block.Lines...)
	}
	return strings.Join(lines, "\n")
}

// Render turns organized blocks into their textual form: one blank line
// between adjacent blocks unless the following block's section is listed in
// no-lines-before, and lines-between-types blank lines at the straight/from
// style boundary inside a block.
func (o *Organizer) Render(blocks []Block) Output {
	out := Output{Blocks: make([]RenderedBlock, 0, len(blocks))}
	for i, block := range blocks {
		rendered := RenderedBlock{Lines: o.renderBlock(block)}
		if i > 0 {
			rendered.BlankBefore = 1
			if !block.Forced && o.settings.NoLinesBefore.Contains(block.Section) {
				rendered.BlankBefore = 0
			}
		}
		out.Blocks = append(out.Blocks, rendered)
	}
	return out
}

func (o *Organizer) renderBlock(block Block) []string {
	var lines []string
	for i, stmt := range block.Statements {
		if i > 0 && !o.settings.ForceSortWithinSections && o.settings.LinesBetweenTypes > 0 &&
			stmt.Style != block.Statements[i-1].Style {
			for n := 0; n < o.settings.LinesBetweenTypes; n++ {
				lines = append(lines, "")
			}
		}
		lines = append(lines, o.renderStatement(stmt)...)
	}
	return lines
}

// renderStatement renders one statement as one or more lines.
func (o *Organizer) renderStatement(stmt imports.Statement) []string {
	if stmt.Style == imports.Straight {
		line := "import " + stmt.Module
		if stmt.Alias != "" {
			line += " as " + stmt.Alias
		}
		return []string{line}
	}

	prefix := "from " + stmt.ModuleRef() + " import "
	if o.wrapStatement(stmt) {
		lines := make([]string, 0, len(stmt.Members)+2)
		lines = append(lines, strings.TrimSuffix(prefix, " ")+" (")
		for _, member := range stmt.Members {
			lines = append(lines, "    "+renderMember(member)+",")
		}
		return append(lines, ")")
	}

	parts := make([]string, 0, len(stmt.Members))
	for _, member := range stmt.Members {
		parts = append(parts, renderMember(member))
	}
	return []string{prefix + strings.Join(parts, ", ")}
}

// wrapStatement decides whether a from-import is rendered in parenthesized
// one-member-per-line form: a pre-existing trailing comma (when
// split-on-trailing-comma is set) keeps it multi-line, and
// force-wrap-aliases with combine-as-imports wraps aliased multi-member
// imports instead of collapsing them.
func (o *Organizer) wrapStatement(stmt imports.Statement) bool {
	s := o.settings
	if s.SplitOnTrailingComma && stmt.TrailingComma {
		return true
	}
	if s.ForceWrapAliases && s.CombineAsImports && len(stmt.Members) > 1 {
		for _, member := range stmt.Members {
			if member.Alias != "" {
				return true
			}
		}
	}
	return false
}

func renderMember(member imports.Member) string {
	if member.Alias != "" {
		return member.Name + " as " + member.Alias
	}
	return member.Name
}
