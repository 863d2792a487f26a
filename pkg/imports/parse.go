package imports

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for import-statement reading.
var (
	// ErrNotImport indicates the text is not an import statement.
	ErrNotImport = errors.New("not an import statement")
	// ErrInvalidStatement indicates a malformed import statement.
	ErrInvalidStatement = errors.New("invalid import statement")
)

// ParseStatement parses one logical import statement. Multi-line statements
// must be joined beforehand (ScanBlock does this). A straight import naming
// several modules yields one Statement per module.
func ParseStatement(text string) ([]Statement, error) {
	text = stripComment(text)
	text = strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(text, "from ") || text == "from":
		stmt, err := parseFrom(text)
		if err != nil {
			return nil, err
		}
		return []Statement{stmt}, nil
	case strings.HasPrefix(text, "import ") || text == "import":
		return parseStraight(text)
	default:
		return nil, fmt.Errorf("%w: %q", ErrNotImport, text)
	}
}

func parseStraight(text string) ([]Statement, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(text, "import"))
	if rest == "" {
		return nil, fmt.Errorf("%w: missing module", ErrInvalidStatement)
	}

	var stmts []Statement
	for _, part := range strings.Split(rest, ",") {
		module, alias, err := splitAlias(part)
		if err != nil {
			return nil, err
		}
		if module == "" {
			return nil, fmt.Errorf("%w: empty module in %q", ErrInvalidStatement, text)
		}
		stmts = append(stmts, Statement{
			Module: module,
			Style:  Straight,
			Alias:  alias,
		})
	}
	return stmts, nil
}

func parseFrom(text string) (Statement, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(text, "from"))
	idx := strings.Index(rest, " import ")
	if idx < 0 {
		return Statement{}, fmt.Errorf("%w: missing import clause in %q", ErrInvalidStatement, text)
	}

	source := strings.TrimSpace(rest[:idx])
	level := 0
	for level < len(source) && source[level] == '.' {
		level++
	}
	module := source[level:]
	if module == "" && level == 0 {
		return Statement{}, fmt.Errorf("%w: missing module in %q", ErrInvalidStatement, text)
	}

	stmt := Statement{
		Module: module,
		Level:  level,
		Style:  From,
	}

	memberList := strings.TrimSpace(rest[idx+len(" import "):])
	if strings.HasPrefix(memberList, "(") {
		if !strings.HasSuffix(memberList, ")") {
			return Statement{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidStatement, text)
		}
		memberList = strings.TrimSpace(memberList[1 : len(memberList)-1])
		if strings.HasSuffix(memberList, ",") {
			stmt.TrailingComma = true
			memberList = strings.TrimSpace(strings.TrimSuffix(memberList, ","))
		}
	}
	if memberList == "" {
		return Statement{}, fmt.Errorf("%w: empty member list in %q", ErrInvalidStatement, text)
	}

	for _, part := range strings.Split(memberList, ",") {
		name, alias, err := splitAlias(part)
		if err != nil {
			return Statement{}, err
		}
		if name == "" {
			return Statement{}, fmt.Errorf("%w: empty member in %q", ErrInvalidStatement, text)
		}
		stmt.Members = append(stmt.Members, Member{Name: name, Alias: alias})
	}
	return stmt, nil
}

// splitAlias splits "name as alias" into its parts.
func splitAlias(part string) (name, alias string, err error) {
	fields := strings.Fields(part)
	switch len(fields) {
	case 0:
		return "", "", nil
	case 1:
		return fields[0], "", nil
	case 3:
		if fields[1] != "as" {
			return "", "", fmt.Errorf("%w: unexpected token %q", ErrInvalidStatement, fields[1])
		}
		return fields[0], fields[2], nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidStatement, strings.TrimSpace(part))
	}
}

// stripComment removes a trailing line comment. Import statements cannot
// contain string literals, so the first '#' always starts a comment.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// Block is the contiguous run of import statements found at the top of a
// module, together with the source line range it occupies.
type Block struct {
	Statements []Statement
	Start      int // index of the first import line
	End        int // index one past the last import line
}

// Empty reports whether the block contains no imports.
func (b Block) Empty() bool {
	return len(b.Statements) == 0
}

// ScanBlock locates and parses the leading import block of a source file
// given as lines. The scan skips a shebang, leading comments, blank lines
// and a module docstring, then consumes import statements (joining
// parenthesized and backslash continuations) until the first other code
// line. A comment line ends the block; anything after it is left untouched.
func ScanBlock(lines []string) (Block, error) {
	i := skipPreamble(lines)
	block := Block{Start: i, End: i}

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}
		if !isImportStart(trimmed) {
			break
		}
		if block.Empty() {
			block.Start = i
		}

		logical, next, err := joinContinuation(lines, i)
		if err != nil {
			return Block{}, err
		}
		stmts, err := ParseStatement(logical)
		if err != nil {
			return Block{}, err
		}
		block.Statements = append(block.Statements, stmts...)
		i = next
		block.End = i
	}
	return block, nil
}

// skipPreamble advances past the shebang, leading comments, blank lines and
// the module docstring.
func skipPreamble(lines []string) int {
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			i++
		case strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''"):
			quote := trimmed[:3]
			rest := trimmed[3:]
			i++
			if strings.Contains(rest, quote) {
				continue
			}
			for i < len(lines) && !strings.Contains(lines[i], quote) {
				i++
			}
			if i < len(lines) {
				i++
			}
		default:
			return i
		}
	}
	return i
}

func isImportStart(trimmed string) bool {
	return strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ")
}

// joinContinuation joins a possibly multi-line statement starting at line i
// into one logical line and returns the index of the line after it.
func joinContinuation(lines []string, i int) (string, int, error) {
	line := stripComment(lines[i])
	i++

	// Backslash continuations.
	for strings.HasSuffix(strings.TrimRight(line, " \t"), "\\") && i < len(lines) {
		line = strings.TrimSuffix(strings.TrimRight(line, " \t"), "\\") + " " + stripComment(lines[i])
		i++
	}

	// Parenthesized member lists.
	if strings.Count(line, "(") > strings.Count(line, ")") {
		for i < len(lines) {
			line += " " + stripComment(lines[i])
			i++
			if strings.Count(line, "(") <= strings.Count(line, ")") {
				break
			}
		}
		if strings.Count(line, "(") > strings.Count(line, ")") {
			return "", i, fmt.Errorf("%w: unterminated parentheses", ErrInvalidStatement)
		}
	}
	return line, i, nil
}
