// Package dialects registers the concrete SQL grammars tried by the schema
// extractor. Trial order: mysql, postgres, oracle, tsql. Each grammar file
// registers itself via init(), mirroring its position in the trial list.
package dialects

import (
	"fmt"
	"strings"

	"github.com/AleLoredo/datagen/internal/dialect"
)

// profile captures what distinguishes one grammar from another: which
// quoting characters make the whole script unparseable, which extra
// statement-leading keywords are recognized, and an optional script
// preprocessing step (batch separators).
type profile struct {
	name        string
	rejectChars string
	keywords    []string
	preprocess  func(string) string
}

// Statement verbs every supported dialect understands. A statement leading
// with anything else fails the grammar and falls through to the next one.
var baseKeywords = map[string]bool{
	"CREATE": true, "ALTER": true, "DROP": true, "TRUNCATE": true,
	"INSERT": true, "UPDATE": true, "DELETE": true, "SELECT": true,
	"USE": true, "SET": true, "GRANT": true, "REVOKE": true,
	"BEGIN": true, "COMMIT": true, "ROLLBACK": true, "START": true,
	"COMMENT": true, "WITH": true, "CALL": true,
}

// Clause-leading keywords that mark a table-level definition rather than a
// column inside a CREATE TABLE body.
var tableConstraintKeywords = map[string]bool{
	"PRIMARY": true, "FOREIGN": true, "KEY": true, "CONSTRAINT": true,
	"INDEX": true, "UNIQUE": true, "CHECK": true, "EXCLUDE": true,
}

// parseScript is the shared grammar engine: split the script into
// statements, validate every statement against the profile, and collect the
// CREATE TABLE definitions. Any validation failure rejects the whole script
// so the extractor can move on to the next grammar.
func parseScript(script string, p profile) ([]dialect.CreateTable, error) {
	if p.preprocess != nil {
		script = p.preprocess(script)
	}
	if p.rejectChars != "" && dialect.ContainsOutsideStrings(script, p.rejectChars) {
		return nil, fmt.Errorf("%s: unsupported identifier quoting", p.name)
	}

	extra := make(map[string]bool, len(p.keywords))
	for _, kw := range p.keywords {
		extra[kw] = true
	}

	var tables []dialect.CreateTable
	for _, stmt := range dialect.SplitStatements(script) {
		kw := leadingKeyword(stmt)
		if !baseKeywords[kw] && !extra[kw] {
			return nil, fmt.Errorf("%s: unexpected statement start %q", p.name, kw)
		}

		ct, ok, err := parseCreateTable(stmt, p)
		if err != nil {
			return nil, err
		}
		if ok {
			tables = append(tables, ct)
		}
	}
	return tables, nil
}

// leadingKeyword returns the upper-cased first word of a statement.
func leadingKeyword(stmt string) string {
	fields := strings.Fields(stmt)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.Trim(fields[0], "\"'`[]"))
}

// parseCreateTable parses one statement as CREATE TABLE. ok is false when
// the statement is something else (or a bodiless CREATE TABLE form); an
// error means the statement claims to be CREATE TABLE but its body cannot
// be recovered.
func parseCreateTable(stmt string, p profile) (dialect.CreateTable, bool, error) {
	rawName, rest, isTable := createTableHeader(stmt)
	if !isTable {
		return dialect.CreateTable{}, false, nil
	}
	if !strings.Contains(rest, "(") {
		// CREATE TABLE ... AS SELECT and friends carry no column body.
		return dialect.CreateTable{}, false, nil
	}

	body, ok := dialect.ParenBody(rest)
	if !ok {
		return dialect.CreateTable{}, false, fmt.Errorf("%s: unbalanced parentheses in CREATE TABLE %s", p.name, rawName)
	}

	ct := dialect.CreateTable{Name: unqualify(rawName)}
	for _, clause := range dialect.SplitTopLevel(body) {
		col, isColumn := parseColumnClause(clause)
		if isColumn {
			ct.Columns = append(ct.Columns, col)
		}
	}
	return ct, true, nil
}

// createTableHeader recognizes the CREATE TABLE prefix (with optional
// TEMPORARY/UNLOGGED and IF NOT EXISTS) and returns the raw table
// identifier plus the remainder of the statement starting at the body.
func createTableHeader(stmt string) (name, rest string, isTable bool) {
	fields := strings.Fields(stmt)
	if len(fields) < 3 || !strings.EqualFold(fields[0], "CREATE") {
		return "", "", false
	}

	i := 1
	for i < len(fields) && (strings.EqualFold(fields[i], "TEMPORARY") ||
		strings.EqualFold(fields[i], "GLOBAL") ||
		strings.EqualFold(fields[i], "UNLOGGED")) {
		i++
	}
	if i >= len(fields) || !strings.EqualFold(fields[i], "TABLE") {
		return "", "", false
	}
	i++
	if i+2 < len(fields) && strings.EqualFold(fields[i], "IF") &&
		strings.EqualFold(fields[i+1], "NOT") && strings.EqualFold(fields[i+2], "EXISTS") {
		i += 3
	}
	if i >= len(fields) {
		return "", "", false
	}

	ident := fields[i]
	// The identifier token may run straight into the body: "users(id INT...".
	if cut := strings.IndexByte(ident, '('); cut > 0 {
		ident = ident[:cut]
	}
	if ident == "" {
		return "", "", false
	}

	bodyStart := strings.IndexByte(stmt, '(')
	if bodyStart < 0 {
		return ident, "", true
	}
	return ident, stmt[bodyStart:], true
}

// unqualify strips a schema/database qualifier and quoting from a table
// identifier: `shop`.`users` -> users.
func unqualify(ident string) string {
	if idx := strings.LastIndexByte(ident, '.'); idx >= 0 {
		ident = ident[idx+1:]
	}
	return dialect.Unquote(ident)
}

// parseColumnClause splits one body clause into name, declared type, and
// trailing constraint text. Table-level constraint clauses and clauses with
// no tokens report isColumn=false.
func parseColumnClause(clause string) (col dialect.ColumnClause, isColumn bool) {
	fields := strings.Fields(clause)
	if len(fields) == 0 {
		return dialect.ColumnClause{}, false
	}
	if tableConstraintKeywords[strings.ToUpper(fields[0])] {
		return dialect.ColumnClause{}, false
	}

	name := dialect.Unquote(fields[0])
	rest := strings.TrimSpace(clause[len(fields[0]):])
	dataType, constraints := splitDeclaredType(rest)

	return dialect.ColumnClause{Name: name, DataType: dataType, Constraints: constraints}, true
}

// splitDeclaredType separates the declared type (including multi-word forms
// like DOUBLE PRECISION and parenthesized arguments like DECIMAL(10,2))
// from the constraint text that follows it. A clause with no type defaults
// to TEXT, matching the fallback extraction path.
func splitDeclaredType(rest string) (dataType, constraints string) {
	if rest == "" {
		return "TEXT", ""
	}

	i := 0
	for i < len(rest) && !isSpace(rest[i]) && rest[i] != '(' {
		i++
	}
	dataType = rest[:i]
	rem := strings.TrimLeft(rest[i:], " \t\r\n")

	// Two-word type forms.
	for _, second := range []string{"PRECISION", "VARYING"} {
		if len(rem) >= len(second) && strings.EqualFold(rem[:len(second)], second) {
			dataType += " " + rem[:len(second)]
			rem = strings.TrimLeft(rem[len(second):], " \t\r\n")
			break
		}
	}

	// Parenthesized type arguments.
	if strings.HasPrefix(rem, "(") {
		if end, ok := parenSpan(rem); ok {
			args, _ := dialect.ParenBody(rem[:end])
			dataType += "(" + args + ")"
			rem = strings.TrimLeft(rem[end:], " \t\r\n")
		}
	}

	return dataType, strings.TrimSpace(rem)
}

// parenSpan returns the index just past the balanced closing paren of a
// string starting with '('.
func parenSpan(text string) (int, bool) {
	depth := 0
	for i, ch := range text {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// replaceLoneLines rewrites lines consisting solely of the given word
// (batch separators like GO, or sqlplus's "/") into statement terminators.
func replaceLoneLines(script, word string) string {
	lines := strings.Split(script, "\n")
	for i, ln := range lines {
		if strings.EqualFold(strings.TrimSpace(ln), word) {
			lines[i] = ";"
		}
	}
	return strings.Join(lines, "\n")
}
