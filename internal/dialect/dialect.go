// Package dialect defines the grammar interface and trial registry for
// multi-dialect DDL parsing, plus shared SQL text-scanning helpers.
package dialect

// ColumnClause is the raw parse of one column definition: the unquoted
// column name, the declared type text as written, and whatever constraint
// text follows the type.
type ColumnClause struct {
	Name        string
	DataType    string
	Constraints string
}

// CreateTable is the raw parse of one CREATE TABLE statement. Name is the
// unquoted table identifier with any schema qualifier removed. Columns are
// in declaration order.
type CreateTable struct {
	Name    string
	Columns []ColumnClause
}

// Grammar is one SQL dialect's attempt at parsing a full script.
//
// Parse returns the CREATE TABLE statements found in the script, or an
// error when the script is not valid under this grammar (unsupported
// identifier quoting, an unrecognized statement, an unbalanced table body).
// A nil error with no tables is a successful parse of a script that simply
// creates none. Grammars must be stateless: the same script always yields
// the same result.
type Grammar interface {
	Name() string
	Parse(script string) ([]CreateTable, error)
}
