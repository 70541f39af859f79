// T-SQL grammar: square-bracket identifiers, IDENTITY(seed, increment)
// columns, GO batch separators.
package dialects

import "github.com/AleLoredo/datagen/internal/dialect"

// TSQLGrammar parses SQL Server-flavored scripts. Backtick identifiers
// fail the whole script.
type TSQLGrammar struct{}

func init() {
	dialect.Register(4, TSQLGrammar{})
}

func (TSQLGrammar) Name() string { return "tsql" }

func (TSQLGrammar) Parse(script string) ([]dialect.CreateTable, error) {
	return parseScript(script, profile{
		name:        "tsql",
		rejectChars: "`",
		keywords:    []string{"EXEC", "EXECUTE", "DECLARE", "PRINT", "IF", "GO", "BULK"},
		preprocess: func(s string) string {
			return replaceLoneLines(s, "GO")
		},
	})
}
