// MySQL grammar: backtick identifiers, AUTO_INCREMENT columns.
package dialects

import "github.com/AleLoredo/datagen/internal/dialect"

// MySQLGrammar parses MySQL-flavored scripts. Square-bracket identifiers
// are T-SQL territory and fail the whole script.
type MySQLGrammar struct{}

func init() {
	dialect.Register(1, MySQLGrammar{})
}

func (MySQLGrammar) Name() string { return "mysql" }

func (MySQLGrammar) Parse(script string) ([]dialect.CreateTable, error) {
	return parseScript(script, profile{
		name:        "mysql",
		rejectChars: "[]",
		keywords:    []string{"REPLACE", "RENAME", "LOCK", "UNLOCK"},
	})
}
