// Oracle grammar: double-quoted identifiers, NUMBER types,
// GENERATED ... AS IDENTITY columns, sqlplus "/" batch separators.
package dialects

import "github.com/AleLoredo/datagen/internal/dialect"

// OracleGrammar parses Oracle-flavored scripts. Backtick or square-bracket
// identifiers fail the whole script.
type OracleGrammar struct{}

func init() {
	dialect.Register(3, OracleGrammar{})
}

func (OracleGrammar) Name() string { return "oracle" }

func (OracleGrammar) Parse(script string) ([]dialect.CreateTable, error) {
	return parseScript(script, profile{
		name:        "oracle",
		rejectChars: "`[]",
		keywords:    []string{"PROMPT", "WHENEVER", "PURGE"},
		preprocess: func(s string) string {
			return replaceLoneLines(s, "/")
		},
	})
}
