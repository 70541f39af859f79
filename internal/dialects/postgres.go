// PostgreSQL grammar: double-quoted identifiers, SERIAL and
// GENERATED AS IDENTITY columns.
package dialects

import "github.com/AleLoredo/datagen/internal/dialect"

// PostgresGrammar parses Postgres-flavored scripts. Backtick or
// square-bracket identifiers fail the whole script.
type PostgresGrammar struct{}

func init() {
	dialect.Register(2, PostgresGrammar{})
}

func (PostgresGrammar) Name() string { return "postgres" }

func (PostgresGrammar) Parse(script string) ([]dialect.CreateTable, error) {
	return parseScript(script, profile{
		name:        "postgres",
		rejectChars: "`[]",
		keywords:    []string{"DO", "COPY", "VACUUM", "ANALYZE"},
	})
}
