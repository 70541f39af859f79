package emit

import (
	"fmt"
	"strings"
)

// Engines supported for dump output.
var knownEngines = map[string]bool{
	"oracle": true, "mssql": true, "postgresql": true, "mysql": true,
}

// KnownEngine reports whether the engine name is one of
// oracle, mssql, postgresql, mysql.
func KnownEngine(engine string) bool {
	return knownEngines[engine]
}

// InsertStatement assembles one INSERT line from pre-formatted literals.
func InsertStatement(table string, columns, literals []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n",
		table, strings.Join(columns, ", "), strings.Join(literals, ", "))
}

// DumpHeader returns the comment block at the top of a dump file.
func DumpHeader(table, engine string, identityColumns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Synthetic data for table %s\n", table)
	fmt.Fprintf(&b, "-- Generated for engine: %s\n", engine)
	if len(identityColumns) > 0 {
		fmt.Fprintf(&b, "-- Skipped identity columns: %s\n", strings.Join(identityColumns, ", "))
	}
	b.WriteString("\n")
	return b.String()
}

// UseStatement returns the database-context prefix. mssql wants the name
// bracketed and a GO batch separator.
func UseStatement(database, engine string) string {
	if engine == "mssql" {
		return fmt.Sprintf("USE [%s];\nGO\n\n", database)
	}
	return fmt.Sprintf("USE %s;\n\n", database)
}

// Preamble returns engine-specific setup emitted before the INSERT rows.
// mssql disables constraints so synthetic FK values don't reject the load.
func Preamble(engine string) string {
	if engine == "mssql" {
		return "-- Disable constraints for synthetic data insertion\n" +
			"EXEC sp_msforeachtable 'ALTER TABLE ? NOCHECK CONSTRAINT ALL';\nGO\n\n"
	}
	return ""
}

// Postamble returns engine-specific teardown emitted after the INSERT rows.
func Postamble(engine string) string {
	switch engine {
	case "oracle":
		return "COMMIT;\n"
	case "mssql":
		return "\n-- Re-enable constraints\n" +
			"EXEC sp_msforeachtable 'ALTER TABLE ? WITH CHECK CHECK CONSTRAINT ALL';\nGO\n"
	default:
		return ""
	}
}
