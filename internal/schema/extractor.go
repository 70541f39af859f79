// Package schema implements the column extraction core: a structured
// multi-dialect pass over the registered grammars, with a tolerant
// regex-and-tokenizer fallback when no grammar can make sense of the
// script. Both paths produce the same column descriptor list, so callers
// never see which one fired.
package schema

import (
	"regexp"
	"strings"

	"github.com/AleLoredo/datagen/internal/dialect"
	"github.com/AleLoredo/datagen/internal/models"
)

// Constraint markers that identify a server-generated column.
var identityMarkers = []string{"IDENTITY", "AUTO_INCREMENT", "SERIAL"}

// Clause-leading keywords discarded by the fallback pass: table-level
// constraints, not columns.
var fallbackConstraintKeywords = map[string]bool{
	"PRIMARY": true, "FOREIGN": true, "KEY": true, "CONSTRAINT": true, "INDEX": true,
}

// Extract recovers the column schema of the named table from raw DDL text.
// Table-name matching is case-insensitive and exact. An empty result means
// the table was not found; callers must treat that as fatal before any
// output is produced.
//
// Grammars are tried in registration order. A grammar that fails to parse
// the script is skipped silently; the first grammar that both parses and
// contains a matching CREATE TABLE wins. Only when no grammar matches does
// the fallback pass run.
func Extract(script, table string) []models.Column {
	for _, g := range dialect.All() {
		tables, err := g.Parse(script)
		if err != nil {
			continue
		}
		for _, ct := range tables {
			if strings.EqualFold(ct.Name, table) {
				return fromStructured(ct)
			}
		}
	}
	return extractFallback(script, table)
}

// fromStructured normalizes a grammar's raw parse into column descriptors.
// The identity scan covers the declared type as well: SERIAL is a type in
// Postgres, not a constraint.
func fromStructured(ct dialect.CreateTable) []models.Column {
	var cols []models.Column
	for _, c := range ct.Columns {
		cols = append(cols, models.Column{
			Name:     c.Name,
			DataType: c.DataType,
			Identity: hasIdentityMarker(c.DataType + " " + c.Constraints),
		})
	}
	return cols
}

// extractFallback locates the table body with a tolerant pattern that
// accepts any of the dialects' quoting styles, then tokenizes the body on
// top-level commas. A clause that does not tokenize into at least a name is
// skipped rather than failing the extraction.
func extractFallback(script, table string) []models.Column {
	pattern := regexp.MustCompile(
		`(?is)CREATE\s+TABLE\s+["'` + "`" + `\[\]]?` + regexp.QuoteMeta(table) + `["'` + "`" + `\[\]]?\s*\((.*?)\);`)

	m := pattern.FindStringSubmatch(script)
	if m == nil {
		return nil
	}

	var cols []models.Column
	for _, clause := range dialect.SplitTopLevel(m[1]) {
		fields := strings.Fields(clause)
		if len(fields) == 0 {
			continue
		}
		if fallbackConstraintKeywords[strings.ToUpper(fields[0])] {
			continue
		}

		dataType := "TEXT"
		if len(fields) > 1 {
			dataType = fields[1]
		}
		cols = append(cols, models.Column{
			Name:     dialect.Unquote(fields[0]),
			DataType: dataType,
			Identity: hasIdentityMarker(clause),
		})
	}
	return cols
}

func hasIdentityMarker(text string) bool {
	upper := strings.ToUpper(text)
	for _, marker := range identityMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}
