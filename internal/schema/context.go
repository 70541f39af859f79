package schema

import (
	"regexp"

	"github.com/AleLoredo/datagen/internal/dialect"
)

var (
	reUseDatabase    = regexp.MustCompile(`(?i)USE\s+([a-zA-Z0-9_\[\]` + "`" + `"']+)`)
	reCreateDatabase = regexp.MustCompile(`(?i)CREATE\s+DATABASE\s+([a-zA-Z0-9_\[\]` + "`" + `"']+)`)
)

// DetectDatabase extracts a database name from the first USE statement, or
// failing that the first CREATE DATABASE statement. Returns "" when neither
// is present. Purely advisory: the result only prefixes emitted output.
func DetectDatabase(script string) string {
	if m := reUseDatabase.FindStringSubmatch(script); m != nil {
		return dialect.Unquote(m[1])
	}
	if m := reCreateDatabase.FindStringSubmatch(script); m != nil {
		return dialect.Unquote(m[1])
	}
	return ""
}
