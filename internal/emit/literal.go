// Package emit renders generated values as SQL literals and assembles the
// INSERT statements and engine-specific dump boilerplate around them.
package emit

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders a value as a SQL literal for the target engine.
//
// The bool case must stay ahead of the numeric cases: mssql renders
// booleans as 1/0 and a bool must never reach numeric formatting.
func FormatValue(v any, engine string) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if engine == "mssql" {
			if val {
				return "1"
			}
			return "0"
		}
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		escaped := strings.ReplaceAll(fmt.Sprint(val), "'", "''")
		return "'" + escaped + "'"
	}
}
