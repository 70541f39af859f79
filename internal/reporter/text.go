package reporter

import (
	"fmt"
	"strings"

	"github.com/AleLoredo/datagen/internal/models"
)

// RenderText renders the report in the console listing style.
func RenderText(report *models.Report) string {
	var b strings.Builder

	if report.Database != "" {
		fmt.Fprintf(&b, "Detected database context: '%s'\n", report.Database)
	}
	fmt.Fprintf(&b, "Detected columns for table '%s':\n", report.Table)
	for _, c := range report.Columns {
		status := ""
		if c.Identity {
			status = " [SKIP - IDENTITY]"
		}
		fmt.Fprintf(&b, "  - %s (%s)%s\n", c.Name, c.DataType, status)
	}
	return b.String()
}
