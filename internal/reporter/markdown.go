package reporter

import (
	"fmt"
	"strings"

	"github.com/AleLoredo/datagen/internal/models"
)

// RenderMarkdown renders the report as a Markdown document.
func RenderMarkdown(report *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Table `%s`\n\n", report.Table)
	fmt.Fprintf(&b, "- Engine: %s\n", report.Engine)
	if report.Database != "" {
		fmt.Fprintf(&b, "- Database: %s\n", report.Database)
	}
	fmt.Fprintf(&b, "- Columns: %d (%d generated, %d identity)\n\n",
		len(report.Columns), len(report.GeneratedColumns()), len(report.IdentityColumns()))

	b.WriteString("| Column | Type | Identity |\n")
	b.WriteString("|--------|------|----------|\n")
	for _, c := range report.Columns {
		identity := ""
		if c.Identity {
			identity = "yes (skipped)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Name, c.DataType, identity)
	}
	return b.String()
}
