// Package reporter renders extraction reports into output formats.
package reporter

import (
	"fmt"

	"github.com/AleLoredo/datagen/internal/models"
)

// Render dispatches to the appropriate renderer based on format.
func Render(report *models.Report, format string) (string, error) {
	switch format {
	case "text":
		return RenderText(report), nil
	case "json":
		return RenderJSON(report), nil
	case "markdown":
		return RenderMarkdown(report), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}
