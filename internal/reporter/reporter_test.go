package reporter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/AleLoredo/datagen/internal/models"
)

func sampleReport() *models.Report {
	r := models.NewReport("mssql", "users", []models.Column{
		{Name: "id", DataType: "INT", Identity: true},
		{Name: "email", DataType: "VARCHAR(255)"},
	})
	r.Database = "shop"
	r.Rows = 10
	return r
}

// -- dispatch ----------------------------------------------------------------------

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(sampleReport(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRenderDispatch(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown"} {
		out, err := Render(sampleReport(), format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if out == "" {
			t.Errorf("%s: empty output", format)
		}
	}
}

// -- text --------------------------------------------------------------------------

func TestRenderTextListing(t *testing.T) {
	out := RenderText(sampleReport())
	if !strings.Contains(out, "Detected database context: 'shop'") {
		t.Errorf("missing database line:\n%s", out)
	}
	if !strings.Contains(out, "Detected columns for table 'users':") {
		t.Errorf("missing table line:\n%s", out)
	}
	if !strings.Contains(out, "- id (INT) [SKIP - IDENTITY]") {
		t.Errorf("missing identity skip marker:\n%s", out)
	}
	if !strings.Contains(out, "- email (VARCHAR(255))") {
		t.Errorf("missing email line:\n%s", out)
	}
}

func TestRenderTextNoDatabase(t *testing.T) {
	r := sampleReport()
	r.Database = ""
	if strings.Contains(RenderText(r), "database context") {
		t.Error("database line rendered for empty database")
	}
}

// -- json --------------------------------------------------------------------------

func TestRenderJSONWellFormed(t *testing.T) {
	out := RenderJSON(sampleReport())

	var decoded struct {
		Meta struct {
			Tool    string `json:"tool"`
			Version string `json:"version"`
			Engine  string `json:"engine"`
			Table   string `json:"table"`
		} `json:"meta"`
		Columns []struct {
			Name    string `json:"name"`
			Skipped bool   `json:"skipped"`
		} `json:"columns"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if decoded.Meta.Tool != "datagen" || decoded.Meta.Table != "users" {
		t.Errorf("meta = %+v", decoded.Meta)
	}
	if len(decoded.Columns) != 2 || !decoded.Columns[0].Skipped || decoded.Columns[1].Skipped {
		t.Errorf("columns = %+v", decoded.Columns)
	}
}

// -- markdown ----------------------------------------------------------------------

func TestRenderMarkdownTable(t *testing.T) {
	out := RenderMarkdown(sampleReport())
	if !strings.Contains(out, "# Table `users`") {
		t.Errorf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "| id | INT | yes (skipped) |") {
		t.Errorf("missing identity row:\n%s", out)
	}
	if !strings.Contains(out, "Columns: 2 (1 generated, 1 identity)") {
		t.Errorf("missing summary line:\n%s", out)
	}
}
