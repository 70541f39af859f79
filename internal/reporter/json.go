package reporter

import (
	"encoding/json"

	"github.com/AleLoredo/datagen/internal/models"
)

type jsonReport struct {
	Meta    jsonMeta     `json:"meta"`
	Columns []jsonColumn `json:"columns"`
}

type jsonMeta struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Engine    string `json:"engine"`
	Table     string `json:"table"`
	Database  string `json:"database,omitempty"`
	Rows      int    `json:"rows"`
}

type jsonColumn struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Identity bool   `json:"identity"`
	Skipped  bool   `json:"skipped"`
}

// RenderJSON renders the report as a JSON string.
func RenderJSON(report *models.Report) string {
	data := jsonReport{
		Meta: jsonMeta{
			Tool:      "datagen",
			Version:   "0.1.0",
			Timestamp: report.Timestamp.Format("2006-01-02T15:04:05-07:00"),
			Engine:    report.Engine,
			Table:     report.Table,
			Database:  report.Database,
			Rows:      report.Rows,
		},
		Columns: make([]jsonColumn, 0, len(report.Columns)),
	}

	for _, c := range report.Columns {
		data.Columns = append(data.Columns, jsonColumn{
			Name:     c.Name,
			DataType: c.DataType,
			Identity: c.Identity,
			Skipped:  c.Identity,
		})
	}

	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}
