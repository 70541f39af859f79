// Package models defines the column descriptor and run report types shared
// across extraction, classification, and rendering.
package models

import "time"

// Column describes one column recovered from a CREATE TABLE statement.
//
// Name is the unquoted identifier. DataType is the raw dialect-specific type
// string as written in the script ("VARCHAR(255)", "NUMBER(10,2)"); it is
// never normalized, consumers substring-match against it. Identity marks
// server-generated columns (IDENTITY / AUTO_INCREMENT / SERIAL) which are
// excluded from data generation.
type Column struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Identity bool   `json:"identity"`
}

// Report is the top-level summary of one generation or inspection run.
// Columns are in declaration order; that order drives INSERT column order.
type Report struct {
	Engine    string    `json:"engine"`
	Table     string    `json:"table"`
	Database  string    `json:"database,omitempty"`
	Rows      int       `json:"rows"`
	Timestamp time.Time `json:"timestamp"`
	Columns   []Column  `json:"columns"`
}

// NewReport creates a Report stamped with the current time.
func NewReport(engine, table string, columns []Column) *Report {
	return &Report{
		Engine:    engine,
		Table:     table,
		Timestamp: time.Now().UTC(),
		Columns:   columns,
	}
}

// GeneratedColumns returns the columns that receive synthetic values,
// preserving declaration order.
func (r *Report) GeneratedColumns() []Column {
	var out []Column
	for _, c := range r.Columns {
		if !c.Identity {
			out = append(out, c)
		}
	}
	return out
}

// IdentityColumns returns the server-generated columns that are skipped.
func (r *Report) IdentityColumns() []Column {
	var out []Column
	for _, c := range r.Columns {
		if c.Identity {
			out = append(out, c)
		}
	}
	return out
}

// IdentityNames returns the names of skipped identity columns.
func (r *Report) IdentityNames() []string {
	var names []string
	for _, c := range r.IdentityColumns() {
		names = append(names, c.Name)
	}
	return names
}
