package models

import "testing"

func sampleReport() *Report {
	return NewReport("postgresql", "users", []Column{
		{Name: "id", DataType: "INT", Identity: true},
		{Name: "email", DataType: "VARCHAR(255)"},
		{Name: "created_at", DataType: "DATETIME"},
	})
}

func TestNewReportStampsTime(t *testing.T) {
	r := sampleReport()
	if r.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if r.Engine != "postgresql" || r.Table != "users" {
		t.Errorf("report = %+v", r)
	}
}

func TestGeneratedColumnsExcludeIdentity(t *testing.T) {
	cols := sampleReport().GeneratedColumns()
	if len(cols) != 2 {
		t.Fatalf("got %d columns, want 2: %+v", len(cols), cols)
	}
	if cols[0].Name != "email" || cols[1].Name != "created_at" {
		t.Errorf("order not preserved: %+v", cols)
	}
}

func TestIdentityColumns(t *testing.T) {
	cols := sampleReport().IdentityColumns()
	if len(cols) != 1 || cols[0].Name != "id" {
		t.Errorf("identity columns = %+v", cols)
	}
}

func TestIdentityNames(t *testing.T) {
	names := sampleReport().IdentityNames()
	if len(names) != 1 || names[0] != "id" {
		t.Errorf("identity names = %v", names)
	}
}

func TestIdentityNamesEmpty(t *testing.T) {
	r := NewReport("mysql", "t", []Column{{Name: "a", DataType: "INT"}})
	if names := r.IdentityNames(); len(names) != 0 {
		t.Errorf("identity names = %v, want none", names)
	}
}
