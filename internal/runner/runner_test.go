package runner

import (
	"errors"
	"strings"
	"testing"

	_ "github.com/AleLoredo/datagen/internal/dialects"
)

const usersScript = "USE shop;\n" +
	"CREATE TABLE users (\n" +
	"  id INT IDENTITY(1,1),\n" +
	"  email VARCHAR(255),\n" +
	"  created_at DATETIME\n" +
	");"

const productsScript = "CREATE TABLE products (name VARCHAR(80), price DECIMAL(10,2), qty INT);"

// -- Inspect -----------------------------------------------------------------------

func TestInspectReportsColumns(t *testing.T) {
	report, err := Inspect(Options{Script: usersScript, Engine: "postgresql", Table: "users"})
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(report.Columns) != 3 {
		t.Fatalf("got %d columns, want 3", len(report.Columns))
	}
	if !report.Columns[0].Identity {
		t.Error("id should be identity")
	}
	if report.Database != "shop" {
		t.Errorf("database = %q, want shop", report.Database)
	}
}

func TestInspectDatabaseOverride(t *testing.T) {
	report, err := Inspect(Options{Script: usersScript, Engine: "mysql", Table: "users", Database: "staging"})
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if report.Database != "staging" {
		t.Errorf("database = %q, want staging", report.Database)
	}
}

func TestInspectTableNotFound(t *testing.T) {
	_, err := Inspect(Options{Script: usersScript, Engine: "mysql", Table: "orders"})
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("err = %v, want ErrTableNotFound", err)
	}
}

// -- Statements --------------------------------------------------------------------

func TestStatementsRowCount(t *testing.T) {
	_, stmts, err := Statements(Options{Script: productsScript, Engine: "postgresql", Table: "products", Rows: 7, Seed: 1})
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	if len(stmts) != 7 {
		t.Fatalf("got %d statements, want 7", len(stmts))
	}
	for _, s := range stmts {
		if !strings.HasPrefix(s, "INSERT INTO products (name, price, qty) VALUES (") {
			t.Fatalf("unexpected statement shape: %q", s)
		}
	}
}

func TestStatementsUnknownEngine(t *testing.T) {
	_, _, err := Statements(Options{Script: productsScript, Engine: "sqlite", Table: "products", Rows: 1})
	if err == nil || !strings.Contains(err.Error(), "unknown engine") {
		t.Fatalf("err = %v", err)
	}
}

func TestStatementsIdentityOnlyTable(t *testing.T) {
	script := "CREATE TABLE counters (id INT IDENTITY(1,1));"
	_, _, err := Statements(Options{Script: script, Engine: "mssql", Table: "counters", Rows: 1})
	if err == nil || !strings.Contains(err.Error(), "no generatable columns") {
		t.Fatalf("err = %v", err)
	}
}

func TestStatementsSeedReproducible(t *testing.T) {
	opts := Options{Script: productsScript, Engine: "postgresql", Table: "products", Rows: 5, Seed: 99}
	_, first, err := Statements(opts)
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	_, second, err := Statements(opts)
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs:\n%q\n%q", i, first[i], second[i])
		}
	}
}

func TestStatementsOverride(t *testing.T) {
	opts := Options{
		Script:    productsScript,
		Engine:    "postgresql",
		Table:     "products",
		Rows:      3,
		Seed:      1,
		Overrides: map[string]string{"name": "email"},
	}
	_, stmts, err := Statements(opts)
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	for _, s := range stmts {
		if !strings.Contains(s, "@") {
			t.Fatalf("override not applied: %q", s)
		}
	}
}

func TestStatementsOverrideIgnoresIdentityColumns(t *testing.T) {
	opts := Options{
		Script:    usersScript,
		Engine:    "postgresql",
		Table:     "users",
		Rows:      2,
		Seed:      1,
		Overrides: map[string]string{"id": "integer"},
	}
	_, stmts, err := Statements(opts)
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	for _, s := range stmts {
		if strings.Contains(s, "(id") {
			t.Fatalf("identity column resurrected by override: %q", s)
		}
	}
}

func TestStatementsOverrideUnknownRule(t *testing.T) {
	opts := Options{
		Script:    productsScript,
		Engine:    "postgresql",
		Table:     "products",
		Rows:      1,
		Overrides: map[string]string{"name": "nope"},
	}
	if _, _, err := Statements(opts); err == nil || !strings.Contains(err.Error(), "unknown rule") {
		t.Fatalf("err = %v", err)
	}
}

// -- Run ---------------------------------------------------------------------------

func TestRunSkipsIdentityColumns(t *testing.T) {
	report, dump, err := Run(Options{Script: usersScript, Engine: "postgresql", Table: "users", Rows: 5, Seed: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(dump, "INSERT INTO users"); got != 5 {
		t.Errorf("got %d INSERTs, want 5", got)
	}
	if !strings.Contains(dump, "(email, created_at)") {
		t.Errorf("identity column leaked into column list:\n%s", dump)
	}
	if !strings.Contains(dump, "Skipped identity columns: id") {
		t.Errorf("header missing identity note:\n%s", dump)
	}
	if names := report.IdentityNames(); len(names) != 1 || names[0] != "id" {
		t.Errorf("identity names = %v", names)
	}
}

func TestRunUseStatementFromScript(t *testing.T) {
	_, dump, err := Run(Options{Script: usersScript, Engine: "mysql", Table: "users", Rows: 1, Seed: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(dump, "USE shop;\n") {
		t.Errorf("dump missing USE statement:\n%s", dump)
	}
}

func TestRunMSSQLBoilerplate(t *testing.T) {
	_, dump, err := Run(Options{Script: usersScript, Engine: "mssql", Table: "users", Rows: 2, Seed: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(dump, "USE [shop];\nGO\n") {
		t.Errorf("dump missing bracketed USE:\n%s", dump)
	}
	if !strings.Contains(dump, "NOCHECK CONSTRAINT ALL") {
		t.Error("dump missing constraint preamble")
	}
	if !strings.Contains(dump, "WITH CHECK CHECK CONSTRAINT ALL") {
		t.Error("dump missing constraint postamble")
	}
}

func TestRunOracleCommit(t *testing.T) {
	_, dump, err := Run(Options{Script: productsScript, Engine: "oracle", Table: "products", Rows: 1, Seed: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasSuffix(dump, "COMMIT;\n") {
		t.Errorf("oracle dump must end with COMMIT:\n%s", dump)
	}
}

func TestRunNoDatabaseNoUse(t *testing.T) {
	_, dump, err := Run(Options{Script: productsScript, Engine: "postgresql", Table: "products", Rows: 1, Seed: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(dump, "USE ") {
		t.Errorf("unexpected USE statement:\n%s", dump)
	}
}

func TestRunTableNotFound(t *testing.T) {
	_, dump, err := Run(Options{Script: usersScript, Engine: "postgresql", Table: "missing", Rows: 1})
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("err = %v, want ErrTableNotFound", err)
	}
	if dump != "" {
		t.Errorf("dump produced despite missing table: %q", dump)
	}
}
