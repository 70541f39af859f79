package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDumpPath(t *testing.T) {
	if got := DefaultDumpPath("users"); got != "users_dump.sql" {
		t.Errorf("got %q, want users_dump.sql", got)
	}
}

func TestWriteOutputCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "dump.sql")
	if err := writeOutput("INSERT INTO t (a) VALUES (1);\n", path); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "INSERT INTO t (a) VALUES (1);\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteOutputPlainName(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if err := writeOutput("x", "t_dump.sql"); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "t_dump.sql")); err != nil {
		t.Errorf("dump not written: %v", err)
	}
}
