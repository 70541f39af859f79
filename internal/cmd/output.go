package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDumpPath is the output path used when none is given: <table>_dump.sql
// in the working directory.
func DefaultDumpPath(table string) string {
	return table + "_dump.sql"
}

// writeOutput writes the dump, creating parent directories as needed.
func writeOutput(content, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	return nil
}
