// Package config loads the optional YAML generation profile. Command-line
// flags take precedence over profile values.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a generation profile: the run parameters plus optional
// per-column classifier rule overrides.
type Config struct {
	Engine   string       `yaml:"engine"`
	Table    string       `yaml:"table"`
	Rows     int          `yaml:"rows"`
	Seed     int64        `yaml:"seed"`
	Database string       `yaml:"database"`
	Output   string       `yaml:"output"`
	Columns  []ColumnRule `yaml:"columns"`
}

// ColumnRule forces a classifier rule for one column.
type ColumnRule struct {
	Name string `yaml:"name"`
	Rule string `yaml:"rule"`
}

var validEngines = map[string]bool{
	"oracle": true, "mssql": true, "postgresql": true, "mysql": true,
}

// Load reads and validates a profile file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Engine != "" && !validEngines[c.Engine] {
		return fmt.Errorf("engine must be one of oracle, mssql, postgresql, mysql; got %q", c.Engine)
	}
	if c.Rows < 0 {
		return errors.New("rows must not be negative")
	}
	for _, col := range c.Columns {
		if col.Name == "" {
			return errors.New("column override requires a name")
		}
		if col.Rule == "" {
			return fmt.Errorf("column %s override requires a rule", col.Name)
		}
	}
	return nil
}

// Overrides returns the column rule overrides as a name -> rule map.
func (c *Config) Overrides() map[string]string {
	if len(c.Columns) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.Columns))
	for _, col := range c.Columns {
		out[col.Name] = col.Rule
	}
	return out
}
