package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AleLoredo/datagen/internal/config"
	"github.com/AleLoredo/datagen/internal/reporter"
	"github.com/AleLoredo/datagen/internal/runner"
	"github.com/spf13/cobra"
)

var genScript scriptFlags
var genEngine string
var genRows int
var genOutput string
var genDatabase string
var genSeed int64
var genConfig string
var genVerbose bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic data dump for one table",
	RunE:  runGenerate,
}

func init() {
	addScriptFlags(generateCmd, &genScript)
	generateCmd.Flags().StringVarP(&genEngine, "engine", "e", "postgresql", "Target engine (oracle, mssql, postgresql, mysql)")
	generateCmd.Flags().IntVarP(&genRows, "rows", "n", 100, "Number of rows to generate")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output dump path (default: <table>_dump.sql)")
	generateCmd.Flags().StringVar(&genDatabase, "db", "", "Target database name (default: detected from the script)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed, 0 means time-based")
	generateCmd.Flags().StringVar(&genConfig, "config", "", "YAML generation profile")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print the detected schema")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, output, err := buildRunOptions(cmd)
	if err != nil {
		return err
	}

	report, dump, err := runner.Run(opts)
	if err != nil {
		return err
	}

	if genVerbose {
		text, _ := reporter.Render(report, "text")
		fmt.Fprint(os.Stderr, text)
	}

	path := output
	if path == "" {
		path = DefaultDumpPath(opts.Table)
	}
	if err := writeOutput(dump, path); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Successfully generated %d rows for table '%s' in %s\n", opts.Rows, opts.Table, path)
	return nil
}

// buildRunOptions merges flags with the optional profile file; explicitly
// set flags win over profile values.
func buildRunOptions(cmd *cobra.Command) (runner.Options, string, error) {
	opts := runner.Options{
		Engine:   genEngine,
		Table:    genScript.Table,
		Rows:     genRows,
		Database: genDatabase,
		Seed:     genSeed,
	}
	scriptPath := genScript.Script
	output := genOutput

	if genConfig != "" {
		cfg, err := config.Load(genConfig)
		if err != nil {
			return opts, "", err
		}
		flags := cmd.Flags()
		if !flags.Changed("engine") && cfg.Engine != "" {
			opts.Engine = cfg.Engine
		}
		if !flags.Changed("table") && cfg.Table != "" {
			opts.Table = cfg.Table
		}
		if !flags.Changed("rows") && cfg.Rows != 0 {
			opts.Rows = cfg.Rows
		}
		if !flags.Changed("db") && cfg.Database != "" {
			opts.Database = cfg.Database
		}
		if !flags.Changed("seed") && cfg.Seed != 0 {
			opts.Seed = cfg.Seed
		}
		if output == "" {
			output = cfg.Output
		}
		opts.Overrides = cfg.Overrides()
	}

	if scriptPath == "" {
		return opts, "", errors.New("--script is required")
	}
	if opts.Table == "" {
		return opts, "", errors.New("--table is required")
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return opts, "", fmt.Errorf("read script: %w", err)
	}
	opts.Script = string(data)

	return opts, output, nil
}
