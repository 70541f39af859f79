package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AleLoredo/datagen/internal/connection"
	"github.com/AleLoredo/datagen/internal/reporter"
	"github.com/AleLoredo/datagen/internal/runner"
	"github.com/spf13/cobra"
)

var seedScript scriptFlags
var seedEngine string
var seedDSN string
var seedRows int
var seedRandSeed int64
var seedVerbose bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate rows and apply them directly to a live database (postgresql, mysql)",
	RunE:  runSeed,
}

func init() {
	addScriptFlags(seedCmd, &seedScript)
	seedCmd.Flags().StringVarP(&seedEngine, "engine", "e", "postgresql", "Target engine (postgresql, mysql)")
	seedCmd.Flags().StringVar(&seedDSN, "dsn", "", "Connection string for the target database")
	seedCmd.Flags().IntVarP(&seedRows, "rows", "n", 100, "Number of rows to generate")
	seedCmd.Flags().Int64Var(&seedRandSeed, "seed", 0, "Random seed, 0 means time-based")
	seedCmd.Flags().BoolVarP(&seedVerbose, "verbose", "v", false, "Print the detected schema")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedScript.Script == "" {
		return errors.New("--script is required")
	}
	if seedScript.Table == "" {
		return errors.New("--table is required")
	}
	if seedDSN == "" {
		return errors.New("--dsn is required")
	}
	if seedEngine != "postgresql" && seedEngine != "mysql" {
		return fmt.Errorf("engine %q does not support live apply (use postgresql or mysql)", seedEngine)
	}

	data, err := os.ReadFile(seedScript.Script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	report, stmts, err := runner.Statements(runner.Options{
		Script: string(data),
		Engine: seedEngine,
		Table:  seedScript.Table,
		Rows:   seedRows,
		Seed:   seedRandSeed,
	})
	if err != nil {
		return err
	}

	if seedVerbose {
		text, _ := reporter.Render(report, "text")
		fmt.Fprint(os.Stderr, text)
	}

	ctx := context.Background()
	conn, err := connection.Connect(ctx, seedEngine, seedDSN)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	applied, err := connection.Apply(ctx, conn, stmts)
	if err != nil {
		return fmt.Errorf("applied %d of %d rows: %w", applied, len(stmts), err)
	}

	fmt.Fprintf(os.Stderr, "Applied %d rows to table '%s'\n", applied, seedScript.Table)
	return nil
}
