package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AleLoredo/datagen/internal/reporter"
	"github.com/AleLoredo/datagen/internal/runner"
	"github.com/spf13/cobra"
)

var inspScript scriptFlags
var inspEngine string
var inspFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the schema that would be extracted, without generating data",
	RunE:  runInspect,
}

func init() {
	addScriptFlags(inspectCmd, &inspScript)
	inspectCmd.Flags().StringVarP(&inspEngine, "engine", "e", "postgresql", "Target engine (oracle, mssql, postgresql, mysql)")
	inspectCmd.Flags().StringVarP(&inspFormat, "format", "f", "text", "Report format (text, json, markdown)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspScript.Script == "" {
		return errors.New("--script is required")
	}
	if inspScript.Table == "" {
		return errors.New("--table is required")
	}

	data, err := os.ReadFile(inspScript.Script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	report, err := runner.Inspect(runner.Options{
		Script: string(data),
		Engine: inspEngine,
		Table:  inspScript.Table,
	})
	if err != nil {
		return err
	}

	out, err := reporter.Render(report, inspFormat)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
