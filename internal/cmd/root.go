// Package cmd implements the CLI commands for datagen.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "datagen",
	Short: "Generate synthetic INSERT data for a table defined in a SQL script",
	Long: "datagen extracts a table's column schema from a SQL DDL script " +
		"(any of several dialects) and emits ready-to-run INSERT statements " +
		"with plausible synthetic values.",
	// Default to generate if no subcommand given but args are present
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(listRulesCmd)
}

// Execute runs the root command. Called from main().
func Execute() error {
	// Default to generate when first arg isn't a known command
	if len(os.Args) > 1 {
		firstArg := os.Args[1]
		knownCommands := map[string]bool{
			"generate": true, "inspect": true, "seed": true, "list-rules": true,
			"help": true, "completion": true,
		}
		if !knownCommands[firstArg] && firstArg != "--version" && firstArg != "--help" && firstArg != "-h" && firstArg != "-v" {
			// Prepend "generate" to args
			os.Args = append([]string{os.Args[0], "generate"}, os.Args[1:]...)
		}
	}
	return rootCmd.Execute()
}

// Script selection flags shared by generate, inspect, and seed commands.
type scriptFlags struct {
	Script string
	Table  string
}

func addScriptFlags(cmd *cobra.Command, f *scriptFlags) {
	cmd.Flags().StringVarP(&f.Script, "script", "s", "", "Path to the SQL DDL script")
	cmd.Flags().StringVarP(&f.Table, "table", "t", "", "Name of the table to extract")
}
