package cmd

import (
	"fmt"

	"github.com/AleLoredo/datagen/internal/classify"
	"github.com/AleLoredo/datagen/internal/dialect"
	"github.com/spf13/cobra"
)

var listRulesCmd = &cobra.Command{
	Use:   "list-rules",
	Short: "List the dialect trial order and classifier rules",
	Run:   runListRules,
}

func runListRules(cmd *cobra.Command, args []string) {
	fmt.Println("Dialect trial order:")
	for i, g := range dialect.All() {
		fmt.Printf("  %d. %s\n", i+1, g.Name())
	}

	fmt.Println("\nClassifier rules (first match wins):")
	for _, r := range classify.Rules() {
		fmt.Printf("  %-12s %s\n", r.Name, r.Description)
	}
}
