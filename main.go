package main

import (
	"fmt"
	"os"

	"github.com/AleLoredo/datagen/internal/cmd"
	_ "github.com/AleLoredo/datagen/internal/dialects"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
