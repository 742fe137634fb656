package main

import (
	"fmt"
	"os"

	"intelliparse/cmd/iparse/cmd"
	"intelliparse/internal/config"
)

func main() {
	// Load .env if present so the API key is available to subcommands.
	// A broken .env is worth a warning but should not block non-API commands.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
