package main

import (
	"fmt"
	"os"

	"github.com/de-tools/data-explain/pkg/runtime/terminal"
	"github.com/de-tools/data-explain/pkg/services/report/formats"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; EXPLAIN_* variables may come from the shell.
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Registry: formats.NewRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
