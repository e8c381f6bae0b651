// Where: cmd/create-portal/main.go
// What: CLI entrypoint.
// Why: Execute create-portal commands with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/openmfp/create-portal/internal/commands"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(commands.Run(os.Args[1:], deps))
}
