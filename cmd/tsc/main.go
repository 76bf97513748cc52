// Command tsc is the CLI front end for the TypeScript/JavaScript-to-
// JavaScript compiler: it reads a source file, drives internal/compiler,
// and writes the emitted JavaScript next to the input.
package main

import (
	"os"

	"github.com/cwbudde/go-tsc/cmd/tsc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
