package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tsc [file]",
	Short: "A TypeScript/JavaScript-to-JavaScript compiler",
	Long: `tsc lexes, parses, type-checks, and emits JavaScript from a single
TypeScript or JavaScript source file.

Mode is selected by file extension: .ts runs the semantic analyzer in
TypeScript mode (missing type annotations are diagnosed); anything else
runs in JavaScript mode.

Running tsc with a file argument compiles it (the same action as
"tsc compile"). The "lex" and "parse" subcommands dump the front end's
intermediate output instead of running the full pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: compileScript,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
