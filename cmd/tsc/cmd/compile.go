package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-tsc/internal/compiler"
	"github.com/spf13/cobra"
)

var (
	outputFile    string
	skipTypeCheck bool
)

// compileCmd is registered as an explicit alias of the root command's
// default action: "tsc file.ts" and "tsc compile file.ts" do the same
// thing.
var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a TypeScript/JavaScript file to JavaScript",
	Args:  cobra.ExactArgs(1),
	RunE:  compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	for _, fs := range []*cobra.Command{rootCmd, compileCmd} {
		fs.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input> with its extension replaced by .js)")
		fs.Flags().BoolVar(&skipTypeCheck, "skip-type-check", false, "run the parser and code generator only, skipping semantic analysis")
	}
}

func compileScript(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	isTypeScript := strings.EqualFold(filepath.Ext(filename), ".ts")

	if verbose {
		fmt.Fprintf(os.Stderr, "Compiling %s (TypeScript mode: %v)...\n", filename, isTypeScript)
	}

	output, diags := compiler.CompileWithOptions(source, isTypeScript, compiler.Options{SkipTypeCheck: skipTypeCheck})
	if len(diags) > 0 {
		renderDiagnostics(os.Stderr, source, diags)
		return fmt.Errorf("compilation failed with %d diagnostic(s)", len(diags))
	}

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".js"
		} else {
			outFile = filename + ".js"
		}
	}

	if err := os.WriteFile(outFile, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %d bytes to %s\n", len(output), outFile)
	}
	fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	return nil
}
