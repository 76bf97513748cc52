// Package compiler wires the lexer, parser, semantic analyzer, and code
// generator into the single core contract external callers use: source
// text in, generated JavaScript (or diagnostics) out. The pipeline is
// strictly linear and halts at the first stage that reports a diagnostic.
package compiler

import (
	"github.com/cwbudde/go-tsc/internal/codegen"
	"github.com/cwbudde/go-tsc/internal/diagnostics"
	"github.com/cwbudde/go-tsc/internal/lexer"
	"github.com/cwbudde/go-tsc/internal/parser"
	"github.com/cwbudde/go-tsc/internal/semantic"
)

// Options controls stages the pipeline is allowed to skip.
type Options struct {
	// SkipTypeCheck runs the parser and code generator only, bypassing
	// internal/semantic entirely.
	SkipTypeCheck bool
}

// Compile runs the full pipeline over source, stopping at the first stage
// that records any diagnostic: if the lexer/parser stage has errors,
// neither semantic analysis nor code generation run; if semantic
// analysis has errors (and it wasn't skipped), code generation does not
// run. isTypeScript selects which of the semantic analyzer's mode-gated
// checks apply (missing-annotation diagnostics, the `undefined`-
// assignability exception).
func Compile(source string, isTypeScript bool) (string, []diagnostics.Diagnostic) {
	return CompileWithOptions(source, isTypeScript, Options{})
}

// CompileWithOptions is Compile with the --skip-type-check escape hatch
// exposed.
func CompileWithOptions(source string, isTypeScript bool, opts Options) (string, []diagnostics.Diagnostic) {
	sink := diagnostics.NewSink(source)

	l := lexer.New(source, sink)
	p := parser.New(l, sink)
	program := p.ParseProgram()

	if sink.HasErrors() {
		return "", sink.Diagnostics()
	}

	if !opts.SkipTypeCheck {
		analyzer := semantic.NewAnalyzer(sink, isTypeScript)
		analyzer.Analyze(program)

		if sink.HasErrors() {
			return "", sink.Diagnostics()
		}
	}

	gen := codegen.NewGenerator()
	output := gen.Generate(program)
	return output, sink.Diagnostics()
}
