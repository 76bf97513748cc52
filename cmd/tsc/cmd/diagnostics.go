package cmd

import (
	"io"

	"github.com/cwbudde/go-tsc/internal/diagnostics"
)

// renderDiagnostics reconstructs a Sink around diags so it can reuse
// Sink.Render's source-line-and-caret formatting, rather than duplicating
// that logic in the CLI layer.
func renderDiagnostics(w io.Writer, source string, diags []diagnostics.Diagnostic) {
	sink := diagnostics.NewSink(source)
	for _, d := range diags {
		if d.Severity == diagnostics.SeverityWarning {
			sink.ReportWarning(d.Pos, "%s", d.Message)
		} else {
			sink.Report(d.Pos, "%s", d.Message)
		}
	}
	sink.Render(w)
}
