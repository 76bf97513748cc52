// Package diagnostics collects and renders compiler error messages with
// source context, following the lexer/parser/analyzer "report, don't
// panic" discipline used throughout the pipeline.
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-tsc/pkg/token"
)

// Severity classifies a Diagnostic. Only SeverityError is produced by this
// compiler today; the field exists because every stage's reporting
// convention carries one, leaving room for a future warning pass.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single reported problem at a specific source position.
type Diagnostic struct {
	Severity Severity
	Pos      token.Position
	Message  string
}

// Sink accumulates Diagnostics produced while compiling one source file.
// Each pipeline stage (Lexer, Parser, Analyzer) receives a *Sink by
// reference and only ever appends to it; callers downstream only read
// HasErrors to decide whether to halt.
type Sink struct {
	source      string
	diagnostics []Diagnostic
}

// NewSink creates a Sink bound to the given source text, used to recover
// the offending line when rendering.
func NewSink(source string) *Sink {
	return &Sink{source: source}
}

// Report records a new error-severity diagnostic at pos.
func (s *Sink) Report(pos token.Position, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Severity: SeverityError,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// ReportWarning records a new warning-severity diagnostic at pos.
func (s *Sink) ReportWarning(pos token.Position, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any error-severity diagnostic was recorded.
// Pipeline stages check this before proceeding to the next stage.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Diagnostics returns all recorded diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

func (s *Sink) sourceLine(line int) string {
	lines := strings.Split(s.source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Render writes every diagnostic to w in the form:
//
//	Error at line %d, column %d: %s
//	<source line>
//	<caret underline>
func (s *Sink) Render(w io.Writer) {
	for _, d := range s.diagnostics {
		label := "Error"
		if d.Severity == SeverityWarning {
			label = "Warning"
		}
		fmt.Fprintf(w, "%s at line %d, column %d: %s\n", label, d.Pos.Line, d.Pos.Column, d.Message)
		line := s.sourceLine(d.Pos.Line)
		if line == "" {
			continue
		}
		fmt.Fprintln(w, line)
		col := d.Pos.Column - 1
		if col < 0 {
			col = 0
		}
		fmt.Fprintln(w, strings.Repeat(" ", col)+"^")
	}
}
