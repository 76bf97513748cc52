package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/go-tsc/internal/diagnostics"
	"github.com/cwbudde/go-tsc/internal/lexer"
	"github.com/cwbudde/go-tsc/internal/parser"
	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a TypeScript/JavaScript file and display the AST",
	Long: `Parse source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse source text given on the command line; it is parsed as a
whole program, so an expression needs its trailing ';'.
Use --dump-ast to show the indented node tree instead of re-rendered source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse source text given on the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the indented node tree")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	sink := diagnostics.NewSink(input)
	l := lexer.New(input, sink)
	p := parser.New(l, sink)
	program := p.ParseProgram()

	if sink.HasErrors() {
		renderDiagnostics(os.Stderr, input, sink.Diagnostics())
		return fmt.Errorf("parsing failed with %d error(s)", len(sink.Diagnostics()))
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", prefix, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", prefix, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpASTNode(n.Expression, indent+1)
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryExpression:
		fmt.Printf("%sUnaryExpression (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Operand, indent+1)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", prefix, n.Value)
	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral: %g\n", prefix, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", prefix, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", prefix, n.Value)
	case *ast.ClassDeclaration:
		fmt.Printf("%sClassDeclaration: %s (%d members)\n", prefix, n.Name.Value, len(n.Members))
	case *ast.FunctionDeclaration:
		fmt.Printf("%sFunctionDeclaration: %s\n", prefix, n.Name.Value)
		dumpASTNode(n.Body, indent+1)
	default:
		fmt.Printf("%s%T: %s\n", prefix, node, node.String())
	}
}
