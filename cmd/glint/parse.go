package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glint/internal/diag"
	"glint/internal/diagfmt"
	"glint/internal/lexer"
	"glint/internal/parser"
	"glint/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.glint>",
	Short: "Parse a glint source file and report its declaration count",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	fs := source.NewFileSet()
	id := fs.Add(args[0], string(content))
	file := fs.Get(id)
	in := source.NewInterner()

	prog, err := parser.ParseProgram(lexer.New(file), in)
	if err != nil {
		if d, ok := err.(*diag.Diagnostic); ok {
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2}
			if perr := diagfmt.Pretty(cmd.ErrOrStderr(), args[0], file, d, opts); perr != nil {
				return perr
			}
		}
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d declarations\n", args[0], len(prog.Decls))
	return err
}
