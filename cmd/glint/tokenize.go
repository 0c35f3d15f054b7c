package main

import (
	"os"

	"github.com/spf13/cobra"

	"glint/internal/diag"
	"glint/internal/diagfmt"
	"glint/internal/lexer"
	"glint/internal/source"
	"glint/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.glint>",
	Short: "Tokenize a glint source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	fs := source.NewFileSet()
	id := fs.Add(args[0], string(content))
	file := fs.Get(id)
	lx := lexer.New(file)

	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			if d, ok := err.(*diag.Diagnostic); ok {
				opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2}
				if perr := diagfmt.Pretty(cmd.ErrOrStderr(), args[0], file, d, opts); perr != nil {
					return perr
				}
			}
			return err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens)
}
