package diagfmt

import (
	"fmt"
	"io"

	"glint/internal/token"
)

// FormatTokensPretty writes one line per token: its index, kind, source
// text (if any), and span.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d\n", tok.Span.Line, tok.Span.StartCol, tok.Span.EndCol); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
