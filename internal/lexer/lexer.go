package lexer

import (
	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/token"
)

// Lexer converts a source.File's content into a stream of Tokens. It is not
// restartable: tokens are produced strictly in source order, and the only
// lookahead it offers is the single pushed-back token buffered by Push.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token
}

// New creates a Lexer positioned at the start of file.
func New(file *source.File) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file)}
}

// Push injects tok back as the next token Next will return. Only one token
// of pushback is ever needed by the parser's lookahead.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look != nil {
		return *lx.look, nil
	}
	tok, err := lx.Next()
	if err != nil {
		return token.Token{}, err
	}
	lx.look = &tok
	return tok, nil
}

// Next consumes and returns the next token, or a *diag.Diagnostic if the
// input contains a byte that cannot start any token. Once EOF is reached,
// every subsequent call returns an EOF token.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		line, col := lx.cursor.Pos()
		return token.Token{Kind: token.EOF, Span: source.Span{Line: line, StartCol: col, EndCol: col}}, nil
	}

	ch := lx.cursor.Peek()
	switch {
	case isDigit(ch):
		return lx.scanInteger(), nil
	case isAlpha(ch):
		return lx.scanIdentOrKeyword(), nil
	default:
		return lx.scanPunct()
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanInteger() token.Token {
	start := lx.cursor.Mark()
	var value uint64
	for isDigit(lx.cursor.Peek()) {
		value = value*10 + uint64(lx.cursor.Bump()-'0')
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Integer, Span: sp, Text: lx.cursor.TextFrom(start), IntValue: value}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isAlnum(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.TextFrom(start)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Identifier, Span: sp, Text: text}
}

func (lx *Lexer) scanPunct() (token.Token, error) {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	emit := func(k token.Kind) (token.Token, error) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.cursor.TextFrom(start)}, nil
	}

	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '+':
		return emit(token.Plus)
	case '*':
		return emit(token.Star)
	case '=':
		return emit(token.Assign)
	case '\\':
		return emit(token.Backslash)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '.':
		return emit(token.Dot)
	case '-':
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			return emit(token.Arrow)
		}
		return emit(token.Minus)
	default:
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)},
			diag.Newf(diag.PhaseLex, diag.LexUnknownTokenStart, sp, "unexpected character %q", ch)
	}
}
