package cxpr

import (
	"errors"
	"strconv"
)

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenReal is a real number literal.
	tokenReal
	// tokenImag is an imaginary number literal, a number with an I suffix.
	tokenImag
	// tokenVar is an identifier resolved to a bound variable.
	tokenVar
	// tokenFunc is an identifier resolved to a native function or closure.
	tokenFunc
	// tokenOp is an infix operator.
	tokenOp
	// tokenOpen and tokenClose are ( and ).
	tokenOpen
	tokenClose
	// tokenSep is the , argument separator.
	tokenSep
)

// token is the classification of one lexeme. pos is the 1-based byte offset
// of the lexeme's first byte in the source. Tokens live no longer than the
// parser's one-token lookahead.
type token struct {
	kind tokenKind
	pos  int
	text string
	val  float64 // tokenReal, tokenImag
	sym  *symbol // tokenVar, tokenFunc
	op   byte    // tokenOp
}

func (t token) String() string {
	return strconv.Quote(t.text) + "@" + strconv.Itoa(t.pos)
}

// lexer produces exactly one token per call to next, advancing a byte
// cursor over the source. Identifiers resolve through the symbol table as
// they are scanned; a name that resolves to nothing is a lex error, not a
// token.
type lexer struct {
	src   string
	pos   int // 0-based offset of the next unread byte
	binds []symbol
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	tok := token{pos: l.pos + 1}
	if l.pos >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	c := l.src[l.pos]
	switch {
	case '0' <= c && c <= '9', c == '.':
		return l.scanNum(tok)
	case isAlpha(c):
		return l.scanIdent(tok)
	}
	l.pos++
	tok.text = l.src[tok.pos-1 : l.pos]
	switch c {
	case '+', '-', '*', '/', '^':
		tok.kind, tok.op = tokenOp, c
	case '(':
		tok.kind = tokenOpen
	case ')':
		tok.kind = tokenClose
	case ',':
		tok.kind = tokenSep
	default:
		return tok, &LexError{Off: tok.pos, Text: tok.text}
	}
	return tok, nil
}

// scanNum scans a decimal float literal and its optional I suffix. At least
// one mantissa digit is required, so a bare "." is an error rather than
// zero. An e or E counts as an exponent marker only when lookahead shows
// digits after it (optionally signed); otherwise the letter is left for the
// identifier scanner, matching strtod.
func (l *lexer) scanNum(tok token) (token, error) {
	start := l.pos
	dig := false
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		dig = true
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			dig = true
			l.pos++
		}
	}
	if !dig {
		tok.text = l.src[start:l.pos]
		return tok, &LexError{Off: tok.pos, Text: tok.text, Kind: "number"}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		k := l.pos + 1
		if k < len(l.src) && (l.src[k] == '+' || l.src[k] == '-') {
			k++
		}
		if k < len(l.src) && isDigit(l.src[k]) {
			l.pos = k + 1
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		}
	}
	tok.text = l.src[start:l.pos]
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The scan above admits only shapes ParseFloat accepts, so this
		// does not happen; out-of-range values round to ±Inf and keep v.
		return tok, &LexError{Off: tok.pos, Text: tok.text, Kind: "number"}
	}
	tok.val = v
	if l.pos < len(l.src) && l.src[l.pos] == 'I' {
		l.pos++
		tok.kind = tokenImag
		return tok, nil
	}
	tok.kind = tokenReal
	return tok, nil
}

// scanIdent scans a maximal run of alphanumeric and underscore bytes and
// resolves it.
func (l *lexer) scanIdent(tok token) (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdent(l.src[l.pos]) {
		l.pos++
	}
	tok.text = l.src[start:l.pos]
	sym := lookup(tok.text, l.binds)
	if sym == nil {
		return tok, &LexError{Off: tok.pos, Text: tok.text, Kind: "identifier"}
	}
	tok.sym = sym
	if sym.kind == symVariable {
		tok.kind = tokenVar
	} else {
		tok.kind = tokenFunc
	}
	return tok, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isIdent(c byte) bool { return isAlpha(c) || isDigit(c) || c == '_' }
