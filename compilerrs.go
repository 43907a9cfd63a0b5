package cxpr

import "strconv"

// InputError is an error with position information. Every error returned by
// Compile implements InputError. Pos returns the 1-based byte offset of the
// token that caused the failure; it is never less than 1, even for an error
// at the first byte.
type InputError interface {
	error
	Pos() int
}

// LexError indicates an invalid token: a stray character, a malformed
// number, or an identifier that resolves to no binding and no builtin.
type LexError struct {
	// Off is the byte offset of the token.
	Off int
	// Text is the offending lexeme.
	Text string
	// Kind is "number", "identifier", or the empty string for a character
	// that starts no token at all.
	Kind string
}

func (err *LexError) Error() string {
	switch err.Kind {
	case "":
		return errpos(err.Off, "invalid token "+strconv.Quote(err.Text))
	case "identifier":
		return errpos(err.Off, "unknown identifier "+strconv.Quote(err.Text))
	default:
		return errpos(err.Off, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
	}
}

func (err *LexError) Pos() int { return err.Off }

// TokenError indicates a token that cannot begin or continue the production
// being parsed, including a missing operand at the end of the input.
type TokenError struct {
	// Off is the byte offset of the token.
	Off int
	// Text is the token, or the empty string at end of input.
	Text string
}

func (err *TokenError) Error() string {
	if err.Text == "" {
		return errpos(err.Off, "unexpected end of expression")
	}
	return errpos(err.Off, "unexpected token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int { return err.Off }

// BracketError indicates an open parenthesis that was never closed.
type BracketError struct {
	// Off is the byte offset at which the closing parenthesis was missed.
	Off int
}

func (err *BracketError) Error() string {
	return errpos(err.Off, "missing closing parenthesis")
}

func (err *BracketError) Pos() int { return err.Off }

// ArityError indicates a call with the wrong number of arguments.
type ArityError struct {
	// Off is the byte offset of the token that ended or overflowed the
	// argument list.
	Off int
	// Func is the name of the function being called.
	Func string
	// Len is the number of arguments the call supplied, counting the one
	// that overflowed if the list was too long.
	Len int
}

func (err *ArityError) Error() string {
	return errpos(err.Off, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *ArityError) Pos() int { return err.Off }

// TrailingError indicates input remaining after a syntactically complete
// expression.
type TrailingError struct {
	// Off is the byte offset of the first unconsumed token.
	Off int
	// Text is that token.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Off, "trailing input at "+strconv.Quote(err.Text))
}

func (err *TrailingError) Pos() int { return err.Off }

// NestingError indicates an expression nested more deeply than the
// compile's depth limit.
type NestingError struct {
	// Off is the byte offset of the token that went too deep.
	Off int
	// Limit is the depth limit in effect.
	Limit int
}

func (err *NestingError) Error() string {
	return errpos(err.Off, "expression nested deeper than "+strconv.Itoa(err.Limit)+" levels")
}

func (err *NestingError) Pos() int { return err.Off }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*NestingError)(nil)
)
