package cxpr

import "math/cmplx"

// The grammar, lowest to highest precedence:
//
//	list   := expr {"," expr}
//	expr   := term {("+" | "-") term}
//	term   := factor {("*" | "/") factor}
//	factor := power {"^" power}
//	power  := {("+" | "-")} base
//	base   := number | variable
//	        | func0 ["(" ")"] | func1 power
//	        | funcN "(" expr {"," expr} ")"
//	        | "(" list ")"
//
// Each binary loop builds leftward, so "^" is left associative, and the
// unary sign lives below "^", so -2^2 is (-2)^2. The comma of list is
// itself a binary operator yielding its right operand. A run of signs in
// power collapses to at most one negation.

// Expr is a compiled expression, ready to evaluate any number of times.
// A nil *Expr evaluates to NaN.
type Expr struct {
	n *node
}

// Compile parses src into an evaluable expression tree and folds its
// constant subexpressions. Identifiers resolve against bindings first and
// builtins second, so a binding may shadow a builtin name. Compilation is
// all or nothing: on failure the handle is nil and the error is an
// InputError locating the first unparseable byte.
func Compile(src string, bindings []Binding, opts ...Option) (*Expr, error) {
	cfg := config{limit: DefaultMaxDepth, fold: true}
	for _, o := range opts {
		cfg = o.option(cfg)
	}
	binds := make([]symbol, len(bindings))
	for i, b := range bindings {
		binds[i] = b.symbol()
	}
	p := parser{lex: &lexer{src: src, binds: binds}, limit: cfg.limit}
	if err := p.next(); err != nil {
		return nil, err
	}
	n, err := p.list()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, &TrailingError{Off: p.tok.pos, Text: p.tok.text}
	}
	if cfg.fold {
		n.fold()
	}
	return &Expr{n: n}, nil
}

// parser carries the token cursor and the depth limit for one compile.
// Lookahead is a single token and there is no backtracking.
type parser struct {
	lex   *lexer
	tok   token
	depth int
	limit int
}

func (p *parser) next() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) list() (*node, error) {
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenSep {
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.expr()
		if err != nil {
			return nil, err
		}
		n = opNode(Func2(comma), n, rhs)
	}
	return n, nil
}

func (p *parser) expr() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenOp && (p.tok.op == '+' || p.tok.op == '-') {
		fn := Func2(add)
		if p.tok.op == '-' {
			fn = Func2(sub)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = opNode(fn, n, rhs)
	}
	return n, nil
}

func (p *parser) term() (*node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenOp && (p.tok.op == '*' || p.tok.op == '/') {
		fn := Func2(mul)
		if p.tok.op == '/' {
			fn = Func2(div)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		n = opNode(fn, n, rhs)
	}
	return n, nil
}

func (p *parser) factor() (*node, error) {
	n, err := p.power()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenOp && p.tok.op == '^' {
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.power()
		if err != nil {
			return nil, err
		}
		n = opNode(Func2(cmplx.Pow), n, rhs)
	}
	return n, nil
}

func (p *parser) power() (*node, error) {
	sign := 1
	for p.tok.kind == tokenOp && (p.tok.op == '+' || p.tok.op == '-') {
		if p.tok.op == '-' {
			sign = -sign
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	n, err := p.base()
	if err != nil {
		return nil, err
	}
	if sign < 0 {
		n = opNode(Func1(neg), n)
	}
	return n, nil
}

func (p *parser) base() (*node, error) {
	if p.depth >= p.limit {
		return nil, &NestingError{Off: p.tok.pos, Limit: p.limit}
	}
	p.depth++
	defer func() { p.depth-- }()
	switch tok := p.tok; tok.kind {
	case tokenReal:
		if err := p.next(); err != nil {
			return nil, err
		}
		return constNode(complex(tok.val, 0)), nil
	case tokenImag:
		if err := p.next(); err != nil {
			return nil, err
		}
		return constNode(complex(0, tok.val)), nil
	case tokenVar:
		if err := p.next(); err != nil {
			return nil, err
		}
		return &node{kind: nodeVar, addr: tok.sym.addr}, nil
	case tokenFunc:
		return p.call(tok.sym, tok.text)
	case tokenOpen:
		if err := p.next(); err != nil {
			return nil, err
		}
		n, err := p.list()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenClose {
			return nil, closeErr(p.tok)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, &TokenError{Off: p.tok.pos, Text: p.tok.text}
}

// call parses a native call of any arity. Niladic functions take an
// optional empty pair of parentheses. Monadic functions take a bare power,
// with no parentheses required, so "sin x^2" is sin(x)^2 and "sin -x" is
// sin(-x). Higher arities require a parenthesized argument list with the
// exact argument count.
func (p *parser) call(sym *symbol, name string) (*node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	switch arity := sym.fn.arity(); arity {
	case 0:
		if p.tok.kind == tokenOpen {
			if err := p.next(); err != nil {
				return nil, err
			}
			if p.tok.kind != tokenClose {
				return nil, &ArityError{Off: p.tok.pos, Func: name, Len: 1}
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		return callNode(sym), nil
	case 1:
		arg, err := p.power()
		if err != nil {
			return nil, err
		}
		return callNode(sym, arg), nil
	default:
		if p.tok.kind != tokenOpen {
			return nil, &TokenError{Off: p.tok.pos, Text: p.tok.text}
		}
		args := make([]*node, 0, arity)
		for {
			if err := p.next(); err != nil {
				return nil, err
			}
			a, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.tok.kind != tokenSep {
				break
			}
			if len(args) == arity {
				return nil, &ArityError{Off: p.tok.pos, Func: name, Len: arity + 1}
			}
		}
		if p.tok.kind != tokenClose {
			return nil, closeErr(p.tok)
		}
		if len(args) != arity {
			return nil, &ArityError{Off: p.tok.pos, Func: name, Len: len(args)}
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return callNode(sym, args...), nil
	}
}

// closeErr describes a token found where ")" was required.
func closeErr(tok token) error {
	if tok.kind == tokenEOF {
		return &BracketError{Off: tok.pos}
	}
	return &TokenError{Off: tok.pos, Text: tok.text}
}
