package cxpr

import (
	"math"
	"testing"
)

func TestLex(t *testing.T) {
	x := complex(0, 0)
	binds := []symbol{{name: "x", kind: symVariable, addr: &x}}
	// A step with a nonzero errat expects next to fail with an InputError
	// at that offset; otherwise it expects the given token. Every case ends
	// with an implicit EOF check.
	type step struct {
		tok   token
		errat int
	}
	cases := []struct {
		src   string
		steps []step
	}{
		{"", nil},
		{" \t\r\n ", nil},
		{"0", []step{{tok: token{kind: tokenReal, pos: 1, text: "0", val: 0}}}},
		{"3.25", []step{{tok: token{kind: tokenReal, pos: 1, text: "3.25", val: 3.25}}}},
		{".5", []step{{tok: token{kind: tokenReal, pos: 1, text: ".5", val: 0.5}}}},
		{"1e3", []step{{tok: token{kind: tokenReal, pos: 1, text: "1e3", val: 1000}}}},
		{"1E-3", []step{{tok: token{kind: tokenReal, pos: 1, text: "1E-3", val: 0.001}}}},
		{"1e+3", []step{{tok: token{kind: tokenReal, pos: 1, text: "1e+3", val: 1000}}}},
		{"1e999", []step{{tok: token{kind: tokenReal, pos: 1, text: "1e999", val: math.Inf(1)}}}},
		// An exponent marker with no digits belongs to the next token.
		{"2e", []step{
			{tok: token{kind: tokenReal, pos: 1, text: "2", val: 2}},
			{tok: token{kind: tokenFunc, pos: 2, text: "e"}},
		}},
		// The I suffix tags the number imaginary; text excludes the suffix.
		{"2I", []step{{tok: token{kind: tokenImag, pos: 1, text: "2", val: 2}}}},
		{"3.5I", []step{{tok: token{kind: tokenImag, pos: 1, text: "3.5", val: 3.5}}}},
		{"2If", []step{
			{tok: token{kind: tokenImag, pos: 1, text: "2", val: 2}},
			{errat: 3},
		}},
		{".", []step{{errat: 1}}},
		{"1.2.3", []step{
			{tok: token{kind: tokenReal, pos: 1, text: "1.2", val: 1.2}},
			{tok: token{kind: tokenReal, pos: 4, text: ".3", val: 0.3}},
		}},
		{"2+.", []step{
			{tok: token{kind: tokenReal, pos: 1, text: "2", val: 2}},
			{tok: token{kind: tokenOp, pos: 2, text: "+", op: '+'}},
			{errat: 3},
		}},
		{"x", []step{{tok: token{kind: tokenVar, pos: 1, text: "x"}}}},
		{"pi", []step{{tok: token{kind: tokenFunc, pos: 1, text: "pi"}}}},
		{"foo", []step{{errat: 1}}},
		{"x$", []step{
			{tok: token{kind: tokenVar, pos: 1, text: "x"}},
			{errat: 2},
		}},
		{"1+2", []step{
			{tok: token{kind: tokenReal, pos: 1, text: "1", val: 1}},
			{tok: token{kind: tokenOp, pos: 2, text: "+", op: '+'}},
			{tok: token{kind: tokenReal, pos: 3, text: "2", val: 2}},
		}},
		{"^/*", []step{
			{tok: token{kind: tokenOp, pos: 1, text: "^", op: '^'}},
			{tok: token{kind: tokenOp, pos: 2, text: "/", op: '/'}},
			{tok: token{kind: tokenOp, pos: 3, text: "*", op: '*'}},
		}},
		{"pow(2, 3)", []step{
			{tok: token{kind: tokenFunc, pos: 1, text: "pow"}},
			{tok: token{kind: tokenOpen, pos: 4, text: "("}},
			{tok: token{kind: tokenReal, pos: 5, text: "2", val: 2}},
			{tok: token{kind: tokenSep, pos: 6, text: ","}},
			{tok: token{kind: tokenReal, pos: 8, text: "3", val: 3}},
			{tok: token{kind: tokenClose, pos: 9, text: ")"}},
		}},
	}

	for _, c := range cases {
		l := &lexer{src: c.src, binds: binds}
		for i, want := range c.steps {
			got, err := l.next()
			if want.errat != 0 {
				ie, ok := err.(InputError)
				if !ok {
					t.Errorf("scanning %q token %d: want error at %d, got token %v with error %v", c.src, i, want.errat, got, err)
					continue
				}
				if ie.Pos() != want.errat {
					t.Errorf("scanning %q token %d: want error at %d, got %v", c.src, i, want.errat, err)
				}
				continue
			}
			if err != nil {
				t.Errorf("scanning %q token %d: unexpected error %v", c.src, i, err)
				continue
			}
			if got.kind != want.tok.kind || got.pos != want.tok.pos || got.text != want.tok.text || got.op != want.tok.op {
				t.Errorf("scanning %q token %d: want %v kind %d, got %v kind %d", c.src, i, want.tok, want.tok.kind, got, got.kind)
			}
			if got.val != want.tok.val && !(math.IsNaN(got.val) && math.IsNaN(want.tok.val)) {
				t.Errorf("scanning %q token %d: want value %g, got %g", c.src, i, want.tok.val, got.val)
			}
		}
		got, err := l.next()
		if err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: want EOF after %d tokens, got %v with error %v", c.src, len(c.steps), got, err)
		}
	}
}

func TestLexResolution(t *testing.T) {
	x := complex(2, 0)
	binds := []symbol{
		{name: "x", kind: symVariable, addr: &x},
		{name: "pi", kind: symVariable, addr: &x},
	}
	l := &lexer{src: "x pi sin", binds: binds}
	got, err := l.next()
	if err != nil || got.kind != tokenVar || got.sym.addr != &x {
		t.Errorf("x: want variable bound to %p, got %v with error %v", &x, got, err)
	}
	// Bindings shadow builtins.
	got, err = l.next()
	if err != nil || got.kind != tokenVar || got.sym.addr != &x {
		t.Errorf("pi: want shadowing variable, got %v with error %v", got, err)
	}
	got, err = l.next()
	if err != nil || got.kind != tokenFunc || got.sym.fn.arity() != 1 {
		t.Errorf("sin: want monadic builtin, got %v with error %v", got, err)
	}
}
