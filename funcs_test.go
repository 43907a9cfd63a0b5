package cxpr

import "testing"

func TestBuiltinsSorted(t *testing.T) {
	for i := 1; i < len(builtins); i++ {
		if builtins[i-1].name >= builtins[i].name {
			t.Errorf("builtin table out of order at %d: %q then %q", i, builtins[i-1].name, builtins[i].name)
		}
	}
}

func TestBuiltinsResolve(t *testing.T) {
	for i := range builtins {
		b := &builtins[i]
		got := findBuiltin(b.name)
		if got != b {
			t.Errorf("findBuiltin(%q): want %p, got %p", b.name, b, got)
		}
		if !b.pure {
			t.Errorf("builtin %q is not marked pure", b.name)
		}
		if b.kind != symFunc {
			t.Errorf("builtin %q is not a function symbol", b.name)
		}
	}
	for _, name := range []string{"", "ln", "ncr", "npr", "fac", "zzz", "A", "z"} {
		if got := findBuiltin(name); got != nil {
			t.Errorf("findBuiltin(%q): want nil, got %q", name, got.name)
		}
	}
}

func TestLookupOrder(t *testing.T) {
	x, y := complex(1, 0), complex(2, 0)
	binds := []symbol{
		{name: "v", kind: symVariable, addr: &x},
		{name: "v", kind: symVariable, addr: &y},
	}
	if got := lookup("v", binds); got == nil || got.addr != &x {
		t.Errorf("want the first binding to win, got %+v", got)
	}
	if got := lookup("sin", binds); got == nil || got.fn == nil {
		t.Errorf("builtin fallthrough failed: %+v", got)
	}
}

func TestFuncVariants(t *testing.T) {
	z := func(...complex128) complex128 { return 0 }
	fns := []struct {
		fn      Func
		arity   int
		closure bool
	}{
		{Func0(func() complex128 { return z() }), 0, false},
		{Func1(func(a complex128) complex128 { return z(a) }), 1, false},
		{Func2(func(a, b complex128) complex128 { return z(a, b) }), 2, false},
		{Func3(func(a, b, c complex128) complex128 { return z(a, b, c) }), 3, false},
		{Func4(func(a, b, c, d complex128) complex128 { return z(a, b, c, d) }), 4, false},
		{Func5(func(a, b, c, d, e complex128) complex128 { return z(a, b, c, d, e) }), 5, false},
		{Func6(func(a, b, c, d, e, f complex128) complex128 { return z(a, b, c, d, e, f) }), 6, false},
		{Closure0(func(any) complex128 { return z() }), 0, true},
		{Closure1(func(_ any, a complex128) complex128 { return z(a) }), 1, true},
		{Closure2(func(_ any, a, b complex128) complex128 { return z(a, b) }), 2, true},
		{Closure3(func(_ any, a, b, c complex128) complex128 { return z(a, b, c) }), 3, true},
		{Closure4(func(_ any, a, b, c, d complex128) complex128 { return z(a, b, c, d) }), 4, true},
		{Closure5(func(_ any, a, b, c, d, e complex128) complex128 { return z(a, b, c, d, e) }), 5, true},
		{Closure6(func(_ any, a, b, c, d, e, f complex128) complex128 { return z(a, b, c, d, e, f) }), 6, true},
	}
	for _, c := range fns {
		if got := c.fn.arity(); got != c.arity {
			t.Errorf("%T: want arity %d, got %d", c.fn, c.arity, got)
		}
		if got := c.fn.closure(); got != c.closure {
			t.Errorf("%T: want closure %v, got %v", c.fn, c.closure, got)
		}
	}
}

func TestFuncCall(t *testing.T) {
	if got := Func2(add).call(nil, []complex128{1, 2}); got != 3 {
		t.Errorf("add: want 3, got %v", got)
	}
	if got := Func2(comma).call(nil, []complex128{1, 2}); got != 2 {
		t.Errorf("comma: want the right operand, got %v", got)
	}
	if got := Func1(neg).call(nil, []complex128{complex(1, -2)}); got != complex(-1, 2) {
		t.Errorf("neg: want -1+2i, got %v", got)
	}
	sum := Closure2(func(ctx any, a, b complex128) complex128 {
		return ctx.(complex128) + a + b
	})
	if got := sum.call(complex(10, 0), []complex128{1, 2}); got != 13 {
		t.Errorf("closure: want 13, got %v", got)
	}
}
