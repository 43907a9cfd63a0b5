package cxpr

// Func is a native function bound into an expression, either a builtin or a
// caller binding. It is a closed interface: the implementations are Func0
// through Func6 and Closure0 through Closure6, one per arity, so a call's
// argument count is checked by the type system rather than by convention.
type Func interface {
	arity() int
	closure() bool
	// call invokes the function on exactly arity evaluated arguments. ctx is
	// the binding's context for closures and ignored otherwise.
	call(ctx any, args []complex128) complex128
}

// Func0 through Func6 are plain functions of fixed arity. A Func0 is
// effectively a constant that is recomputed at each call.
type (
	Func0 func() complex128
	Func1 func(complex128) complex128
	Func2 func(complex128, complex128) complex128
	Func3 func(complex128, complex128, complex128) complex128
	Func4 func(complex128, complex128, complex128, complex128) complex128
	Func5 func(complex128, complex128, complex128, complex128, complex128) complex128
	Func6 func(complex128, complex128, complex128, complex128, complex128, complex128) complex128
)

// Closure0 through Closure6 are like Func0 through Func6 but additionally
// receive the binding's Context as their first parameter. The context is
// caller-owned; the tree never copies or releases it.
type (
	Closure0 func(ctx any) complex128
	Closure1 func(ctx any, a complex128) complex128
	Closure2 func(ctx any, a, b complex128) complex128
	Closure3 func(ctx any, a, b, c complex128) complex128
	Closure4 func(ctx any, a, b, c, d complex128) complex128
	Closure5 func(ctx any, a, b, c, d, e complex128) complex128
	Closure6 func(ctx any, a, b, c, d, e, f complex128) complex128
)

func (f Func0) arity() int { return 0 }
func (f Func1) arity() int { return 1 }
func (f Func2) arity() int { return 2 }
func (f Func3) arity() int { return 3 }
func (f Func4) arity() int { return 4 }
func (f Func5) arity() int { return 5 }
func (f Func6) arity() int { return 6 }

func (f Closure0) arity() int { return 0 }
func (f Closure1) arity() int { return 1 }
func (f Closure2) arity() int { return 2 }
func (f Closure3) arity() int { return 3 }
func (f Closure4) arity() int { return 4 }
func (f Closure5) arity() int { return 5 }
func (f Closure6) arity() int { return 6 }

func (f Func0) closure() bool { return false }
func (f Func1) closure() bool { return false }
func (f Func2) closure() bool { return false }
func (f Func3) closure() bool { return false }
func (f Func4) closure() bool { return false }
func (f Func5) closure() bool { return false }
func (f Func6) closure() bool { return false }

func (f Closure0) closure() bool { return true }
func (f Closure1) closure() bool { return true }
func (f Closure2) closure() bool { return true }
func (f Closure3) closure() bool { return true }
func (f Closure4) closure() bool { return true }
func (f Closure5) closure() bool { return true }
func (f Closure6) closure() bool { return true }

func (f Func0) call(_ any, _ []complex128) complex128 { return f() }
func (f Func1) call(_ any, v []complex128) complex128 { return f(v[0]) }
func (f Func2) call(_ any, v []complex128) complex128 { return f(v[0], v[1]) }
func (f Func3) call(_ any, v []complex128) complex128 { return f(v[0], v[1], v[2]) }
func (f Func4) call(_ any, v []complex128) complex128 { return f(v[0], v[1], v[2], v[3]) }
func (f Func5) call(_ any, v []complex128) complex128 { return f(v[0], v[1], v[2], v[3], v[4]) }
func (f Func6) call(_ any, v []complex128) complex128 {
	return f(v[0], v[1], v[2], v[3], v[4], v[5])
}

func (f Closure0) call(ctx any, _ []complex128) complex128 { return f(ctx) }
func (f Closure1) call(ctx any, v []complex128) complex128 { return f(ctx, v[0]) }
func (f Closure2) call(ctx any, v []complex128) complex128 { return f(ctx, v[0], v[1]) }
func (f Closure3) call(ctx any, v []complex128) complex128 { return f(ctx, v[0], v[1], v[2]) }
func (f Closure4) call(ctx any, v []complex128) complex128 {
	return f(ctx, v[0], v[1], v[2], v[3])
}
func (f Closure5) call(ctx any, v []complex128) complex128 {
	return f(ctx, v[0], v[1], v[2], v[3], v[4])
}
func (f Closure6) call(ctx any, v []complex128) complex128 {
	return f(ctx, v[0], v[1], v[2], v[3], v[4], v[5])
}

// Operator implementations. The grammar compiles every operator to an
// ordinary pure call node using one of these.

func add(a, b complex128) complex128 { return a + b }
func sub(a, b complex128) complex128 { return a - b }
func mul(a, b complex128) complex128 { return a * b }
func div(a, b complex128) complex128 { return a / b }
func neg(a complex128) complex128   { return -a }

// comma evaluates both operands and yields the right one.
func comma(_, b complex128) complex128 { return b }
