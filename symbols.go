package cxpr

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Binding supplies a caller-defined name for one compile. Exactly one of
// Value and Fn must be set; Compile panics otherwise.
type Binding struct {
	// Name is the identifier the expression refers to.
	Name string
	// Value binds a variable by address. The storage must outlive every
	// evaluation of the compiled expression; each evaluation dereferences
	// it anew, so mutating it between evaluations changes the result.
	Value *complex128
	// Fn binds a native function or closure.
	Fn Func
	// Context is passed as the first argument of a Closure Fn. The tree
	// holds it but never copies or releases it.
	Context any
	// Pure marks Fn as having no side effects and depending only on its
	// arguments, which makes calls with constant arguments eligible for
	// constant folding.
	Pure bool
}

type symkind int8

const (
	symVariable symkind = iota
	symFunc
	symClosure
)

// symbol is a resolved name: a bound variable address, or a native function
// with its purity and closure context.
type symbol struct {
	name string
	kind symkind
	addr *complex128
	fn   Func
	ctx  any
	pure bool
}

func (b Binding) symbol() symbol {
	switch {
	case b.Value != nil && b.Fn == nil:
		return symbol{name: b.Name, kind: symVariable, addr: b.Value}
	case b.Fn != nil && b.Value == nil:
		k := symFunc
		if b.Fn.closure() {
			k = symClosure
		}
		return symbol{name: b.Name, kind: k, fn: b.Fn, ctx: b.Context, pure: b.Pure}
	default:
		panic("cxpr: binding " + strconv.Quote(b.Name) + " must set exactly one of Value and Fn")
	}
}

// lookup resolves an identifier. Caller bindings are scanned first, in
// order, so a binding shadows a builtin of the same name.
func lookup(name string, binds []symbol) *symbol {
	for i := range binds {
		if binds[i].name == name {
			return &binds[i]
		}
	}
	return findBuiltin(name)
}

// findBuiltin binary-searches the sorted builtin table.
func findBuiltin(name string) *symbol {
	lo, hi := 0, len(builtins)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := strings.Compare(name, builtins[mid].name); {
		case c == 0:
			return &builtins[mid]
		case c > 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return nil
}

// builtins must stay sorted by name. All builtins are pure. Note there is
// no ln: log is the natural logarithm, and factorial and the combinatoric
// functions are omitted as they are undefined over the complex numbers.
var builtins = []symbol{
	fn0("I", func() complex128 { return complex(0, 1) }),
	fn1("abs", func(z complex128) complex128 { return complex(cmplx.Abs(z), 0) }),
	fn1("acos", cmplx.Acos),
	fn1("acosh", cmplx.Acosh),
	fn1("arg", func(z complex128) complex128 { return complex(cmplx.Phase(z), 0) }),
	fn1("asin", cmplx.Asin),
	fn1("asinh", cmplx.Asinh),
	fn1("atan", cmplx.Atan),
	fn1("atanh", cmplx.Atanh),
	fn1("conj", cmplx.Conj),
	fn1("cos", cmplx.Cos),
	fn1("cosh", cmplx.Cosh),
	fn0("e", func() complex128 { return complex(math.E, 0) }),
	fn1("exp", cmplx.Exp),
	fn1("imag", func(z complex128) complex128 { return complex(imag(z), 0) }),
	fn0("inf", func() complex128 { return complex(math.Inf(1), 0) }),
	fn1("log", cmplx.Log),
	fn0("pi", func() complex128 { return complex(math.Pi, 0) }),
	fn2("pow", cmplx.Pow),
	fn1("real", func(z complex128) complex128 { return complex(real(z), 0) }),
	fn1("sin", cmplx.Sin),
	fn1("sinh", cmplx.Sinh),
	fn1("sqrt", cmplx.Sqrt),
	fn1("tan", cmplx.Tan),
	fn1("tanh", cmplx.Tanh),
}

func fn0(name string, f func() complex128) symbol {
	return symbol{name: name, kind: symFunc, fn: Func0(f), pure: true}
}

func fn1(name string, f func(complex128) complex128) symbol {
	return symbol{name: name, kind: symFunc, fn: Func1(f), pure: true}
}

func fn2(name string, f func(complex128, complex128) complex128) symbol {
	return symbol{name: name, kind: symFunc, fn: Func2(f), pure: true}
}
