package cxpr

import (
	"math"
	"strconv"
)

var nan = complex(math.NaN(), math.NaN())

// Eval walks the tree and returns its value. Bound variables are
// dereferenced at the moment of the call and sibling arguments evaluate
// strictly left to right, so external mutation of bound storage between
// evaluations is observed and ordered. Mutating bound storage while another
// goroutine evaluates is a data race the caller must prevent; evaluating a
// tree concurrently over unchanging storage is safe.
//
// Eval never fails: domain errors inside builtins surface as NaN components
// of the result, and a nil handle evaluates to NaN+NaN·i.
func (e *Expr) Eval() complex128 {
	if e == nil || e.n == nil {
		return nan
	}
	return e.n.eval()
}

func (n *node) eval() complex128 {
	switch n.kind {
	case nodeConst:
		return n.value
	case nodeVar:
		return *n.addr
	case nodeCall:
		var args [6]complex128
		for i, a := range n.args {
			args[i] = a.eval()
		}
		return n.fn.call(n.ctx, args[:len(n.args)])
	}
	return nan
}

// Interp compiles src with no bindings, evaluates it once, and discards the
// tree. On a compile failure the result is NaN+NaN·i alongside the error.
func Interp(src string) (complex128, error) {
	e, err := Compile(src, nil)
	if err != nil {
		return nan, err
	}
	return e.Eval(), nil
}

// FormatNum renders z as "re" when the imaginary part is exactly zero, and
// as "re+imI" or "re-imI" otherwise, with the shortest representation that
// round-trips.
func FormatNum(z complex128) string {
	re := strconv.FormatFloat(real(z), 'g', -1, 64)
	if imag(z) == 0 {
		return re
	}
	im := strconv.FormatFloat(imag(z), 'g', -1, 64)
	if im[0] == '-' {
		return re + im + "I"
	}
	return re + "+" + im + "I"
}
