package cxpr

import (
	"strconv"
	"strings"
)

// node is a node in the compiled tree of an expression.
type node struct {
	kind nodeKind

	value complex128  // nodeConst
	addr  *complex128 // nodeVar: non-owning pointer into caller storage
	fn    Func        // nodeCall
	ctx   any         // nodeCall: closure context, caller-owned
	pure  bool        // nodeCall

	// args holds exactly fn's arity of children, evaluated left to right.
	// Every node has exactly one parent; constants and variable references
	// are always leaves.
	args []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // yield value
	nodeVar   // yield *addr, read at evaluation time
	nodeCall  // evaluate args left to right, then call fn
)

func constNode(v complex128) *node {
	return &node{kind: nodeConst, value: v}
}

// callNode builds a call on a resolved symbol, carrying its purity and
// closure context.
func callNode(sym *symbol, args ...*node) *node {
	return &node{kind: nodeCall, fn: sym.fn, ctx: sym.ctx, pure: sym.pure, args: args}
}

// opNode builds the pure call node the grammar's operators compile to.
func opNode(fn Func, args ...*node) *node {
	return &node{kind: nodeCall, fn: fn, pure: true, args: args}
}

// Dump returns an indented textual trace of the compiled tree, one node per
// line, for debugging. Constants print their value, variable references
// print "bound", and calls print f or c (for closures) with their arity.
func (e *Expr) Dump() string {
	if e == nil || e.n == nil {
		return ""
	}
	var b strings.Builder
	e.n.dump(&b, 0)
	return b.String()
}

func (n *node) dump(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteByte(' ')
	}
	switch n.kind {
	case nodeConst:
		b.WriteString(FormatNum(n.value))
	case nodeVar:
		b.WriteString("bound")
	case nodeCall:
		k := "f"
		if n.fn.closure() {
			k = "c"
		}
		b.WriteString(k + strconv.Itoa(len(n.args)))
	default:
		b.WriteByte('$')
	}
	b.WriteByte('\n')
	for _, a := range n.args {
		a.dump(b, depth+1)
	}
}
