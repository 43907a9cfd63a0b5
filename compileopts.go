package cxpr

import "strconv"

// DefaultMaxDepth is the nesting depth Compile permits unless MaxDepth
// overrides it. Depth counts every base production entered, so parentheses,
// call arguments, and chains like "sin sin sin x" all contribute one level
// each. The limit exists to keep adversarially deep input from exhausting
// the stack during parsing or evaluation.
const DefaultMaxDepth = 64

// Option is an option for compiling.
type Option interface {
	option(config) config
}

type config struct {
	limit int
	fold  bool
}

type (
	depthopt int
	foldopt  struct{}
)

// MaxDepth sets the maximum nesting depth for a compile. Panics if n is not
// positive.
func MaxDepth(n int) Option {
	if n <= 0 {
		panic("cxpr: non-positive nesting depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) option(c config) config {
	c.limit = int(o)
	return c
}

// NoFold disables the constant folding pass, preserving the tree exactly as
// parsed. Mostly useful when inspecting trees with Dump.
func NoFold() Option {
	return foldopt{}
}

func (foldopt) option(c config) config {
	c.fold = false
	return c
}
