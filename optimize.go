package cxpr

// fold collapses pure all-constant subtrees into constants, bottom-up. It
// runs once after a successful parse and never again; evaluation does not
// re-optimize. A call folds only when it is pure and every child is, after
// folding, a constant, so variable references and impure closures pin their
// whole ancestor chain.
func (n *node) fold() {
	if n.kind != nodeCall {
		return
	}
	for _, a := range n.args {
		a.fold()
	}
	if !n.pure {
		return
	}
	for _, a := range n.args {
		if a.kind != nodeConst {
			return
		}
	}
	v := n.eval()
	*n = node{kind: nodeConst, value: v}
}
