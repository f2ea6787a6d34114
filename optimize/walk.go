package optimize

import "github.com/wasmforge/forge/ir"

// bottomUp rewrites n by first recursively rewriting its Children (and,
// for "if" nodes, Consequent/Alternate), then applying transform to the
// node with its already-rewritten children. Every pass in this package
// is built from this shape per the optimizer's bottom-up contract.
func bottomUp(n *ir.Node, transform func(*ir.Node) *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}
	rewritten := *n
	rewritten.Children = rewriteList(n.Children, transform)
	if n.Type == "if" {
		rewritten.Consequent = rewriteList(n.Consequent, transform)
		rewritten.Alternate = rewriteList(n.Alternate, transform)
	}
	return transform(&rewritten)
}

func rewriteList(nodes []*ir.Node, transform func(*ir.Node) *ir.Node) []*ir.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*ir.Node, len(nodes))
	for i, c := range nodes {
		out[i] = bottomUp(c, transform)
	}
	return out
}
