package optimize

import "github.com/wasmforge/forge/ir"

// eliminateDeadCode drops every sibling following a return, br,
// unreachable, or br_table within a block/loop/func body. br_if is not a
// terminator and does not trigger the drop.
func eliminateDeadCode(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}
	cp := *n
	switch n.Type {
	case "block", "loop", "func":
		cp.Children = dceBody(n.Children)
	case "if":
		cp.Children = mapDCE(n.Children)
		cp.Consequent = dceBody(n.Consequent)
		cp.Alternate = dceBody(n.Alternate)
	default:
		cp.Children = mapDCE(n.Children)
	}
	return &cp
}

func dceBody(body []*ir.Node) []*ir.Node {
	if body == nil {
		return nil
	}
	out := make([]*ir.Node, 0, len(body))
	for _, c := range body {
		rewritten := eliminateDeadCode(c)
		out = append(out, rewritten)
		if isTerminator(rewritten) {
			break
		}
	}
	return out
}

func mapDCE(children []*ir.Node) []*ir.Node {
	if children == nil {
		return nil
	}
	out := make([]*ir.Node, len(children))
	for i, c := range children {
		out[i] = eliminateDeadCode(c)
	}
	return out
}

func isTerminator(n *ir.Node) bool {
	switch n.Type {
	case "return", "br", "unreachable", "br_table":
		return true
	}
	return false
}
