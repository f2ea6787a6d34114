package optimize

import "github.com/wasmforge/forge/ir"

// unrollLoops finds loops matching the canonical counted-loop shape and
// unrolls each by factor, run once per Optimize invocation at level 3.
//
// Canonical shape: loop L { br_if OUT; ...body...; local.set i (i32.add
// (local.get i) (const step)); br L }. At least 4 children are required:
// the leading br_if, the trailing local.set/br pair, and a non-empty
// body between them.
func unrollLoops(n *ir.Node, factor int) *ir.Node {
	return bottomUp(n, func(c *ir.Node) *ir.Node { return unrollNode(c, factor) })
}

func unrollNode(n *ir.Node, factor int) *ir.Node {
	if n.Type != "loop" || factor <= 1 {
		return n
	}
	body := n.Children
	if len(body) < 4 {
		return n
	}

	brIf := body[0]
	if brIf.Type != "br_if" {
		return n
	}

	backBr := body[len(body)-1]
	if backBr.Type != "br" || backBr.Name != n.Name {
		return n
	}

	increment := body[len(body)-2]
	if increment.Type != "local.set" || len(increment.Children) != 1 {
		return n
	}
	if _, ok := canonicalStep(increment); !ok {
		return n
	}

	inner := body[1 : len(body)-2]
	unrolled := make([]*ir.Node, 0, 1+factor*(len(inner)+1)+1)
	unrolled = append(unrolled, brIf)
	unrolled = append(unrolled, inner...)
	for m := 1; m < factor; m++ {
		unrolled = append(unrolled, increment)
		unrolled = append(unrolled, inner...)
	}
	unrolled = append(unrolled, increment, backBr)

	cp := *n
	cp.Children = unrolled
	return &cp
}

// canonicalStep reports whether increment matches "local.set i (i32.add
// (local.get i) (i32.const step))" and returns step.
func canonicalStep(increment *ir.Node) (int32, bool) {
	add := increment.Children[0]
	if add.Type != "i32.add" || len(add.Children) != 2 {
		return 0, false
	}
	get, step := add.Children[0], add.Children[1]
	if get.Type != "local.get" || get.Name != increment.Name {
		return 0, false
	}
	if step.Type != "i32.const" {
		return 0, false
	}
	v, ok := step.Value.(int32)
	return v, ok
}
