package optimize

import "github.com/wasmforge/forge/ir"

// peephole applies algebraic identities to binary ops: x+0/0+x/x-0 and
// x<<0/x>>0 simplify to x for both integer and float add/sub; x*1/1*x
// simplify to x; an i32.mul with a zero operand becomes i32.const 0.
// Float multiply-by-zero is left alone (NaN/Inf semantics).
func peephole(n *ir.Node) *ir.Node {
	return bottomUp(n, peepholeNode)
}

func peepholeNode(n *ir.Node) *ir.Node {
	if len(n.Children) != 2 {
		return n
	}
	a, b := n.Children[0], n.Children[1]

	switch n.Type {
	case "i32.add", "i64.add", "f32.add", "f64.add":
		if isZero(b) {
			return a
		}
		if isZero(a) {
			return b
		}
	case "i32.sub", "i64.sub", "f32.sub", "f64.sub":
		if isZero(b) {
			return a
		}
	case "i32.shl", "i32.shr_s", "i32.shr_u", "i64.shl", "i64.shr_s", "i64.shr_u":
		if isZero(b) {
			return a
		}
	case "i32.mul", "i64.mul":
		if isOne(b) {
			return a
		}
		if isOne(a) {
			return b
		}
		if isZero(a) || isZero(b) {
			if n.Type == "i32.mul" {
				return ir.I32Const(0)
			}
		}
	case "f32.mul", "f64.mul":
		if isOne(b) {
			return a
		}
		if isOne(a) {
			return b
		}
	}
	return n
}

func isZero(n *ir.Node) bool {
	if !ir.IsConst(n) {
		return false
	}
	switch v := n.Value.(type) {
	case int32:
		return v == 0
	case int64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	}
	return false
}

func isOne(n *ir.Node) bool {
	if !ir.IsConst(n) {
		return false
	}
	switch v := n.Value.(type) {
	case int32:
		return v == 1
	case int64:
		return v == 1
	case float32:
		return v == 1
	case float64:
		return v == 1
	}
	return false
}
