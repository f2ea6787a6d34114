package optimize

import "github.com/wasmforge/forge/ir"

// foldConstants replaces binary ops whose two operands are both const
// nodes with a single const node holding the computed result. Only
// i32.add/sub/mul/div_s/shl/shr_s and f32.add/sub/mul/div are folded; no
// other type or operator is, and there is no propagation across locals.
func foldConstants(n *ir.Node) *ir.Node {
	return bottomUp(n, foldNode)
}

func foldNode(n *ir.Node) *ir.Node {
	if len(n.Children) != 2 {
		return n
	}
	a, b := n.Children[0], n.Children[1]
	if !ir.IsConst(a) || !ir.IsConst(b) {
		return n
	}

	av32, aIsI32 := a.Value.(int32)
	bv32, bIsI32 := b.Value.(int32)
	af32, aIsF32 := a.Value.(float32)
	bf32, bIsF32 := b.Value.(float32)

	switch n.Type {
	case "i32.add":
		return foldI32(n, av32, bv32, aIsI32 && bIsI32, func(x, y int32) int32 { return x + y })
	case "i32.sub":
		return foldI32(n, av32, bv32, aIsI32 && bIsI32, func(x, y int32) int32 { return x - y })
	case "i32.mul":
		return foldI32(n, av32, bv32, aIsI32 && bIsI32, func(x, y int32) int32 { return x * y })
	case "i32.div_s":
		if !aIsI32 || !bIsI32 || bv32 == 0 {
			return n
		}
		return foldI32(n, av32, bv32, true, func(x, y int32) int32 { return x / y })
	case "i32.shl":
		return foldI32(n, av32, bv32, aIsI32 && bIsI32, func(x, y int32) int32 { return x << (uint32(y) & 31) })
	case "i32.shr_s":
		return foldI32(n, av32, bv32, aIsI32 && bIsI32, func(x, y int32) int32 { return x >> (uint32(y) & 31) })

	case "f32.add":
		return foldF32(n, af32, bf32, aIsF32 && bIsF32, func(x, y float32) float32 { return x + y })
	case "f32.sub":
		return foldF32(n, af32, bf32, aIsF32 && bIsF32, func(x, y float32) float32 { return x - y })
	case "f32.mul":
		return foldF32(n, af32, bf32, aIsF32 && bIsF32, func(x, y float32) float32 { return x * y })
	case "f32.div":
		return foldF32(n, af32, bf32, aIsF32 && bIsF32, func(x, y float32) float32 { return x / y })
	}
	return n
}

func foldI32(n *ir.Node, a, b int32, ok bool, op func(x, y int32) int32) *ir.Node {
	if !ok {
		return n
	}
	return ir.I32Const(op(a, b))
}

func foldF32(n *ir.Node, a, b float32, ok bool, op func(x, y float32) float32) *ir.Node {
	if !ok {
		return n
	}
	return ir.F32Const(op(a, b))
}
