package ir

// Splat builds a lane-broadcast leaf, e.g. Splat("i32x4.splat", x).
func Splat(op string, x *Node) *Node {
	return &Node{Type: op, Children: []*Node{x}}
}

// ExtractLane builds a lane-extraction leaf, e.g.
// ExtractLane("i32x4.extract_lane", v, 2).
func ExtractLane(op string, v *Node, lane byte) *Node {
	return &Node{Type: op, Children: []*Node{v}, Value: lane}
}

// ReplaceLane builds a lane-replacement node, e.g.
// ReplaceLane("i32x4.replace_lane", v, x, 2).
func ReplaceLane(op string, v, x *Node, lane byte) *Node {
	return &Node{Type: op, Children: []*Node{v, x}, Value: lane}
}

// Shuffle builds an "i8x16.shuffle" node selecting 16 output lanes from
// the concatenation of a and b's lanes.
func Shuffle(a, b *Node, lanes [16]byte) *Node {
	return &Node{Type: "i8x16.shuffle", Children: []*Node{a, b}, Value: lanes}
}

// Swizzle builds an "i8x16.swizzle" node: selects bytes of a at the
// indices given by b, zeroing out-of-range selections.
func Swizzle(a, b *Node) *Node {
	return &Node{Type: "i8x16.swizzle", Children: []*Node{a, b}}
}

// Bitselect builds a "v128.bitselect" node: selects bits from a where
// mask is 1, from b otherwise.
func Bitselect(a, b, mask *Node) *Node {
	return &Node{Type: "v128.bitselect", Children: []*Node{a, b, mask}}
}
