package ir

import "github.com/wasmforge/forge/opcode"

// MemArgOption overrides a load/store node's default memarg.
type MemArgOption func(*Node)

// WithOffset sets a load/store's constant address offset. Default 0.
func WithOffset(offset uint32) MemArgOption {
	return func(n *Node) { n.Offset = offset }
}

// WithAlign overrides a load/store's claimed alignment hint, in bytes
// (must be a power of two no larger than the access's natural alignment).
// Defaults to the access width's natural alignment.
func WithAlign(align uint32) MemArgOption {
	return func(n *Node) { n.Align = align }
}

// naturalAlign returns op's default memarg alignment, the byte width of
// the memory access it performs.
func naturalAlign(op string) uint32 {
	info, ok := opcode.Lookup(op)
	if !ok || info.Align == 0 {
		return 1
	}
	return info.Align
}

// Load builds a memory load leaf: op is a name like "i32.load" or
// "v128.load8_splat"; addr is the address operand.
func Load(op string, addr *Node, opts ...MemArgOption) *Node {
	n := &Node{Type: op, Children: []*Node{addr}, Align: naturalAlign(op)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Store builds a memory store node: op is a name like "i32.store"; addr
// and value are its two operands in stack order.
func Store(op string, addr, value *Node, opts ...MemArgOption) *Node {
	n := &Node{Type: op, Children: []*Node{addr, value}, Align: naturalAlign(op)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// MemorySize builds a "memory.size" leaf.
func MemorySize() *Node {
	return &Node{Type: "memory.size"}
}

// MemoryGrow builds a "memory.grow" node; delta is the page-count operand.
func MemoryGrow(delta *Node) *Node {
	return &Node{Type: "memory.grow", Children: []*Node{delta}}
}

// MemoryCopy builds a "memory.copy" node from destination, source, and
// length operands.
func MemoryCopy(dst, src, n *Node) *Node {
	return &Node{Type: "memory.copy", Children: []*Node{dst, src, n}}
}

// MemoryFill builds a "memory.fill" node from destination, fill-byte
// value, and length operands.
func MemoryFill(dst, value, n *Node) *Node {
	return &Node{Type: "memory.fill", Children: []*Node{dst, value, n}}
}

// MemoryInit builds a "memory.init" node reading from the data segment
// named segment into the destination/source/length operands.
func MemoryInit(segment string, dst, src, n *Node) *Node {
	return &Node{Type: "memory.init", Name: segment, Children: []*Node{dst, src, n}}
}

// DataDrop builds a "data.drop" node discarding the data segment named
// segment.
func DataDrop(segment string) *Node {
	return &Node{Type: "data.drop", Name: segment}
}

// TableGet builds a "table.get" node.
func TableGet(table string, index *Node) *Node {
	return &Node{Type: "table.get", Name: table, Children: []*Node{index}}
}

// TableSet builds a "table.set" node.
func TableSet(table string, index, value *Node) *Node {
	return &Node{Type: "table.set", Name: table, Children: []*Node{index, value}}
}

// TableSize builds a "table.size" node over the named table.
func TableSize(table string) *Node {
	return &Node{Type: "table.size", Name: table}
}

// TableGrow builds a "table.grow" node: fill value then delta count.
func TableGrow(table string, value, delta *Node) *Node {
	return &Node{Type: "table.grow", Name: table, Children: []*Node{value, delta}}
}

// TableFill builds a "table.fill" node: index, fill value, count.
func TableFill(table string, index, value, n *Node) *Node {
	return &Node{Type: "table.fill", Name: table, Children: []*Node{index, value, n}}
}

// TableCopy builds a "table.copy" node copying between src and dst
// tables: destination index, source index, length.
func TableCopy(dst, src string, dstIdx, srcIdx, n *Node) *Node {
	return &Node{
		Type:      "table.copy",
		Name:      dst,
		FieldName: src,
		Children:  []*Node{dstIdx, srcIdx, n},
	}
}

// TableInit builds a "table.init" node populating table from elem
// segment elem: destination index, source index, length.
func TableInit(table, elem string, dstIdx, srcIdx, n *Node) *Node {
	return &Node{Type: "table.init", Name: table, FieldName: elem, Children: []*Node{dstIdx, srcIdx, n}}
}

// ElemDrop builds an "elem.drop" node discarding the element segment
// named elem.
func ElemDrop(elem string) *Node {
	return &Node{Type: "elem.drop", Name: elem}
}
