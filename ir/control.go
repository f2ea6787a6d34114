package ir

import "github.com/wasmforge/forge/wasm"

// Block builds a "block" node. result is the block's declared result
// type, or wasm.ValType(0) for void. name, if non-empty, is the label
// br/br_if/br_table resolve against.
func Block(name string, result wasm.ValType, body ...*Node) *Node {
	return &Node{Type: "block", Name: name, ValueType: result, Children: body}
}

// Loop builds a "loop" node. Unlike block, a loop's label is the target
// of its *start*, not its end.
func Loop(name string, result wasm.ValType, body ...*Node) *Node {
	return &Node{Type: "loop", Name: name, ValueType: result, Children: body}
}

// If builds an "if" node. cond is the i32 condition; consequent runs when
// it's non-zero, alternate (which may be nil) otherwise.
func If(name string, result wasm.ValType, cond *Node, consequent, alternate []*Node) *Node {
	return &Node{
		Type:       "if",
		Name:       name,
		ValueType:  result,
		Children:   []*Node{cond},
		Consequent: consequent,
		Alternate:  alternate,
	}
}

// Br builds an unconditional branch to label.
func Br(label string) *Node {
	return &Node{Type: "br", Name: label}
}

// BrIf builds a conditional branch to label; cond is the i32 condition
// operand.
func BrIf(label string, cond *Node) *Node {
	return &Node{Type: "br_if", Name: label, Children: []*Node{cond}}
}

// BrTable builds a "br_table" node: labels is the jump table indexed by
// index, defaultLabel is used when index is out of range.
func BrTable(labels []string, defaultLabel string, index *Node) *Node {
	return &Node{
		Type:     "br_table",
		Name:     defaultLabel,
		Value:    labels,
		Children: []*Node{index},
	}
}
