package ir

import "github.com/wasmforge/forge/wasm"

// I32Const builds an "i32.const" leaf.
func I32Const(v int32) *Node {
	return &Node{Type: "i32.const", Value: v, ValueType: wasm.ValI32}
}

// I64Const builds an "i64.const" leaf.
func I64Const(v int64) *Node {
	return &Node{Type: "i64.const", Value: v, ValueType: wasm.ValI64}
}

// F32Const builds an "f32.const" leaf.
func F32Const(v float32) *Node {
	return &Node{Type: "f32.const", Value: v, ValueType: wasm.ValF32}
}

// F64Const builds an "f64.const" leaf.
func F64Const(v float64) *Node {
	return &Node{Type: "f64.const", Value: v, ValueType: wasm.ValF64}
}

// V128Const builds a "v128.const" leaf from its 16 raw lane bytes, in the
// order they appear in the binary encoding.
func V128Const(bytes [16]byte) *Node {
	return &Node{Type: "v128.const", Value: bytes, ValueType: wasm.ValV128}
}

// IsConst reports whether n is one of the scalar const leaves.
func IsConst(n *Node) bool {
	switch n.Type {
	case "i32.const", "i64.const", "f32.const", "f64.const", "v128.const":
		return true
	}
	return false
}
