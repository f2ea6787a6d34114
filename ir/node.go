// Package ir defines the uniform tree node used to build WebAssembly
// modules, and the constructor functions ("builders") that produce them.
//
// A Node is a single struct with optional fields rather than a closed set
// of variant types, because optimize, vectorize, and emit all need to walk
// children generically regardless of what kind of node they're looking at.
// The builder layer's only contract: a node, when walked by emit.Emit,
// yields the exact byte sequence of the WebAssembly instruction or
// structural form it represents.
package ir

import "github.com/wasmforge/forge/wasm"

// Node is the single IR node type. Which fields are meaningful depends on
// Type: most are leaf instructions using only Children/Name/Value/
// ValueType/Offset/Align, while module/func/import carry their own
// dedicated fields.
type Node struct {
	// Type names either a structural form ("module", "func", "import",
	// "export", "block", "loop", "if", ...) or a leaf instruction
	// ("i32.add", "local.get", "v128.load", ...). When Op is empty, Type
	// is also the operation name the opcode table is keyed on.
	Type string

	// Op, when set, is the concrete operation for an umbrella Type like
	// "binop"/"unop" (e.g. Type="binop", Op="i32.add"). Builders in this
	// package always set Type directly to the concrete operation name and
	// leave Op empty; Op exists so hand-built trees from other tools can
	// use the umbrella form without this package rejecting them.
	Op string

	// Children holds operand nodes in left-to-right stack order, or the
	// instruction list for block/loop.
	Children []*Node

	// Name is a symbolic identifier: function name, local name, branch
	// label, or import field, resolved to a numeric index at emission.
	Name string

	// Value carries a const's numeric payload, a v128.const's 16 raw
	// bytes, or a br_table's label list. call_indirect does not read it:
	// its signature comes from the func named by Name and its table from
	// FieldName.
	Value any

	// ValueType is meaningful for const (literal type), param/result/local
	// (declared type), and block/loop/if (declared block result type;
	// wasm.ValType(0) here means void/no result).
	ValueType wasm.ValType

	// Offset and Align are a memarg. Align is a power-of-two byte count,
	// not its log2 — emit converts to log2 when it writes the immediate.
	Offset, Align uint32

	// Params, Results, Locals are present only on Type == "func". Param
	// and local names share one numeric index space, params first.
	Params  []Local
	Results []wasm.ValType
	Locals  []Local

	// Consequent and Alternate are present only on Type == "if"; the
	// condition is Children[0].
	Consequent []*Node
	Alternate  []*Node

	// ModuleName is present only on Type == "import". FieldName is an
	// import's or export's field name, or the table name of call_indirect,
	// table.copy and table.init. Desc is present on import and memory.
	ModuleName string
	FieldName  string
	Desc       *ImportDesc
}

// OpName returns the operation name the opcode table is keyed on: Op when
// set, otherwise Type.
func (n *Node) OpName() string {
	if n.Op != "" {
		return n.Op
	}
	return n.Type
}

// Local is one entry of a func's Params or Locals: a name (used by
// local.get/set/tee to resolve to this entry's index) and its declared
// type.
type Local struct {
	Name string
	Type wasm.ValType
}

// DescKind discriminates an import's descriptor.
type DescKind byte

const (
	DescFunc DescKind = iota
	DescTable
	DescMemory
	DescGlobal
)

// ImportDesc is the kind-specific descriptor of an import node.
type ImportDesc struct {
	Kind DescKind

	// Func
	Params  []wasm.ValType
	Results []wasm.ValType

	// Table
	ElemType wasm.ValType

	// Table / Memory limits
	Min    uint32
	Max    uint32
	HasMax bool
	Shared bool // memory only

	// Global
	GlobalType wasm.ValType
	Mutable    bool
}

// CallIndirectImm holds a signature's type index and a table index. emit
// does not read it from a call_indirect node's Value; it resolves both from
// the node's Name and FieldName.
type CallIndirectImm struct {
	TypeIdx  uint32
	TableIdx uint32
}
