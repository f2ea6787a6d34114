package ir

// Unop builds a single-operand numeric or comparison leaf, e.g.
// Unop("f32.sqrt", x) or Unop("i32.eqz", x).
func Unop(op string, x *Node) *Node {
	return &Node{Type: op, Children: []*Node{x}}
}

// Binop builds a two-operand numeric or comparison leaf, e.g.
// Binop("i32.add", a, b).
func Binop(op string, a, b *Node) *Node {
	return &Node{Type: op, Children: []*Node{a, b}}
}

// LocalGet builds a "local.get" leaf referencing a param or local by name.
func LocalGet(name string) *Node {
	return &Node{Type: "local.get", Name: name}
}

// LocalSet builds a "local.set" node.
func LocalSet(name string, value *Node) *Node {
	return &Node{Type: "local.set", Name: name, Children: []*Node{value}}
}

// LocalTee builds a "local.tee" node: sets the local and leaves its value
// on the stack.
func LocalTee(name string, value *Node) *Node {
	return &Node{Type: "local.tee", Name: name, Children: []*Node{value}}
}

// GlobalGet builds a "global.get" leaf.
func GlobalGet(name string) *Node {
	return &Node{Type: "global.get", Name: name}
}

// GlobalSet builds a "global.set" node.
func GlobalSet(name string, value *Node) *Node {
	return &Node{Type: "global.set", Name: name, Children: []*Node{value}}
}

// Call builds a "call" node invoking the function named name with args in
// order.
func Call(name string, args ...*Node) *Node {
	return &Node{Type: "call", Name: name, Children: args}
}

// CallIndirect builds a "call_indirect" node: tableName is the table
// holding the function reference, typeName identifies the expected
// signature (resolved against the module's declared func types at
// emission), index is the table index operand, and args are the call
// arguments.
func CallIndirect(tableName, typeName string, index *Node, args ...*Node) *Node {
	children := make([]*Node, 0, len(args)+1)
	children = append(children, args...)
	children = append(children, index)
	return &Node{
		Type:      "call_indirect",
		Name:      typeName,
		FieldName: tableName,
		Children:  children,
		Value:     CallIndirectImm{},
	}
}

// Drop builds a "drop" node discarding the value operand.
func Drop(value *Node) *Node {
	return &Node{Type: "drop", Children: []*Node{value}}
}

// Select builds a "select" node: first two children are the candidate
// values, the third is the i32 condition.
func Select(a, b, cond *Node) *Node {
	return &Node{Type: "select", Children: []*Node{a, b, cond}}
}

// Return builds a "return" node. values holds zero or more result
// operands, matching the enclosing func's declared results.
func Return(values ...*Node) *Node {
	return &Node{Type: "return", Children: values}
}

// Unreachable builds an "unreachable" leaf.
func Unreachable() *Node {
	return &Node{Type: "unreachable"}
}

// Nop builds a "nop" leaf.
func Nop() *Node {
	return &Node{Type: "nop"}
}
