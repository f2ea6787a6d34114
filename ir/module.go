package ir

import "github.com/wasmforge/forge/wasm"

// Module builds a "module" node from its top-level declarations: funcs,
// imports, and explicit exports, in the order they should be emitted.
func Module(decls ...*Node) *Node {
	return &Node{Type: "module", Children: decls}
}

// Func builds a "func" node. body is the instruction list making up the
// function. A func whose Name does not begin with "$_" is exported under
// its name (leading "$" stripped) unless an explicit Export node overrides
// it; see emit's export rule.
func Func(name string, params []Local, results []wasm.ValType, locals []Local, body ...*Node) *Node {
	return &Node{
		Type:     "func",
		Name:     name,
		Params:   params,
		Results:  results,
		Locals:   locals,
		Children: body,
	}
}

// Param declares one named, typed function parameter.
func Param(name string, t wasm.ValType) Local {
	return Local{Name: name, Type: t}
}

// Result declares one function result type.
func Result(t wasm.ValType) wasm.ValType {
	return t
}

// LocalDecl declares one named, typed function-local variable.
func LocalDecl(name string, t wasm.ValType) Local {
	return Local{Name: name, Type: t}
}

// ImportFunc builds an import node describing a function imported from
// moduleName.fieldName with the given signature.
func ImportFunc(moduleName, fieldName, name string, params, results []wasm.ValType) *Node {
	return &Node{
		Type:       "import",
		ModuleName: moduleName,
		FieldName:  fieldName,
		Name:       name,
		Desc:       &ImportDesc{Kind: DescFunc, Params: params, Results: results},
	}
}

// ImportMemory builds an import node describing a linear memory imported
// from moduleName.fieldName, sized in 64 KiB pages.
func ImportMemory(moduleName, fieldName, name string, min uint32, max uint32, hasMax, shared bool) *Node {
	return &Node{
		Type:       "import",
		ModuleName: moduleName,
		FieldName:  fieldName,
		Name:       name,
		Desc:       &ImportDesc{Kind: DescMemory, Min: min, Max: max, HasMax: hasMax, Shared: shared},
	}
}

// ImportTable builds an import node describing a table imported from
// moduleName.fieldName.
func ImportTable(moduleName, fieldName, name string, elemType wasm.ValType, min, max uint32, hasMax bool) *Node {
	return &Node{
		Type:       "import",
		ModuleName: moduleName,
		FieldName:  fieldName,
		Name:       name,
		Desc:       &ImportDesc{Kind: DescTable, ElemType: elemType, Min: min, Max: max, HasMax: hasMax},
	}
}

// ImportGlobal builds an import node describing a global imported from
// moduleName.fieldName.
func ImportGlobal(moduleName, fieldName, name string, t wasm.ValType, mutable bool) *Node {
	return &Node{
		Type:       "import",
		ModuleName: moduleName,
		FieldName:  fieldName,
		Name:       name,
		Desc:       &ImportDesc{Kind: DescGlobal, GlobalType: t, Mutable: mutable},
	}
}

// Export builds an explicit export node. name is the func/memory/table/
// global name being exported; asName is the exported name, which may
// differ from name.
func Export(asName, name string) *Node {
	return &Node{Type: "export", Name: asName, FieldName: name}
}

// Memory builds a "memory" node declaring a module-owned linear memory
// (as opposed to one imported via ImportMemory).
func Memory(name string, min, max uint32, hasMax, shared bool) *Node {
	return &Node{
		Type: "memory",
		Name: name,
		Desc: &ImportDesc{Kind: DescMemory, Min: min, Max: max, HasMax: hasMax, Shared: shared},
	}
}

// CustomSection builds a named custom section carrying raw payload bytes.
// The binary format allows a custom section anywhere in the module; emit
// always places it last, after Data, for a deterministic byte stream.
func CustomSection(name string, data []byte) *Node {
	return &Node{Type: "custom", Name: name, Value: data}
}
