package emit

import (
	"github.com/wasmforge/forge/errors"
	"github.com/wasmforge/forge/internal/log"
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
	"github.com/wasmforge/forge/wasm/internal/binary"

	"go.uber.org/zap"
)

// moduleCtx holds the index spaces resolved in the module pre-pass:
// which names map to which numeric index, shared by every func body
// emitted afterward.
type moduleCtx struct {
	types *typeTable

	funcIndex   map[string]uint32
	funcSig     map[string]signature
	tableIndex  map[string]uint32
	globalIndex map[string]uint32
	memoryIndex map[string]uint32

	importedFuncs   []*ir.Node
	importedTables  []*ir.Node
	importedMems    []*ir.Node
	importedGlobals []*ir.Node
	funcs           []*ir.Node
	memories        []*ir.Node
	exports         []*ir.Node
	customSections  []*ir.Node
}

// Emit serializes module, an ir.Node of Type "module", into a complete
// WebAssembly binary. It fails fast: if any func body cannot be encoded,
// no partial output is returned.
func Emit(module *ir.Node) ([]byte, error) {
	if module.Type != "module" {
		return nil, errors.MalformedControl(nil, "Emit requires a \"module\" node, got "+module.Type)
	}

	ctx := &moduleCtx{
		types:       newTypeTable(),
		funcIndex:   map[string]uint32{},
		funcSig:     map[string]signature{},
		tableIndex:  map[string]uint32{},
		globalIndex: map[string]uint32{},
		memoryIndex: map[string]uint32{},
	}
	if err := ctx.scan(module); err != nil {
		return nil, err
	}

	bodies := make([][]byte, len(ctx.funcs))
	for i, fn := range ctx.funcs {
		body, err := emitFuncBody(ctx, fn)
		if err != nil {
			return nil, err
		}
		bodies[i] = body
	}

	w := binary.NewWriter()
	w.WriteU32LE(wasm.Magic)
	w.WriteU32LE(wasm.Version)

	writeTypeSection(w, ctx)
	writeImportSection(w, ctx)
	writeFunctionSection(w, ctx)
	writeTableSection(w, ctx)
	writeMemorySection(w, ctx)
	writeGlobalSection(w, ctx)
	writeExportSection(w, ctx)
	writeCodeSection(w, ctx, bodies)
	writeCustomSections(w, ctx)

	log.Logger().Debug("emit: wrote module", zap.Int("bytes", w.Len()), zap.Int("funcs", len(ctx.funcs)))
	return w.Bytes(), nil
}

// scan runs the pre-pass: partitions top-level declarations, assigns
// function/table/memory/global index spaces (imports first, then
// module-owned declarations in order), and interns every declared func's
// signature into the type table.
func (ctx *moduleCtx) scan(module *ir.Node) error {
	for _, decl := range module.Children {
		switch decl.Type {
		case "import":
			switch decl.Desc.Kind {
			case ir.DescFunc:
				ctx.funcIndex[decl.Name] = uint32(len(ctx.importedFuncs))
				sig := signature{Params: decl.Desc.Params, Results: decl.Desc.Results}
				ctx.funcSig[decl.Name] = sig
				ctx.types.intern(sig)
				ctx.importedFuncs = append(ctx.importedFuncs, decl)
			case ir.DescTable:
				ctx.tableIndex[decl.Name] = uint32(len(ctx.importedTables))
				ctx.importedTables = append(ctx.importedTables, decl)
			case ir.DescMemory:
				ctx.memoryIndex[decl.Name] = uint32(len(ctx.importedMems))
				ctx.importedMems = append(ctx.importedMems, decl)
			case ir.DescGlobal:
				ctx.globalIndex[decl.Name] = uint32(len(ctx.importedGlobals))
				ctx.importedGlobals = append(ctx.importedGlobals, decl)
			}
		case "func":
			idx := uint32(len(ctx.importedFuncs) + len(ctx.funcs))
			ctx.funcIndex[decl.Name] = idx
			sig := signature{Params: localTypes(decl.Params), Results: decl.Results}
			ctx.funcSig[decl.Name] = sig
			ctx.types.intern(sig)
			ctx.funcs = append(ctx.funcs, decl)
		case "memory":
			ctx.memoryIndex[decl.Name] = uint32(len(ctx.importedMems) + len(ctx.memories))
			ctx.memories = append(ctx.memories, decl)
		case "export":
			ctx.exports = append(ctx.exports, decl)
		case "custom":
			ctx.customSections = append(ctx.customSections, decl)
		default:
			return errors.MalformedControl([]string{"module"}, "unexpected top-level declaration "+decl.Type)
		}
	}
	return nil
}

func localTypes(locals []ir.Local) []wasm.ValType {
	out := make([]wasm.ValType, len(locals))
	for i, l := range locals {
		out[i] = l.Type
	}
	return out
}

// resolveFuncIndex resolves a func reference by name, falling back to a
// bare integer literal when no declared or imported func has that name.
func (ctx *moduleCtx) resolveFuncIndex(path []string, name string) (uint32, error) {
	if idx, ok := ctx.funcIndex[name]; ok {
		return idx, nil
	}
	if idx, ok := numericLabel(name); ok {
		return idx, nil
	}
	return 0, errors.UnresolvedName(path, "function", name)
}

func (ctx *moduleCtx) resolveTableIndex(path []string, name string) (uint32, error) {
	if idx, ok := ctx.tableIndex[name]; ok {
		return idx, nil
	}
	if idx, ok := numericLabel(name); ok {
		return idx, nil
	}
	return 0, errors.UnresolvedName(path, "table", name)
}

func (ctx *moduleCtx) resolveGlobalIndex(path []string, name string) (uint32, error) {
	if idx, ok := ctx.globalIndex[name]; ok {
		return idx, nil
	}
	if idx, ok := numericLabel(name); ok {
		return idx, nil
	}
	return 0, errors.UnresolvedName(path, "global", name)
}
