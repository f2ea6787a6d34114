package emit

import (
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
	"github.com/wasmforge/forge/wasm/internal/binary"
)

func writeTypeSection(w *binary.Writer, ctx *moduleCtx) {
	if len(ctx.types.order) == 0 {
		return
	}
	payload := binary.NewWriter()
	binary.Vec(payload, ctx.types.order, func(p *binary.Writer, sig signature) {
		p.Byte(wasm.FuncTypeByte)
		binary.Vec(p, sig.Params, func(p *binary.Writer, t wasm.ValType) { p.Byte(byte(t)) })
		binary.Vec(p, sig.Results, func(p *binary.Writer, t wasm.ValType) { p.Byte(byte(t)) })
	})
	binary.Section(w, wasm.SectionType, payload.Bytes())
}

func writeImportSection(w *binary.Writer, ctx *moduleCtx) {
	total := len(ctx.importedFuncs) + len(ctx.importedTables) + len(ctx.importedMems) + len(ctx.importedGlobals)
	if total == 0 {
		return
	}
	payload := binary.NewWriter()
	payload.WriteU32(uint32(total))
	writeImportGroup(payload, ctx.importedFuncs, func(p *binary.Writer, n *ir.Node) {
		p.Byte(wasm.KindFunc)
		p.WriteU32(ctx.types.intern(ctx.funcSig[n.Name]))
	})
	writeImportGroup(payload, ctx.importedTables, func(p *binary.Writer, n *ir.Node) {
		p.Byte(wasm.KindTable)
		p.Byte(byte(n.Desc.ElemType))
		writeLimits(p, n.Desc)
	})
	writeImportGroup(payload, ctx.importedMems, func(p *binary.Writer, n *ir.Node) {
		p.Byte(wasm.KindMemory)
		writeLimits(p, n.Desc)
	})
	writeImportGroup(payload, ctx.importedGlobals, func(p *binary.Writer, n *ir.Node) {
		p.Byte(wasm.KindGlobal)
		p.Byte(byte(n.Desc.GlobalType))
		if n.Desc.Mutable {
			p.Byte(1)
		} else {
			p.Byte(0)
		}
	})
	binary.Section(w, wasm.SectionImport, payload.Bytes())
}

func writeImportGroup(p *binary.Writer, nodes []*ir.Node, writeDesc func(*binary.Writer, *ir.Node)) {
	for _, n := range nodes {
		p.WriteName(n.ModuleName)
		p.WriteName(n.FieldName)
		writeDesc(p, n)
	}
}

func writeLimits(p *binary.Writer, desc *ir.ImportDesc) {
	flags := byte(0)
	if desc.HasMax {
		flags |= wasm.LimitsHasMax
	}
	if desc.Shared {
		flags |= wasm.LimitsShared
	}
	p.Byte(flags)
	p.WriteU32(desc.Min)
	if desc.HasMax {
		p.WriteU32(desc.Max)
	}
}

func writeFunctionSection(w *binary.Writer, ctx *moduleCtx) {
	if len(ctx.funcs) == 0 {
		return
	}
	payload := binary.NewWriter()
	binary.Vec(payload, ctx.funcs, func(p *binary.Writer, fn *ir.Node) {
		p.WriteU32(ctx.types.intern(ctx.funcSig[fn.Name]))
	})
	binary.Section(w, wasm.SectionFunction, payload.Bytes())
}

func writeTableSection(w *binary.Writer, ctx *moduleCtx) {
	// Module-owned tables have no IR constructor (only ImportTable); the
	// section is always empty and therefore omitted.
}

func writeMemorySection(w *binary.Writer, ctx *moduleCtx) {
	if len(ctx.memories) == 0 {
		return
	}
	payload := binary.NewWriter()
	binary.Vec(payload, ctx.memories, func(p *binary.Writer, m *ir.Node) {
		writeLimits(p, m.Desc)
	})
	binary.Section(w, wasm.SectionMemory, payload.Bytes())
}

func writeGlobalSection(w *binary.Writer, ctx *moduleCtx) {
	// Module-owned globals have no IR constructor (only ImportGlobal); the
	// section is always empty and therefore omitted.
}

func writeExportSection(w *binary.Writer, ctx *moduleCtx) {
	type exportEntry struct {
		name string
		kind byte
		idx  uint32
	}
	var entries []exportEntry

	explicit := map[string]bool{}
	for _, e := range ctx.exports {
		explicit[e.FieldName] = true
		if idx, ok := ctx.funcIndex[e.FieldName]; ok {
			entries = append(entries, exportEntry{e.Name, wasm.KindFunc, idx})
		} else if idx, ok := ctx.memoryIndex[e.FieldName]; ok {
			entries = append(entries, exportEntry{e.Name, wasm.KindMemory, idx})
		} else if idx, ok := ctx.tableIndex[e.FieldName]; ok {
			entries = append(entries, exportEntry{e.Name, wasm.KindTable, idx})
		} else if idx, ok := ctx.globalIndex[e.FieldName]; ok {
			entries = append(entries, exportEntry{e.Name, wasm.KindGlobal, idx})
		}
	}

	// A func whose name doesn't start with "$_" is exported under its own
	// name unless an explicit export already covers it.
	for _, fn := range ctx.funcs {
		if explicit[fn.Name] {
			continue
		}
		if len(fn.Name) >= 2 && fn.Name[:2] == "$_" {
			continue
		}
		name := fn.Name
		if len(name) > 0 && name[0] == '$' {
			name = name[1:]
		}
		entries = append(entries, exportEntry{name, wasm.KindFunc, ctx.funcIndex[fn.Name]})
	}

	if len(entries) == 0 {
		return
	}
	payload := binary.NewWriter()
	binary.Vec(payload, entries, func(p *binary.Writer, e exportEntry) {
		p.WriteName(e.name)
		p.Byte(e.kind)
		p.WriteU32(e.idx)
	})
	binary.Section(w, wasm.SectionExport, payload.Bytes())
}

// writeCustomSections appends every custom section, name first then raw
// payload, in declaration order. The binary format permits a custom
// section anywhere; placing them last keeps the rest of the module's
// section order independent of how many are declared.
func writeCustomSections(w *binary.Writer, ctx *moduleCtx) {
	for _, n := range ctx.customSections {
		payload := binary.NewWriter()
		payload.WriteName(n.Name)
		data, _ := n.Value.([]byte)
		payload.WriteBytes(data)
		binary.Section(w, wasm.SectionCustom, payload.Bytes())
	}
}

func writeCodeSection(w *binary.Writer, ctx *moduleCtx, bodies [][]byte) {
	if len(bodies) == 0 {
		return
	}
	payload := binary.NewWriter()
	binary.Vec(payload, bodies, func(p *binary.Writer, body []byte) {
		p.WriteU32(uint32(len(body)))
		p.WriteBytes(body)
	})
	binary.Section(w, wasm.SectionCode, payload.Bytes())
}
