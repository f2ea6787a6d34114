package emit

import (
	"strconv"

	"github.com/wasmforge/forge/errors"
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
	"github.com/wasmforge/forge/wasm/internal/binary"
)

// funcCtx is per-function emission state: the local name-to-index space
// and the label stack used to resolve br/br_if/br_table depths.
type funcCtx struct {
	mod *moduleCtx

	localIndex map[string]uint32
	labels     []string // innermost last
}

// emitFuncBody encodes one func's complete code-section entry: the
// compressed local declarations followed by its instruction stream and
// a closing 0x0B.
func emitFuncBody(mod *moduleCtx, fn *ir.Node) ([]byte, error) {
	fc := &funcCtx{mod: mod, localIndex: map[string]uint32{}}
	for i, p := range fn.Params {
		fc.localIndex[p.Name] = uint32(i)
	}
	for i, l := range fn.Locals {
		fc.localIndex[l.Name] = uint32(len(fn.Params) + i)
	}

	body := binary.NewWriter()
	writeLocalDecls(body, fn.Locals)

	path := []string{"func", fn.Name, "body"}
	for i, stmt := range fn.Children {
		if err := fc.emit(body, stmt, append(path, strconv.Itoa(i))); err != nil {
			return nil, err
		}
	}
	body.Byte(wasm.OpEnd)
	return body.Bytes(), nil
}

// writeLocalDecls writes the func body's local declarations, each run of
// consecutive same-typed locals compressed into one (count, type) entry.
func writeLocalDecls(w *binary.Writer, locals []ir.Local) {
	type run struct {
		count uint32
		typ   wasm.ValType
	}
	var runs []run
	for _, l := range locals {
		if len(runs) > 0 && runs[len(runs)-1].typ == l.Type {
			runs[len(runs)-1].count++
			continue
		}
		runs = append(runs, run{1, l.Type})
	}
	binary.Vec(w, runs, func(p *binary.Writer, r run) {
		p.WriteU32(r.count)
		p.Byte(byte(r.typ))
	})
}

func (fc *funcCtx) resolveLocalIndex(path []string, name string) (uint32, error) {
	if idx, ok := fc.localIndex[name]; ok {
		return idx, nil
	}
	if idx, ok := numericLabel(name); ok {
		return idx, nil
	}
	return 0, errors.UnresolvedName(path, "local", name)
}

// labelDepth resolves a br/br_if/br_table label to its branch depth: the
// distance from the innermost enclosing block/loop/if with that name. A
// bare non-negative integer is used directly when no name matches.
func (fc *funcCtx) labelDepth(path []string, label string) (uint32, error) {
	for i := len(fc.labels) - 1; i >= 0; i-- {
		if fc.labels[i] == label && label != "" {
			return uint32(len(fc.labels) - 1 - i), nil
		}
	}
	if idx, ok := numericLabel(label); ok {
		return idx, nil
	}
	return 0, errors.UnresolvedName(path, "label", label)
}

func (fc *funcCtx) pushLabel(name string) { fc.labels = append(fc.labels, name) }
func (fc *funcCtx) popLabel()             { fc.labels = fc.labels[:len(fc.labels)-1] }
