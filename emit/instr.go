package emit

import (
	"math/bits"
	"strconv"

	"github.com/wasmforge/forge/errors"
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/opcode"
	"github.com/wasmforge/forge/wasm"
	"github.com/wasmforge/forge/wasm/internal/binary"
)

// emit encodes one instruction node, dispatching by the three categories
// the format distinguishes: control flow, stack operators, and general
// operations.
func (fc *funcCtx) emit(w *binary.Writer, n *ir.Node, path []string) error {
	switch n.Type {
	case "block", "loop":
		return fc.emitBlockLike(w, n, path)
	case "if":
		return fc.emitIf(w, n, path)
	case "local.get", "local.tee":
		return fc.emitLocalRef(w, n, path)
	case "local.set":
		return fc.emitLocalSet(w, n, path)
	case "global.get":
		return fc.emitGlobalGet(w, n, path)
	case "global.set":
		return fc.emitGlobalSet(w, n, path)
	case "call":
		return fc.emitCall(w, n, path)
	case "call_indirect":
		return fc.emitCallIndirect(w, n, path)
	case "br":
		return fc.emitBr(w, n, path)
	case "br_if":
		return fc.emitBrIf(w, n, path)
	case "br_table":
		return fc.emitBrTable(w, n, path)
	case "drop":
		return fc.emitChildrenThenOpcode(w, n, path, wasm.OpDrop)
	case "select":
		return fc.emitChildrenThenOpcode(w, n, path, wasm.OpSelect)
	case "return":
		return fc.emitChildrenThenOpcode(w, n, path, wasm.OpReturn)
	case "unreachable":
		w.Byte(wasm.OpUnreachable)
		return nil
	case "nop":
		w.Byte(wasm.OpNop)
		return nil
	case "i32.const":
		v, ok := n.Value.(int32)
		if !ok {
			return errors.UnsupportedConstType(path, "i32")
		}
		w.Byte(wasm.OpI32Const)
		w.WriteS32(v)
		return nil
	case "i64.const":
		v, ok := n.Value.(int64)
		if !ok {
			return errors.UnsupportedConstType(path, "i64")
		}
		w.Byte(wasm.OpI64Const)
		w.WriteS64(v)
		return nil
	case "f32.const":
		v, ok := n.Value.(float32)
		if !ok {
			return errors.UnsupportedConstType(path, "f32")
		}
		w.Byte(wasm.OpF32Const)
		w.WriteF32(v)
		return nil
	case "f64.const":
		v, ok := n.Value.(float64)
		if !ok {
			return errors.UnsupportedConstType(path, "f64")
		}
		w.Byte(wasm.OpF64Const)
		w.WriteF64(v)
		return nil
	}
	return fc.emitGeneral(w, n, path)
}

func (fc *funcCtx) emitList(w *binary.Writer, nodes []*ir.Node, path []string) error {
	for i, n := range nodes {
		if err := fc.emit(w, n, append(path, strconv.Itoa(i))); err != nil {
			return err
		}
	}
	return nil
}

func blockTypeByte(t wasm.ValType) int32 {
	switch t {
	case wasm.ValI32:
		return wasm.BlockTypeI32
	case wasm.ValI64:
		return wasm.BlockTypeI64
	case wasm.ValF32:
		return wasm.BlockTypeF32
	case wasm.ValF64:
		return wasm.BlockTypeF64
	case wasm.ValV128:
		return wasm.BlockTypeV128
	default:
		return wasm.BlockTypeVoid
	}
}

func (fc *funcCtx) emitBlockLike(w *binary.Writer, n *ir.Node, path []string) error {
	op := wasm.OpBlock
	if n.Type == "loop" {
		op = wasm.OpLoop
	}
	w.Byte(op)
	w.WriteS32(blockTypeByte(n.ValueType))
	fc.pushLabel(n.Name)
	if err := fc.emitList(w, n.Children, path); err != nil {
		fc.popLabel()
		return err
	}
	fc.popLabel()
	w.Byte(wasm.OpEnd)
	return nil
}

func (fc *funcCtx) emitIf(w *binary.Writer, n *ir.Node, path []string) error {
	if len(n.Children) != 1 {
		return errors.MalformedControl(path, "if node must have exactly one condition child")
	}
	if err := fc.emit(w, n.Children[0], append(path, "cond")); err != nil {
		return err
	}
	w.Byte(wasm.OpIf)
	w.WriteS32(blockTypeByte(n.ValueType))
	fc.pushLabel(n.Name)
	if err := fc.emitList(w, n.Consequent, append(path, "consequent")); err != nil {
		fc.popLabel()
		return err
	}
	if len(n.Alternate) > 0 {
		w.Byte(wasm.OpElse)
		if err := fc.emitList(w, n.Alternate, append(path, "alternate")); err != nil {
			fc.popLabel()
			return err
		}
	}
	fc.popLabel()
	w.Byte(wasm.OpEnd)
	return nil
}

func (fc *funcCtx) emitLocalRef(w *binary.Writer, n *ir.Node, path []string) error {
	if n.Type == "local.tee" {
		if err := fc.emit(w, n.Children[0], append(path, "value")); err != nil {
			return err
		}
	}
	idx, err := fc.resolveLocalIndex(path, n.Name)
	if err != nil {
		return err
	}
	if n.Type == "local.tee" {
		w.Byte(wasm.OpLocalTee)
	} else {
		w.Byte(wasm.OpLocalGet)
	}
	w.WriteU32(idx)
	return nil
}

func (fc *funcCtx) emitLocalSet(w *binary.Writer, n *ir.Node, path []string) error {
	if err := fc.emit(w, n.Children[0], append(path, "value")); err != nil {
		return err
	}
	idx, err := fc.resolveLocalIndex(path, n.Name)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpLocalSet)
	w.WriteU32(idx)
	return nil
}

func (fc *funcCtx) emitGlobalGet(w *binary.Writer, n *ir.Node, path []string) error {
	idx, err := fc.mod.resolveGlobalIndex(path, n.Name)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpGlobalGet)
	w.WriteU32(idx)
	return nil
}

func (fc *funcCtx) emitGlobalSet(w *binary.Writer, n *ir.Node, path []string) error {
	if err := fc.emit(w, n.Children[0], append(path, "value")); err != nil {
		return err
	}
	idx, err := fc.mod.resolveGlobalIndex(path, n.Name)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpGlobalSet)
	w.WriteU32(idx)
	return nil
}

func (fc *funcCtx) emitCall(w *binary.Writer, n *ir.Node, path []string) error {
	if err := fc.emitList(w, n.Children, append(path, "args")); err != nil {
		return err
	}
	idx, err := fc.mod.resolveFuncIndex(path, n.Name)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpCall)
	w.WriteU32(idx)
	return nil
}

func (fc *funcCtx) emitCallIndirect(w *binary.Writer, n *ir.Node, path []string) error {
	if err := fc.emitList(w, n.Children, append(path, "args")); err != nil {
		return err
	}
	sig, ok := fc.mod.funcSig[n.Name]
	if !ok {
		return errors.UnresolvedName(path, "type", n.Name)
	}
	tableIdx, err := fc.mod.resolveTableIndex(path, n.FieldName)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpCallIndirect)
	w.WriteU32(fc.mod.types.intern(sig))
	w.WriteU32(tableIdx)
	return nil
}

func (fc *funcCtx) emitBr(w *binary.Writer, n *ir.Node, path []string) error {
	depth, err := fc.labelDepth(path, n.Name)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpBr)
	w.WriteU32(depth)
	return nil
}

func (fc *funcCtx) emitBrIf(w *binary.Writer, n *ir.Node, path []string) error {
	if err := fc.emit(w, n.Children[0], append(path, "cond")); err != nil {
		return err
	}
	depth, err := fc.labelDepth(path, n.Name)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpBrIf)
	w.WriteU32(depth)
	return nil
}

func (fc *funcCtx) emitBrTable(w *binary.Writer, n *ir.Node, path []string) error {
	if err := fc.emit(w, n.Children[0], append(path, "index")); err != nil {
		return err
	}
	labels, ok := n.Value.([]string)
	if !ok {
		return errors.MalformedControl(path, "br_table node missing label list")
	}
	depths := make([]uint32, len(labels))
	for i, l := range labels {
		d, err := fc.labelDepth(path, l)
		if err != nil {
			return err
		}
		depths[i] = d
	}
	defaultDepth, err := fc.labelDepth(path, n.Name)
	if err != nil {
		return err
	}
	w.Byte(wasm.OpBrTable)
	binary.Vec(w, depths, func(p *binary.Writer, d uint32) { p.WriteU32(d) })
	w.WriteU32(defaultDepth)
	return nil
}

func (fc *funcCtx) emitChildrenThenOpcode(w *binary.Writer, n *ir.Node, path []string, op byte) error {
	if err := fc.emitList(w, n.Children, path); err != nil {
		return err
	}
	w.Byte(op)
	return nil
}

// emitGeneral handles every leaf op the opcode table knows: numeric ops,
// memory loads/stores, SIMD, and atomics. Children are emitted in order,
// then the opcode, then the operation's own immediate shape.
func (fc *funcCtx) emitGeneral(w *binary.Writer, n *ir.Node, path []string) error {
	op := n.OpName()
	info, ok := opcode.Lookup(op)
	if !ok {
		return errors.UnknownOpcode(path, op)
	}
	if err := fc.emitList(w, n.Children, path); err != nil {
		return err
	}

	if info.Kind == opcode.KindPlain {
		w.Byte(byte(info.Code))
	} else {
		w.Byte(info.Kind.Prefix())
		w.WriteU32(info.Code)
	}

	switch info.Imm {
	case opcode.ImmNone:
		if op == "atomic.fence" {
			w.Byte(0x00)
		}
	case opcode.ImmMemarg:
		align := n.Align
		if align == 0 {
			align = 1
		}
		w.WriteU32(uint32(bits.TrailingZeros32(align)))
		w.WriteU32(n.Offset)
	case opcode.ImmLane:
		lane, ok := n.Value.(byte)
		if !ok {
			return errors.EncodingOverflow(path, "lane op missing lane byte", n.Value)
		}
		w.Byte(lane)
	case opcode.ImmShuffle:
		lanes, ok := n.Value.([16]byte)
		if !ok {
			return errors.EncodingOverflow(path, "shuffle op missing 16 lane bytes", n.Value)
		}
		w.WriteBytes(lanes[:])
	case opcode.ImmMemIdx:
		w.Byte(0x00)
	}

	switch op {
	case "v128.const":
		bytes, ok := n.Value.([16]byte)
		if !ok {
			return errors.UnsupportedConstType(path, "v128")
		}
		w.WriteBytes(bytes[:])
	case "memory.init":
		segIdx, ok := numericLabel(n.Name)
		if !ok {
			return errors.UnresolvedName(path, "data segment", n.Name)
		}
		w.WriteU32(segIdx)
		w.Byte(0x00)
	case "data.drop":
		segIdx, ok := numericLabel(n.Name)
		if !ok {
			return errors.UnresolvedName(path, "data segment", n.Name)
		}
		w.WriteU32(segIdx)
	case "memory.copy":
		w.Byte(0x00)
		w.Byte(0x00)
	case "memory.fill":
		w.Byte(0x00)
	case "table.init":
		elemIdx, ok := numericLabel(n.FieldName)
		if !ok {
			return errors.UnresolvedName(path, "elem segment", n.FieldName)
		}
		tableIdx, err := fc.mod.resolveTableIndex(path, n.Name)
		if err != nil {
			return err
		}
		w.WriteU32(elemIdx)
		w.WriteU32(tableIdx)
	case "table.copy":
		srcIdx, err := fc.mod.resolveTableIndex(path, n.FieldName)
		if err != nil {
			return err
		}
		dstIdx, err := fc.mod.resolveTableIndex(path, n.Name)
		if err != nil {
			return err
		}
		w.WriteU32(dstIdx)
		w.WriteU32(srcIdx)
	case "elem.drop":
		elemIdx, ok := numericLabel(n.Name)
		if !ok {
			return errors.UnresolvedName(path, "elem segment", n.Name)
		}
		w.WriteU32(elemIdx)
	case "table.get", "table.set", "table.size", "table.grow", "table.fill":
		idx, err := fc.mod.resolveTableIndex(path, n.Name)
		if err != nil {
			return err
		}
		w.WriteU32(idx)
	}

	return nil
}
