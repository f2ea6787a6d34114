package optimize

import (
	"testing"

	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
)

func TestEliminateDeadCode_DropsAfterReturn(t *testing.T) {
	block := ir.Block("", wasm.ValType(0),
		ir.Return(ir.I32Const(1)),
		ir.Drop(ir.I32Const(2)),
	)
	got := eliminateDeadCode(block)
	if len(got.Children) != 1 {
		t.Fatalf("children = %d, want 1 (dead code after return kept)", len(got.Children))
	}
	if got.Children[0].Type != "return" {
		t.Errorf("surviving child = %s, want return", got.Children[0].Type)
	}
}

func TestEliminateDeadCode_DropsAfterBrUnreachableBrTable(t *testing.T) {
	for _, term := range []*ir.Node{ir.Br("L"), ir.Unreachable(), ir.BrTable([]string{"a"}, "b", ir.I32Const(0))} {
		block := ir.Block("", wasm.ValType(0), term, ir.Nop())
		got := eliminateDeadCode(block)
		if len(got.Children) != 1 {
			t.Errorf("terminator %s: children = %d, want 1", term.Type, len(got.Children))
		}
	}
}

func TestEliminateDeadCode_BrIfIsNotATerminator(t *testing.T) {
	block := ir.Block("", wasm.ValType(0),
		ir.BrIf("L", ir.I32Const(1)),
		ir.Nop(),
	)
	got := eliminateDeadCode(block)
	if len(got.Children) != 2 {
		t.Errorf("children = %d, want 2 (br_if must not truncate)", len(got.Children))
	}
}

func TestEliminateDeadCode_RecursesIntoNestedBlocks(t *testing.T) {
	inner := ir.Block("inner", wasm.ValType(0),
		ir.Return(),
		ir.Drop(ir.I32Const(9)),
	)
	outer := ir.Block("outer", wasm.ValType(0), inner, ir.Nop())
	got := eliminateDeadCode(outer)
	if len(got.Children) != 2 {
		t.Fatalf("outer children = %d, want 2", len(got.Children))
	}
	if len(got.Children[0].Children) != 1 {
		t.Errorf("inner block not truncated: %+v", got.Children[0].Children)
	}
}
