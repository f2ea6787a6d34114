package optimize

import (
	"testing"

	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
)

func canonicalLoop() *ir.Node {
	return ir.Loop("TOP", wasm.ValType(0),
		ir.BrIf("OUT", ir.LocalGet("cond")),
		ir.Drop(ir.LocalGet("i")),
		ir.LocalSet("i", ir.Binop("i32.add", ir.LocalGet("i"), ir.I32Const(1))),
		ir.Br("TOP"),
	)
}

func TestUnrollLoops_CanonicalShape(t *testing.T) {
	got := unrollLoops(canonicalLoop(), 4)
	if got.Type != "loop" {
		t.Fatalf("type = %s, want loop", got.Type)
	}
	// br_if, 4x(drop), 4x(local.set), br — 10 children total.
	if len(got.Children) != 10 {
		t.Fatalf("children = %d, want 10", len(got.Children))
	}
	if got.Children[0].Type != "br_if" {
		t.Errorf("first child = %s, want br_if", got.Children[0].Type)
	}
	if last := got.Children[len(got.Children)-1]; last.Type != "br" {
		t.Errorf("last child = %s, want br", last.Type)
	}
}

func TestUnrollLoops_FactorOneIsNoop(t *testing.T) {
	loop := canonicalLoop()
	got := unrollLoops(loop, 1)
	if len(got.Children) != len(loop.Children) {
		t.Errorf("factor 1 changed child count: %d vs %d", len(got.Children), len(loop.Children))
	}
}

func TestUnrollLoops_NonCanonicalShapeUntouched(t *testing.T) {
	loop := ir.Loop("TOP", wasm.ValType(0), ir.Nop())
	got := unrollLoops(loop, 4)
	if len(got.Children) != 1 || got.Children[0].Type != "nop" {
		t.Errorf("non-canonical loop was rewritten: %+v", got.Children)
	}
}

func TestUnrollLoops_WrongBackEdgeLabelUntouched(t *testing.T) {
	loop := ir.Loop("TOP", wasm.ValType(0),
		ir.BrIf("OUT", ir.LocalGet("cond")),
		ir.Nop(),
		ir.LocalSet("i", ir.Binop("i32.add", ir.LocalGet("i"), ir.I32Const(1))),
		ir.Br("ELSEWHERE"),
	)
	got := unrollLoops(loop, 4)
	if len(got.Children) != 4 {
		t.Errorf("loop with mismatched back-edge label was unrolled: %d children", len(got.Children))
	}
}
