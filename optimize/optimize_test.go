package optimize

import (
	"reflect"
	"testing"

	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
)

func TestOptimize_LevelZeroIsIdentity(t *testing.T) {
	n := ir.Binop("i32.add", ir.I32Const(2), ir.I32Const(3))
	got := Optimize(n, Config{Level: 0})
	if !reflect.DeepEqual(got, n) {
		t.Errorf("Optimize at level 0 changed the node: got %+v, want %+v", got, n)
	}
}

func TestOptimize_ConstantFoldToFixedPoint(t *testing.T) {
	body := ir.Binop("i32.add", ir.I32Const(2), ir.I32Const(3))
	fn := ir.Func("add", nil, []wasm.ValType{wasm.ValI32}, nil, ir.Return(body))

	got := Optimize(fn, Config{Level: 2})

	ret := got.Children[0]
	if ret.Type != "return" || len(ret.Children) != 1 {
		t.Fatalf("unexpected shape: %+v", got)
	}
	folded := ret.Children[0]
	if folded.Type != "i32.const" {
		t.Fatalf("body not folded to a const: %+v", folded)
	}
	if v := folded.Value.(int32); v != 5 {
		t.Errorf("folded value = %d, want 5", v)
	}
}

func TestOptimize_LoopUnrollFactor4(t *testing.T) {
	// loop TOP { br_if OUT (...); <body op>; local.set i (i32.add (local.get i) (i32.const 1)); br TOP }
	bodyOp := ir.Drop(ir.LocalGet("x"))
	loop := ir.Loop("TOP", wasm.ValType(0),
		ir.BrIf("OUT", ir.LocalGet("cond")),
		bodyOp,
		ir.LocalSet("i", ir.Binop("i32.add", ir.LocalGet("i"), ir.I32Const(1))),
		ir.Br("TOP"),
	)
	fn := ir.Func("loopfn", nil, nil, nil, loop)

	got := Optimize(fn, Config{Level: 3, UnrollFactor: 4})

	gotLoop := got.Children[0]
	if gotLoop.Type != "loop" {
		t.Fatalf("expected loop, got %s", gotLoop.Type)
	}

	bodies := 0
	increments := 0
	for _, c := range gotLoop.Children {
		switch c.Type {
		case "drop":
			bodies++
		case "local.set":
			increments++
		}
	}
	if bodies != 4 {
		t.Errorf("body copies = %d, want 4", bodies)
	}
	if increments != 4 {
		t.Errorf("increments = %d, want 4", increments)
	}
	last := gotLoop.Children[len(gotLoop.Children)-1]
	if last.Type != "br" || last.Name != "TOP" {
		t.Errorf("last child = %+v, want br TOP", last)
	}
	first := gotLoop.Children[0]
	if first.Type != "br_if" || first.Name != "OUT" {
		t.Errorf("first child = %+v, want br_if OUT", first)
	}
}

func TestOptimize_UnrollPreservesNonCanonicalLoop(t *testing.T) {
	// A loop not matching the canonical shape is left untouched by unroll.
	loop := ir.Loop("TOP", wasm.ValType(0), ir.Nop())
	fn := ir.Func("f", nil, nil, nil, loop)

	got := Optimize(fn, Config{Level: 3, UnrollFactor: 4})
	gotLoop := got.Children[0]
	if len(gotLoop.Children) != 1 || gotLoop.Children[0].Type != "nop" {
		t.Errorf("non-canonical loop was rewritten: %+v", gotLoop)
	}
}
