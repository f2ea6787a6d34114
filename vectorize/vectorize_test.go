package vectorize

import (
	"testing"

	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
)

// scalarF32MapFunc builds: v = f32.load(ptr); store(ptr, v + 1.0); ptr = ptr + 1
// — a map-style kernel over a flat f32 array.
func scalarF32MapFunc() *ir.Node {
	return ir.Func("kernel",
		[]ir.Local{ir.Param("ptr", wasm.ValI32)}, nil, nil,
		ir.Store("f32.store",
			ir.LocalGet("ptr"),
			ir.Binop("f32.add", ir.Load("f32.load", ir.LocalGet("ptr")), ir.F32Const(1)),
		),
		ir.LocalSet("ptr", ir.Binop("i32.add", ir.LocalGet("ptr"), ir.I32Const(1))),
	)
}

func TestRewriteFunc_F32Map(t *testing.T) {
	result := rewriteFunc(scalarF32MapFunc(), "f32")
	if !result.Success {
		t.Fatal("expected success")
	}
	if result.Width != 4 {
		t.Errorf("width = %d, want 4", result.Width)
	}
	if result.Func.Name != "kernel_simd" {
		t.Errorf("name = %s, want kernel_simd", result.Func.Name)
	}

	store := result.Func.Children[0]
	if store.Type != "v128.store" {
		t.Fatalf("store type = %s, want v128.store", store.Type)
	}
	add := store.Children[1]
	if add.Type != "f32x4.add" {
		t.Fatalf("add type = %s, want f32x4.add", add.Type)
	}
	load := add.Children[0]
	if load.Type != "v128.load" {
		t.Errorf("load type = %s, want v128.load", load.Type)
	}
	splatted := add.Children[1]
	if splatted.Type != "f32x4.splat" {
		t.Errorf("const operand = %s, want f32x4.splat", splatted.Type)
	}

	increment := result.Func.Children[1]
	step := increment.Children[0].Children[1]
	if step.Type != "i32.const" || step.Value.(int32) != 4 {
		t.Errorf("stride step = %+v, want i32.const 4", step)
	}
}

func TestRewriteFunc_NoMappedOpReturnsUnchanged(t *testing.T) {
	fn := ir.Func("nop", nil, nil, nil, ir.Nop())
	result := rewriteFunc(fn, "f32")
	if result.Success {
		t.Error("expected Success = false")
	}
	if result.Width != 1 {
		t.Errorf("width = %d, want 1", result.Width)
	}
	if result.Func != fn {
		t.Error("func should be returned unchanged")
	}
}

func TestRewriteFunc_I32Add(t *testing.T) {
	fn := ir.Func("add4", nil, nil, nil,
		ir.Binop("i32.add", ir.LocalGet("a"), ir.LocalGet("b")))
	result := rewriteFunc(fn, "i32")
	if !result.Success {
		t.Fatal("expected success")
	}
	if result.Func.Children[0].Type != "i32x4.add" {
		t.Errorf("type = %s, want i32x4.add", result.Func.Children[0].Type)
	}
}

func TestRewriteFunc_AlignPolicy(t *testing.T) {
	packed := ir.Func("f", nil, nil, nil, ir.Load("f32.load", ir.LocalGet("p"), ir.WithAlign(1)))
	result := rewriteFunc(packed, "f32")
	if got := result.Func.Children[0].Align; got != 1 {
		t.Errorf("packed align = %d, want 1", got)
	}

	aligned := ir.Func("f", nil, nil, nil, ir.Load("f32.load", ir.LocalGet("p")))
	result = rewriteFunc(aligned, "f32")
	if got := result.Func.Children[0].Align; got != 16 {
		t.Errorf("default align = %d, want 16", got)
	}
}
