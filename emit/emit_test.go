package emit

import (
	"bytes"
	"testing"

	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
)

// TestEmit_SimpleAdd covers a single exported add(i32, i32) -> i32
// function. The expected bytes are hand-computed from the binary
// format, not derived from the emitter itself.
func TestEmit_SimpleAdd(t *testing.T) {
	fn := ir.Func("add",
		[]ir.Local{ir.Param("a", wasm.ValI32), ir.Param("b", wasm.ValI32)},
		[]wasm.ValType{wasm.ValI32}, nil,
		ir.Return(ir.Binop("i32.add", ir.LocalGet("a"), ir.LocalGet("b"))),
	)
	mod := ir.Module(fn)

	got, err := Emit(mod)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	want := []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version

		0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f, // type section: (i32,i32)->i32

		0x03, 0x02, 0x01, 0x00, // function section: 1 func, type 0

		0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00, // export section: "add" func 0

		0x0a, 0x0a, 0x01, 0x08, // code section: 1 func, body len 8
		0x00,                   // 0 local decls
		0x20, 0x00, // local.get 0
		0x20, 0x01, // local.get 1
		0x6a,       // i32.add
		0x0f,       // return
		0x0b,       // end
	}

	if !bytes.Equal(got, want) {
		t.Errorf("got  %x\nwant %x", got, want)
	}
}

// TestEmit_FactorialLoop covers a block/loop/br_if counted loop.
// Checked structurally rather than byte-for-byte.
func TestEmit_FactorialLoop(t *testing.T) {
	fn := ir.Func("fact",
		[]ir.Local{ir.Param("n", wasm.ValI32)},
		[]wasm.ValType{wasm.ValI32},
		[]ir.Local{ir.LocalDecl("i", wasm.ValI32), ir.LocalDecl("res", wasm.ValI32)},
		ir.Block("OUT", wasm.ValType(0),
			ir.Loop("TOP", wasm.ValType(0),
				ir.BrIf("OUT", ir.Binop("i32.gt_s", ir.LocalGet("i"), ir.LocalGet("n"))),
				ir.LocalSet("res", ir.Binop("i32.mul", ir.LocalGet("res"), ir.LocalGet("i"))),
				ir.LocalSet("i", ir.Binop("i32.add", ir.LocalGet("i"), ir.I32Const(1))),
				ir.Br("TOP"),
			),
		),
		ir.Return(ir.LocalGet("res")),
	)
	mod := ir.Module(fn)

	got, err := Emit(mod)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	for _, want := range []byte{wasm.OpBlock, wasm.OpLoop, wasm.OpBrIf, wasm.OpBr, wasm.OpI32Mul, wasm.OpEnd} {
		if !bytes.Contains(got, []byte{want}) {
			t.Errorf("output missing opcode 0x%02x", want)
		}
	}
}

// TestEmit_SimdVecAdd covers imported linear memory, two v128 loads, an
// i32x4.add, and a v128 store.
func TestEmit_SimdVecAdd(t *testing.T) {
	fn := ir.Func("vec_add",
		[]ir.Local{ir.Param("a_off", wasm.ValI32), ir.Param("b_off", wasm.ValI32), ir.Param("out_off", wasm.ValI32)},
		nil, nil,
		ir.Store("v128.store",
			ir.LocalGet("out_off"),
			ir.Binop("i32x4.add",
				ir.Load("v128.load", ir.LocalGet("a_off")),
				ir.Load("v128.load", ir.LocalGet("b_off")),
			),
		),
	)
	mod := ir.Module(
		ir.ImportMemory("env", "memory", "memory", 1, 0, false, false),
		fn,
	)

	got, err := Emit(mod)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	// v128 ops are SIMD-prefixed: 0xFD followed by an LEB128 sub-opcode.
	if !bytes.Contains(got, []byte{0xfd, 0x00}) { // v128.load, align 16 -> log2=4 follows
		t.Error("output missing v128.load (0xfd 0x00)")
	}
	if !bytes.Contains(got, []byte{0xfd, 0xae, 0x01}) { // i32x4.add sub-opcode 0xAE (174) as LEB128
		t.Error("output missing i32x4.add (0xfd 0xae 0x01)")
	}
	if !bytes.Contains(got, []byte{0xfd, 0x0b}) { // v128.store
		t.Error("output missing v128.store (0xfd 0x0b)")
	}
}

func TestEmit_UnknownOpcode(t *testing.T) {
	fn := ir.Func("bad", nil, nil, nil, &ir.Node{Type: "not.a.real.op"})
	_, err := Emit(ir.Module(fn))
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestEmit_ConstValueTypeMismatch(t *testing.T) {
	badConsts := []*ir.Node{
		{Type: "i32.const", Value: "not-an-int32"},
		{Type: "i64.const", Value: int32(1)},
		{Type: "f32.const", Value: float64(1)},
		{Type: "f64.const", Value: float32(1)},
	}
	for _, n := range badConsts {
		fn := ir.Func("bad", nil, nil, nil, &ir.Node{Type: "drop", Children: []*ir.Node{n}})
		_, err := Emit(ir.Module(fn))
		if err == nil {
			t.Errorf("%s with mismatched Value: expected an error, got none", n.Type)
		}
	}
}

func TestEmit_UnresolvedLocal(t *testing.T) {
	fn := ir.Func("bad", nil, nil, nil, ir.Return(ir.LocalGet("missing")))
	_, err := Emit(ir.Module(fn))
	if err == nil {
		t.Fatal("expected an error for an unresolved local name")
	}
}

func TestEmit_NumericFallbackLocal(t *testing.T) {
	fn := ir.Func("f", []ir.Local{ir.Param("x", wasm.ValI32)}, []wasm.ValType{wasm.ValI32}, nil,
		ir.Return(ir.LocalGet("0")))
	_, err := Emit(ir.Module(fn))
	if err != nil {
		t.Fatalf("numeric local fallback should resolve: %v", err)
	}
}

func TestEmit_TypeDedup(t *testing.T) {
	sig := func(name string) *ir.Node {
		return ir.Func(name, []ir.Local{ir.Param("x", wasm.ValI32)}, []wasm.ValType{wasm.ValI32}, nil,
			ir.Return(ir.LocalGet("x")))
	}
	mod := ir.Module(sig("f"), sig("g"))
	got, err := Emit(mod)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	// Type section should declare exactly one (i32)->i32 signature.
	wantType := []byte{0x01, 0x06, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f}
	if !bytes.Contains(got, wantType) {
		t.Errorf("expected deduplicated single-entry type section, got %x", got)
	}
}

func TestEmit_CustomSectionLast(t *testing.T) {
	fn := ir.Func("f", nil, nil, nil, ir.Nop())
	mod := ir.Module(fn, ir.CustomSection("name", []byte{0x01, 0x02, 0x03}))

	got, err := Emit(mod)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	wantSection := []byte{0x00, 0x08, 0x04, 'n', 'a', 'm', 'e', 0x01, 0x02, 0x03}
	if !bytes.Contains(got, wantSection) {
		t.Errorf("expected custom section bytes, got %x", got)
	}
	codeIdx := bytes.Index(got, []byte{0x0a})
	customIdx := bytes.Index(got, wantSection)
	if codeIdx == -1 || customIdx == -1 || customIdx < codeIdx {
		t.Errorf("custom section should appear after the code section")
	}
}

func TestEmit_MissingIfCondition(t *testing.T) {
	malformed := &ir.Node{Type: "if", Name: "", ValueType: wasm.ValType(0)}
	fn := ir.Func("f", nil, nil, nil, malformed)
	_, err := Emit(ir.Module(fn))
	if err == nil {
		t.Fatal("expected an error for an if node with no condition child")
	}
}
