package main

import (
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
)

// sampleModule builds a small demo module exercising the whole pipeline:
// a vec_scale kernel that walks an f32 array and multiplies each element
// by 2, plus a scalar add left untouched by the vectorizer.
func sampleModule() *ir.Node {
	vecScale := ir.Func("vec_scale",
		[]ir.Local{
			ir.Param("ptr", wasm.ValI32),
			ir.Param("len", wasm.ValI32),
		},
		nil,
		[]ir.Local{ir.LocalDecl("i", wasm.ValI32)},
		ir.Block("LOOP_DONE", wasm.ValType(0), ir.Loop("LOOP", wasm.ValType(0),
			ir.BrIf("LOOP_DONE", ir.Binop("i32.ge_s", ir.LocalGet("i"), ir.LocalGet("len"))),
			ir.Store("f32.store",
				ir.Binop("i32.add", ir.LocalGet("ptr"), ir.Binop("i32.mul", ir.LocalGet("i"), ir.I32Const(4))),
				ir.Binop("f32.mul",
					ir.Load("f32.load", ir.Binop("i32.add", ir.LocalGet("ptr"), ir.Binop("i32.mul", ir.LocalGet("i"), ir.I32Const(4)))),
					ir.F32Const(2),
				),
			),
			ir.LocalSet("i", ir.Binop("i32.add", ir.LocalGet("i"), ir.I32Const(1))),
			ir.Br("LOOP"),
		)),
	)

	add := ir.Func("add",
		[]ir.Local{ir.Param("a", wasm.ValI32), ir.Param("b", wasm.ValI32)},
		[]wasm.ValType{wasm.ValI32}, nil,
		ir.Return(ir.Binop("i32.add", ir.LocalGet("a"), ir.LocalGet("b"))),
	)

	unrollCandidate := ir.Func("sum_to_n",
		[]ir.Local{ir.Param("n", wasm.ValI32)},
		[]wasm.ValType{wasm.ValI32},
		[]ir.Local{ir.LocalDecl("i", wasm.ValI32), ir.LocalDecl("acc", wasm.ValI32)},
		ir.Block("DONE", wasm.ValType(0), ir.Loop("LOOP", wasm.ValType(0),
			ir.BrIf("DONE", ir.Binop("i32.ge_s", ir.LocalGet("i"), ir.LocalGet("n"))),
			ir.LocalSet("acc", ir.Binop("i32.add", ir.LocalGet("acc"), ir.LocalGet("i"))),
			ir.LocalSet("i", ir.Binop("i32.add", ir.LocalGet("i"), ir.I32Const(1))),
			ir.Br("LOOP"),
		)),
		ir.Return(ir.LocalGet("acc")),
	)

	return ir.Module(
		ir.ImportMemory("env", "memory", "memory", 1, 0, false, false),
		vecScale,
		add,
		unrollCandidate,
	)
}
