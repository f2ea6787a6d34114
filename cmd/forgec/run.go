package main

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"

	"github.com/wasmforge/forge/emit"
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/wasm"
)

// smokeCallAdd builds, emits, and instantiates a standalone add(i32,i32)
// module under wazero and calls it. It is the one place this repository
// runs an emitted module end to end rather than just compiling it; it
// uses its own import-free module rather than the sample pipeline's
// output so no host module needs wiring for env.memory.
func smokeCallAdd() (int32, error) {
	fn := ir.Func("add",
		[]ir.Local{ir.Param("a", wasm.ValI32), ir.Param("b", wasm.ValI32)},
		[]wasm.ValType{wasm.ValI32}, nil,
		ir.Return(ir.Binop("i32.add", ir.LocalGet("a"), ir.LocalGet("b"))),
	)
	bin, err := emit.Emit(ir.Module(fn))
	if err != nil {
		return 0, fmt.Errorf("emit smoke module: %w", err)
	}

	ctx := context.Background()
	runtime := wazero.NewRuntime(ctx)
	defer runtime.Close(ctx)

	compiled, err := runtime.CompileModule(ctx, bin)
	if err != nil {
		return 0, fmt.Errorf("compile: %w", err)
	}
	defer compiled.Close(ctx)

	instance, err := runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		return 0, fmt.Errorf("instantiate: %w", err)
	}
	defer instance.Close(ctx)

	addFn := instance.ExportedFunction("add")
	if addFn == nil {
		return 0, fmt.Errorf("module has no exported add function")
	}
	results, err := addFn.Call(ctx, 2, 3)
	if err != nil {
		return 0, fmt.Errorf("call add: %w", err)
	}
	return int32(results[0]), nil
}
