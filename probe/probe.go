// Package probe answers "does the host runtime support this WASM
// feature" by compiling a minimal throwaway module against wazero,
// rather than hard-coding assumptions about the embedding environment.
package probe

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"
)

var (
	simdOnce      sync.Once
	simdSupported bool

	threadsOnce      sync.Once
	threadsSupported bool
)

// simdProbeModule declares a function that loads a v128 and returns it
// unchanged: (func (param i32) (result v128) local.get 0 v128.load)
var simdProbeModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // \0asm, version 1
	0x01, 0x06, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7b, // type: (i32) -> v128
	0x03, 0x02, 0x01, 0x00, // func section: 1 func of type 0
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 memory, min 1 page
	0x0a, 0x0a, 0x01, 0x08, 0x00, // code section: 1 func, body size 8
	0x20, 0x00, // local.get 0
	0xfd, 0x00, 0x00, 0x00, // v128.load align=0 offset=0
	0x0b, // end
}

// threadsProbeModule declares a module with a shared memory, which only
// validates under the threads proposal, and exports that memory as "mem"
// so an instantiated module's backing buffer can be inspected directly.
var threadsProbeModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x05, 0x04, 0x01, 0x03, 0x01, 0x01, // memory section: shared, min 1 max 1
	0x07, 0x07, 0x01, 0x03, 0x6d, 0x65, 0x6d, 0x02, 0x00, // export section: memory "mem" at index 0
}

// IsSimdSupported reports whether the host wazero runtime accepts
// fixed-width 128-bit SIMD instructions. The result is probed once and
// cached for the process lifetime.
func IsSimdSupported() bool {
	simdOnce.Do(func() {
		simdSupported = compiles(simdProbeModule, api.CoreFeaturesV2)
	})
	return simdSupported
}

// IsThreadsSupported reports whether the host wazero runtime accepts
// shared memories and atomic instructions. Compiling the probe module only
// shows the engine accepts the threads proposal syntactically; a host can
// still refuse to back a shared memory with a real shared buffer once the
// module is instantiated. The result is probed once and cached for the
// process lifetime.
func IsThreadsSupported() bool {
	threadsOnce.Do(func() {
		threadsSupported = instantiatesSharedMemory(threadsProbeModule, api.CoreFeaturesV2|experimental.CoreFeaturesThreads)
	})
	return threadsSupported
}

func compiles(wasmBytes []byte, features api.CoreFeatures) bool {
	ctx := context.Background()
	runtime := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCoreFeatures(features))
	defer runtime.Close(ctx)

	compiled, err := runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return false
	}
	compiled.Close(ctx)
	return true
}

// instantiatesSharedMemory compiles and instantiates wasmBytes, then
// confirms the memory it exports as "mem" is actually backed by a shared
// buffer before releasing it. This catches both engine-level rejection
// (compile or instantiate fails outright) and a host that honors the
// threads feature flag but still hands back ordinary, non-shared memory.
func instantiatesSharedMemory(wasmBytes []byte, features api.CoreFeatures) bool {
	ctx := context.Background()
	runtime := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCoreFeatures(features))
	defer runtime.Close(ctx)

	compiled, err := runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return false
	}
	defer compiled.Close(ctx)

	instance, err := runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		return false
	}
	defer instance.Close(ctx)

	if instance.ExportedMemory("mem") == nil {
		return false
	}
	def, ok := instance.ExportedMemoryDefinitions()["mem"]
	return ok && def.IsShared()
}
