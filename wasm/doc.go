// Package wasm provides the binary-format constants consumed by the rest
// of this module: the module preamble, section ids, value-type bytes, and
// instruction opcodes for the WebAssembly 1.0 core instruction set, the
// threads/atomics proposal, and fixed-width 128-bit SIMD.
//
// # Scope
//
// Only what producing a binary needs is represented here. There is no GC,
// exception handling, typed function references, tail calls, or
// multi-memory/memory64 support, and no decoder: this module only builds
// and emits modules, it does not parse them back.
//
//	wasm.OpI32Add, wasm.OpF64Sqrt        // core numeric opcodes
//	wasm.SimdI32x4Add, wasm.SimdF32x4Mul // SIMD arithmetic
//	wasm.AtomicI32RmwAdd                 // threads RMW ops
//	wasm.SectionType, wasm.SectionCode   // section ids, in emission order
//
// The prefixed instruction families (SIMD, atomics, and the misc bulk
// memory opcodes) are followed in the binary by a LEB128-encoded
// sub-opcode rather than a second raw byte; the wasm/internal/binary
// package's Writer is what actually emits that LEB128 form.
package wasm
