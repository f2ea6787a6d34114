// Package emit serializes an ir.Node module tree into a WebAssembly
// binary, single pass, deterministic: two structurally identical module
// trees always produce byte-identical output.
//
// Emission never partially writes a binary on failure — each func body is
// built into its own scratch buffer first, and a failure anywhere aborts
// before any section is appended to the result.
package emit
