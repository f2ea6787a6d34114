// Package vectorize rewrites a scalar i32/f32 function body to use
// 128-bit SIMD, where the shape of the body allows it.
package vectorize

import (
	"go.uber.org/zap"

	"github.com/wasmforge/forge/internal/log"
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/probe"
)

// Config selects the scalar element type the vectorizer looks for.
type Config struct {
	// TargetType is "i32" or "f32". Empty means "f32".
	TargetType string
}

// Result is the outcome of a Vectorize call.
type Result struct {
	Func    *ir.Node
	Width   int
	Success bool
}

const simdWidth = 4

// Vectorize rewrites fn's body to use v128 operations when the runtime
// supports SIMD and the body contains at least one load, store, or
// mapped arithmetic/bitwise op of cfg.TargetType. Otherwise it returns
// fn unchanged with Success false and Width 1.
func Vectorize(fn *ir.Node, cfg Config) Result {
	target := cfg.TargetType
	if target == "" {
		target = "f32"
	}

	if !probe.IsSimdSupported() {
		log.Logger().Debug("vectorize: v128 unsupported, skipping", zap.String("func", fn.Name))
		return Result{Func: fn, Width: 1, Success: false}
	}

	return rewriteFunc(fn, target)
}

// rewriteFunc performs the rewrite itself, independent of the SIMD
// feature probe, so it can be exercised directly against a fixed target
// without depending on the host runtime's capabilities.
func rewriteFunc(fn *ir.Node, target string) Result {
	r := &rewriter{target: target}
	body := r.rewriteList(fn.Children)
	if !r.matched {
		log.Logger().Debug("vectorize: no mapped operation found", zap.String("func", fn.Name), zap.String("target", target))
		return Result{Func: fn, Width: 1, Success: false}
	}

	out := *fn
	out.Name = fn.Name + "_simd"
	out.Children = body
	log.Logger().Debug("vectorize: rewrote function", zap.String("func", fn.Name), zap.String("target", target))
	return Result{Func: &out, Width: simdWidth, Success: true}
}

type rewriter struct {
	target  string
	matched bool
}

// mappedArith maps a scalar op to its v128 counterpart for a given
// target type. Bitwise ops are type-agnostic at the v128 level and are
// always available regardless of target.
var mappedArith = map[string]map[string]string{
	"i32": {
		"i32.add": "i32x4.add",
		"i32.sub": "i32x4.sub",
		"i32.mul": "i32x4.mul",
	},
	"f32": {
		"f32.add": "f32x4.add",
		"f32.sub": "f32x4.sub",
		"f32.mul": "f32x4.mul",
		"f32.div": "f32x4.div",
		"f32.min": "f32x4.min",
		"f32.max": "f32x4.max",
	},
}

var bitwiseOps = map[string]string{
	"i32.and": "v128.and",
	"i32.or":  "v128.or",
	"i32.xor": "v128.xor",
}

func (r *rewriter) rewriteList(nodes []*ir.Node) []*ir.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*ir.Node, len(nodes))
	for i, n := range nodes {
		out[i] = r.rewrite(n)
	}
	return out
}

func (r *rewriter) rewrite(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}

	if isStrideIncrement(n) {
		cp := *n
		cp.Children = []*ir.Node{r.rewrite(n.Children[0]), ir.I32Const(simdWidth)}
		return &cp
	}

	switch {
	case n.Type == r.target+".load":
		r.matched = true
		return ir.Load("v128.load", r.rewrite(n.Children[0]), simdMemArgOptions(n)...)
	case n.Type == r.target+".store":
		r.matched = true
		return ir.Store("v128.store", r.rewrite(n.Children[0]), r.rewrite(n.Children[1]), simdMemArgOptions(n)...)
	}

	if vecOp, ok := mappedArith[r.target][n.Type]; ok {
		r.matched = true
		return &ir.Node{Type: vecOp, Children: r.rewriteList(n.Children)}
	}
	if vecOp, ok := bitwiseOps[n.Type]; ok {
		r.matched = true
		return &ir.Node{Type: vecOp, Children: r.rewriteList(n.Children)}
	}

	switch n.Type {
	case "block", "loop":
		cp := *n
		cp.Children = r.rewriteList(n.Children)
		return &cp
	case "if":
		cp := *n
		cp.Children = r.rewriteList(n.Children)
		cp.Consequent = r.rewriteList(n.Consequent)
		cp.Alternate = r.rewriteList(n.Alternate)
		return &cp
	}

	if n.Type == r.target+".const" {
		return splat(r.target, n)
	}

	if len(n.Children) > 0 {
		cp := *n
		cp.Children = r.rewriteList(n.Children)
		return &cp
	}
	return n
}

// isStrideIncrement matches i32.add(expr, i32.const 1), the canonical
// loop-index increment: kept scalar, but its constant is lifted to the
// SIMD width so the loop advances one lane-group per iteration.
func isStrideIncrement(n *ir.Node) bool {
	if n.Type != "i32.add" || len(n.Children) != 2 {
		return false
	}
	step := n.Children[1]
	if step.Type != "i32.const" {
		return false
	}
	v, ok := step.Value.(int32)
	return ok && v == 1
}

func simdMemArgOptions(scalar *ir.Node) []ir.MemArgOption {
	opts := []ir.MemArgOption{ir.WithOffset(scalar.Offset)}
	if scalar.Align == 1 {
		opts = append(opts, ir.WithAlign(1))
	} else {
		opts = append(opts, ir.WithAlign(16))
	}
	return opts
}

func splat(target string, c *ir.Node) *ir.Node {
	op := "f32x4.splat"
	if target == "i32" {
		op = "i32x4.splat"
	}
	return ir.Splat(op, c)
}
