// Package optimize implements the fixed-point IR optimizer: constant
// folding, algebraic peephole simplification, structural dead-code
// elimination, and a pattern-matched loop unroller.
package optimize

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wasmforge/forge/internal/log"
	"github.com/wasmforge/forge/ir"
)

// Config gates which passes Optimize runs.
type Config struct {
	// Level: 0 returns the input unchanged. 1 runs constant folding to a
	// fixed point. 2 adds algebraic peephole and structural DCE to each
	// iteration. 3 additionally runs the loop unroller once after the
	// fixed point, then refolds.
	Level int

	// UnrollFactor is the loop unroll factor used at Level 3. Zero means
	// the default of 4.
	UnrollFactor int
}

const maxFixedPointIterations = 10

const defaultUnrollFactor = 4

// Optimize rewrites node per cfg. A module's func children are each
// optimized independently; other children pass through untouched. Any
// other node is optimized as if it were a func body.
func Optimize(node *ir.Node, cfg Config) *ir.Node {
	if node == nil || cfg.Level == 0 {
		return node
	}
	if node.Type == "module" {
		children := make([]*ir.Node, len(node.Children))
		for i, c := range node.Children {
			if c.Type == "func" {
				children[i] = optimizeOne(c, cfg)
			} else {
				children[i] = c
			}
		}
		cp := *node
		cp.Children = children
		return &cp
	}
	return optimizeOne(node, cfg)
}

func optimizeOne(node *ir.Node, cfg Config) *ir.Node {
	current := node
	iterations := 0
	for ; iterations < maxFixedPointIterations; iterations++ {
		next := foldConstants(current)
		if cfg.Level >= 2 {
			next = eliminateDeadCode(peephole(next))
		}
		same := reflect.DeepEqual(next, current)
		current = next
		if same {
			break
		}
	}

	if cfg.Level >= 3 {
		factor := cfg.UnrollFactor
		if factor <= 0 {
			factor = defaultUnrollFactor
		}
		current = foldConstants(unrollLoops(current, factor))
	}

	log.Logger().Debug("optimize: func complete",
		zap.String("name", node.Name),
		zap.Int("level", cfg.Level),
		zap.Int("iterations", iterations+1),
	)
	return current
}
