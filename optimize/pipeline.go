package optimize

import (
	"time"

	"github.com/wasmforge/forge/ir"
)

// Pass is one named rewrite stage. Fold, Peephole, DCE, and Unroll each
// implement it so a caller can run or measure them individually instead
// of going through Optimize's fixed-point driver.
type Pass interface {
	Name() string
	Apply(*ir.Node) *ir.Node
}

// Metrics records one pass application's effect on node count.
type Metrics struct {
	PassName    string
	NodesBefore int
	NodesAfter  int
	Duration    time.Duration
}

// Pipeline runs a fixed sequence of passes once each, recording metrics.
// Optimize does not use Pipeline directly — it has its own fixed-point
// loop — but Pipeline is useful for profiling or running a custom subset
// of passes in a fixed order.
type Pipeline struct {
	passes  []Pass
	metrics []Metrics
}

// NewPipeline builds a pipeline running passes in order.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: passes}
}

// DefaultPipeline returns the standard fold/peephole/dce/unroll sequence
// at the given unroll factor.
func DefaultPipeline(unrollFactor int) *Pipeline {
	if unrollFactor <= 0 {
		unrollFactor = defaultUnrollFactor
	}
	return NewPipeline(
		foldPass{},
		peepholePass{},
		dcePass{},
		unrollPass{factor: unrollFactor},
	)
}

// Apply runs every pass once, in order, over node.
func (p *Pipeline) Apply(node *ir.Node) *ir.Node {
	p.metrics = make([]Metrics, 0, len(p.passes))
	current := node
	for _, pass := range p.passes {
		before := countNodes(current)
		start := time.Now()
		current = pass.Apply(current)
		dur := time.Since(start)
		p.metrics = append(p.metrics, Metrics{
			PassName:    pass.Name(),
			NodesBefore: before,
			NodesAfter:  countNodes(current),
			Duration:    dur,
		})
	}
	return current
}

// Metrics returns the metrics from the most recent Apply call.
func (p *Pipeline) Metrics() []Metrics {
	return p.metrics
}

func countNodes(n *ir.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Children {
		count += countNodes(c)
	}
	for _, c := range n.Consequent {
		count += countNodes(c)
	}
	for _, c := range n.Alternate {
		count += countNodes(c)
	}
	return count
}

type foldPass struct{}

func (foldPass) Name() string               { return "constant-folding" }
func (foldPass) Apply(n *ir.Node) *ir.Node   { return foldConstants(n) }

type peepholePass struct{}

func (peepholePass) Name() string             { return "algebraic-peephole" }
func (peepholePass) Apply(n *ir.Node) *ir.Node { return peephole(n) }

type dcePass struct{}

func (dcePass) Name() string               { return "dead-code-elimination" }
func (dcePass) Apply(n *ir.Node) *ir.Node   { return eliminateDeadCode(n) }

type unrollPass struct{ factor int }

func (p unrollPass) Name() string              { return "loop-unroll" }
func (p unrollPass) Apply(n *ir.Node) *ir.Node { return unrollLoops(n, p.factor) }
