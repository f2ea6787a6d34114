package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wasmforge/forge/emit"
	"github.com/wasmforge/forge/internal/log"
	"github.com/wasmforge/forge/ir"
	"github.com/wasmforge/forge/optimize"
	"github.com/wasmforge/forge/probe"
	"github.com/wasmforge/forge/vectorize"
)

func main() {
	var (
		out         = flag.String("o", "", "Write the emitted binary to this path")
		level       = flag.Int("level", 3, "Optimizer level (0-3)")
		unroll      = flag.Int("unroll", 0, "Loop unroll factor at level 3 (0 = default)")
		target      = flag.String("target", "f32", "Auto-vectorizer target type (f32 or i32)")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive TUI mode")
		runSmoke    = flag.Bool("run", false, "Instantiate a standalone add module under wazero and call add(2, 3) as a smoke check")
	)
	flag.Parse()

	if *verbose {
		zl, err := zap.NewDevelopment()
		if err == nil {
			log.SetLogger(zl)
		}
	}

	if *interactive {
		if err := runInteractive(*level, *unroll, *target); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*level, *unroll, *target, *out, *runSmoke); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(level, unroll int, target, out string, runSmoke bool) error {
	fmt.Println("Building sample module (vec_scale, add, sum_to_n)...")
	mod := sampleModule()

	cfg := optimize.Config{Level: level, UnrollFactor: unroll}
	optimized := optimize.Optimize(mod, cfg)
	fmt.Printf("Optimized at level %d\n", level)

	vecCfg := vectorize.Config{TargetType: target}
	for i, fn := range optimized.Children {
		if fn.Type != "func" {
			continue
		}
		res := vectorize.Vectorize(fn, vecCfg)
		optimized.Children[i] = res.Func
		if res.Success {
			fmt.Printf("  %s -> vectorized, width %d\n", fn.Name, res.Width)
		} else {
			fmt.Printf("  %s -> left scalar\n", fn.Name)
		}
	}

	bin, err := emit.Emit(optimized)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	fmt.Printf("Emitted %d bytes\n", len(bin))
	fmt.Printf("SIMD supported: %v\n", probe.IsSimdSupported())
	fmt.Printf("Threads supported: %v\n", probe.IsThreadsSupported())

	if out != "" {
		if err := os.WriteFile(out, bin, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Wrote %s\n", out)
	}

	if runSmoke {
		result, err := smokeCallAdd()
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		fmt.Printf("add(2, 3) = %d\n", result)
	}
	return nil
}

// stageResult is the outcome of one pipeline stage, as produced by
// runPipeline for the interactive TUI.
type stageResult struct {
	name string
	size int
	note string
}

func runPipeline(level, unroll int, target string) ([]stageResult, []byte, error) {
	var stages []stageResult

	mod := sampleModule()
	stages = append(stages, stageResult{"build", countNodes(mod), "3 functions"})

	cfg := optimize.Config{Level: level, UnrollFactor: unroll}
	optimized := optimize.Optimize(mod, cfg)
	stages = append(stages, stageResult{"optimize", countNodes(optimized), fmt.Sprintf("level %d", level)})

	vecCfg := vectorize.Config{TargetType: target}
	vectorizedCount := 0
	for i, fn := range optimized.Children {
		if fn.Type != "func" {
			continue
		}
		res := vectorize.Vectorize(fn, vecCfg)
		optimized.Children[i] = res.Func
		if res.Success {
			vectorizedCount++
		}
	}
	stages = append(stages, stageResult{"vectorize", countNodes(optimized), fmt.Sprintf("%d func(s) widened", vectorizedCount)})

	bin, err := emit.Emit(optimized)
	if err != nil {
		return stages, nil, fmt.Errorf("emit: %w", err)
	}
	stages = append(stages, stageResult{"emit", len(bin), "bytes"})

	simd := probe.IsSimdSupported()
	threads := probe.IsThreadsSupported()
	note := "no simd, no threads"
	switch {
	case simd && threads:
		note = "simd + threads"
	case simd:
		note = "simd"
	case threads:
		note = "threads"
	}
	stages = append(stages, stageResult{"probe", 0, note})

	return stages, bin, nil
}

func countNodes(n *ir.Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	for _, c := range n.Consequent {
		total += countNodes(c)
	}
	for _, c := range n.Alternate {
		total += countNodes(c)
	}
	return total
}
