package model

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifegrid/rules"
)

// Strategy names accepted by NewEngine.
const (
	StrategySnapshot    = "snapshot"
	StrategyParallel    = "parallel"
	StrategyBounded     = "bounded"
	StrategyGraph       = "graph"
	StrategyConvolution = "convolution"
)

// Engine computes the next generation of a grid. Implementations never mutate their input
// and always return a new grid with the same dimensions.
type Engine interface {
	Advance(g *Grid) *Grid
}

// NewEngine returns the engine registered under strategy. An empty name selects the
// snapshot engine. workers only applies to the parallel strategy.
func NewEngine(strategy string, workers int) (Engine, error) {
	switch strategy {
	case "", StrategySnapshot:
		return SnapshotEngine{}, nil
	case StrategyParallel:
		return ParallelEngine{Workers: workers}, nil
	case StrategyBounded:
		return BoundedEngine{}, nil
	case StrategyGraph:
		return GraphEngine{}, nil
	case StrategyConvolution:
		return ConvolutionEngine{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownStrategy, "[NewEngine] %q", strategy)
}

// Advance computes the next generation with the default engine.
func Advance(g *Grid) *Grid {
	return SnapshotEngine{}.Advance(g)
}

// nextState applies the Life rule to the cell at c of the frozen grid g.
func (g *Grid) nextState(c Coordinate) CellState {
	alive := g.cells[g.index(c)] == Alive
	return StateOf(rules.ApplyConwayRules(CountLiveNeighbors(g, c), alive))
}

// SnapshotEngine rebuilds the whole grid from the frozen previous generation.
type SnapshotEngine struct{}

func (SnapshotEngine) Advance(g *Grid) *Grid {
	next := newGrid(g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			c := At(y, x)
			next.cells[next.index(c)] = g.nextState(c)
		}
	}
	return next
}

// ParallelEngine shards rows across workers. Every worker reads the frozen input and writes a
// disjoint row range of the output.
type ParallelEngine struct {
	// Workers defaults to runtime.NumCPU() when not positive.
	Workers int
}

func (e ParallelEngine) Advance(g *Grid) *Grid {
	next := newGrid(g.width, g.height)

	numWorkers := e.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := range g.width {
					c := At(y, x)
					next.cells[next.index(c)] = g.nextState(c)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		// Workers never return errors; reaching this is a bug.
		panic(fmt.Sprintf("parallel generation: %v", err))
	}
	return next
}
