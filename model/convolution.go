package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConvolutionEngine computes neighbor sums as the matrix product T_h * G * T_w, where T_n is
// the n x n tridiagonal matrix of ones. Rows and columns beyond the edge have no band
// entries, so the sum clamps at the borders instead of wrapping.
//
// Each cell is then scored with the kernel {2,2,2 / 2,1,2 / 2,2,2}: score = 2*sum - center.
// A cell is alive in the next generation iff 5 <= score <= 7.
type ConvolutionEngine struct{}

func (ConvolutionEngine) Advance(g *Grid) *Grid {
	cells := mat.NewDense(g.height, g.width, nil)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] == Alive {
				cells.Set(y, x, 1)
			}
		}
	}

	var block, sums mat.Dense
	block.Mul(tridiagonal(g.height), cells)
	sums.Mul(&block, tridiagonal(g.width))

	next := newGrid(g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			center := cells.At(y, x)
			score := int(math.Round(2*sums.At(y, x) - center))
			if score >= 5 && score <= 7 {
				next.cells[y*g.width+x] = Alive
			}
		}
	}
	return next
}

func tridiagonal(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := range n {
		for j := max(0, i-1); j <= min(n-1, i+1); j++ {
			m.Set(i, j, 1)
		}
	}
	return m
}
