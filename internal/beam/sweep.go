package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// FractionGrid returns n evenly spaced doubly-charged fractions covering
// [0,1], endpoints included.
func FractionGrid(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, n)
	}
	grid := floats.Span(make([]float64, n), 0, 1)
	// Span accumulates step*i; pin the endpoints.
	grid[0], grid[n-1] = 0, 1
	return grid, nil
}

// Run evaluates the beam model at every grid fraction, in order.
func Run(c Constants, grid []float64) (*Sweep, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: got an empty grid", ErrGridSize)
	}
	for i, f := range grid {
		if math.IsNaN(f) || f < 0 || f > 1 {
			return nil, fmt.Errorf("fraction %d out of [0,1]: %g", i, f)
		}
	}

	s := NewSweep(c, len(grid))
	for _, f := range grid {
		s.append(Evaluate(c, f))
	}
	return s, nil
}

// RunDefault sweeps c over the DefaultSamples grid.
func RunDefault(c Constants) (*Sweep, error) {
	grid, err := FractionGrid(DefaultSamples)
	if err != nil {
		return nil, err
	}
	return Run(c, grid)
}
