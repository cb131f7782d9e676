package analysis

import "fmt"

// Names of the three beam characteristic sequences.
const (
	SeriesCurrent  = "current"
	SeriesMassFlow = "mass flow"
	SeriesThrust   = "thrust"
)

// Normalized holds each beam characteristic divided by its own maximum.
type Normalized struct {
	Fractions []float64 // doubly-charged fraction axis, shared by all series
	Current   []float64
	MassFlow  []float64
	Thrust    []float64

	Summaries []SeriesSummary // one per raw sequence, in Series order
}

// Series returns the normalized sequences in plotting order.
func (n *Normalized) Series() []NamedSeries {
	return []NamedSeries{
		{Name: SeriesCurrent, Values: n.Current},
		{Name: SeriesMassFlow, Values: n.MassFlow},
		{Name: SeriesThrust, Values: n.Thrust},
	}
}

// NamedSeries pairs a sequence with its name.
type NamedSeries struct {
	Name   string
	Values []float64
}

// SeriesSummary describes one raw sequence before normalization.
type SeriesSummary struct {
	Name         string
	Max          float64 // raw maximum, the normalization divisor
	MinNorm      float64 // smallest normalized value
	PeakFraction float64 // fraction at which the maximum occurs
}

// DegenerateInputError reports a sequence that cannot be normalized because
// its maximum is zero, negative or not finite, or because it is empty.
type DegenerateInputError struct {
	Sequence string
	Max      float64
	Empty    bool
}

func (e *DegenerateInputError) Error() string {
	if e.Empty {
		return fmt.Sprintf("cannot normalize %s: sequence is empty", e.Sequence)
	}
	return fmt.Sprintf("cannot normalize %s: maximum is %g", e.Sequence, e.Max)
}
