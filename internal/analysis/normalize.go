package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/user/ion_beam_go/internal/beam"
)

// normalize divides every element by the sequence maximum. The maximum
// element maps to exactly 1.
func normalize(name string, data []float64) ([]float64, float64, error) {
	if len(data) == 0 {
		return nil, 0, &DegenerateInputError{Sequence: name, Empty: true}
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, &DegenerateInputError{Sequence: name, Max: v}
		}
	}
	peak := floats.Max(data)
	if peak <= 0 {
		return nil, 0, &DegenerateInputError{Sequence: name, Max: peak}
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v / peak
	}
	return out, peak, nil
}

// Normalize scales the current, mass flow and thrust sequences of a sweep
// into [0,1] by their respective maxima, and records a summary of each raw
// sequence.
func Normalize(s *beam.Sweep) (*Normalized, error) {
	if s == nil {
		return nil, fmt.Errorf("sweep is nil, cannot normalize")
	}
	n := &Normalized{Fractions: append([]float64(nil), s.Fractions...)}
	raw := []NamedSeries{
		{Name: SeriesCurrent, Values: s.Current},
		{Name: SeriesMassFlow, Values: s.MassFlow},
		{Name: SeriesThrust, Values: s.Thrust},
	}
	for _, r := range raw {
		if len(r.Values) != len(s.Fractions) {
			return nil, fmt.Errorf("%s has %d values for %d fractions", r.Name, len(r.Values), len(s.Fractions))
		}
	}

	out := make([][]float64, len(raw))
	for i, r := range raw {
		norm, peak, err := normalize(r.Name, r.Values)
		if err != nil {
			return nil, err
		}
		out[i] = norm
		n.Summaries = append(n.Summaries, SeriesSummary{
			Name:         r.Name,
			Max:          peak,
			MinNorm:      floats.Min(norm),
			PeakFraction: s.Fractions[floats.MaxIdx(r.Values)],
		})
	}
	n.Current, n.MassFlow, n.Thrust = out[0], out[1], out[2]
	return n, nil
}
