package analysis

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/user/ion_beam_go/internal/beam"
)

func xenonSweep(t *testing.T) *beam.Sweep {
	t.Helper()
	s, err := beam.RunDefault(beam.Xenon())
	if err != nil {
		t.Fatalf("sweep failed: %s", err)
	}
	return s
}

func TestNormalizeLaw(t *testing.T) {
	n, err := Normalize(xenonSweep(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Fractions) != beam.DefaultSamples {
		t.Fatalf("fraction axis has %d points", len(n.Fractions))
	}
	for _, s := range n.Series() {
		if len(s.Values) != beam.DefaultSamples {
			t.Fatalf("%s has %d values", s.Name, len(s.Values))
		}
		if peak := floats.Max(s.Values); peak != 1 {
			t.Fatalf("%s max is %.17g", s.Name, peak)
		}
		if low := floats.Min(s.Values); low < 0 {
			t.Fatalf("%s min is %g", s.Name, low)
		}
	}
}

func TestNormalizeEndpoints(t *testing.T) {
	n, err := Normalize(xenonSweep(t))
	if err != nil {
		t.Fatal(err)
	}
	// Every characteristic peaks at a pure Xe2+ beam; the pure Xe+ value is
	// the ratio of the per-ion contributions.
	tests := []struct {
		name   string
		values []float64
		start  float64
	}{
		{SeriesCurrent, n.Current, 1 / (2 * math.Sqrt2)},
		{SeriesMassFlow, n.MassFlow, 1 / math.Sqrt2},
		{SeriesThrust, n.Thrust, 0.5},
	}
	for _, tt := range tests {
		if !scalar.EqualWithinRel(tt.values[0], tt.start, 1e-12) {
			t.Errorf("%s at f2=0 is %g, expected %g", tt.name, tt.values[0], tt.start)
		}
		if tt.values[len(tt.values)-1] != 1 {
			t.Errorf("%s at f2=1 is %g, expected 1", tt.name, tt.values[len(tt.values)-1])
		}
	}
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	s := xenonSweep(t)
	cur := append([]float64(nil), s.Current...)
	if _, err := Normalize(s); err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(cur, s.Current) {
		t.Fatal("raw current sequence was modified")
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	good := []float64{1, 2}
	tests := []struct {
		name     string
		sweep    *beam.Sweep
		sequence string
	}{
		{"zeros", &beam.Sweep{Fractions: []float64{0, 1}, Current: []float64{0, 0}, MassFlow: good, Thrust: good}, SeriesCurrent},
		{"negative", &beam.Sweep{Fractions: []float64{0, 1}, Current: good, MassFlow: []float64{-1, -2}, Thrust: good}, SeriesMassFlow},
		{"nan", &beam.Sweep{Fractions: []float64{0, 1}, Current: good, MassFlow: good, Thrust: []float64{1, math.NaN()}}, SeriesThrust},
		{"inf", &beam.Sweep{Fractions: []float64{0, 1}, Current: []float64{math.Inf(1), 1}, MassFlow: good, Thrust: good}, SeriesCurrent},
		{"empty", &beam.Sweep{}, SeriesCurrent},
	}
	for _, tt := range tests {
		_, err := Normalize(tt.sweep)
		var derr *DegenerateInputError
		if !errors.As(err, &derr) {
			t.Errorf("%s: expected DegenerateInputError, got %v", tt.name, err)
			continue
		}
		if derr.Sequence != tt.sequence {
			t.Errorf("%s: error names %q, expected %q", tt.name, derr.Sequence, tt.sequence)
		}
	}

	if _, err := Normalize(nil); err == nil {
		t.Fatal("expected an error for a nil sweep")
	}
}

func TestNormalizeMisaligned(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*beam.Sweep)
	}{
		{"short current", func(s *beam.Sweep) { s.Current = s.Current[:10] }},
		{"long mass flow", func(s *beam.Sweep) { s.MassFlow = append(s.MassFlow, 1) }},
		{"short thrust", func(s *beam.Sweep) { s.Thrust = s.Thrust[1:] }},
	}
	for _, tt := range tests {
		s := xenonSweep(t)
		tt.mutate(s)
		_, err := Normalize(s)
		if err == nil {
			t.Errorf("%s: expected an error for misaligned sequences", tt.name)
			continue
		}
		var derr *DegenerateInputError
		if errors.As(err, &derr) {
			t.Errorf("%s: misalignment reported as degenerate input: %s", tt.name, err)
		}
	}
}

func TestNormalizeSummaries(t *testing.T) {
	s := xenonSweep(t)
	n, err := Normalize(s)
	if err != nil {
		t.Fatal(err)
	}
	sums := n.Summaries
	if len(sums) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(sums))
	}
	for i, sum := range sums {
		if sum.Name != n.Series()[i].Name {
			t.Errorf("summary %d is %q, expected %q", i, sum.Name, n.Series()[i].Name)
		}
		if sum.MinNorm != floats.Min(n.Series()[i].Values) {
			t.Errorf("%s summary min disagrees with the normalized series", sum.Name)
		}
		if sum.PeakFraction != 1 {
			t.Errorf("%s peaks at %g, expected 1", sum.Name, sum.PeakFraction)
		}
		if sum.MinNorm <= 0 || sum.MinNorm >= 1 {
			t.Errorf("%s normalized min %g out of (0,1)", sum.Name, sum.MinNorm)
		}
	}
	last := s.At(s.Len() - 1)
	if sums[0].Max != last.Current || sums[1].Max != last.MassFlow || sums[2].Max != last.Thrust {
		t.Fatal("summary maxima do not match the pure Xe2+ sample")
	}
}
