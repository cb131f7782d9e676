package beam

import (
	"errors"
	"fmt"
	"math"
)

const (
	ElementaryCharge = 1.602e-19   // C
	AtomicMassUnit   = 1.66054e-27 // kg/u
	XenonMassAMU     = 131.3       // u
	AccelVoltage     = 1000.0      // V

	// DefaultSamples is the number of points in the doubly-charged fraction grid.
	DefaultSamples = 100
)

var (
	ErrInvalidConstants = errors.New("invalid beam constants")
	ErrGridSize         = errors.New("fraction grid needs at least two points")
)

// Constants holds the physical inputs fixed for a whole sweep.
type Constants struct {
	Charge  float64 // elementary charge, C
	IonMass float64 // kg
	Voltage float64 // accelerating voltage, V
}

// Xenon returns the constants for a xenon beam accelerated through AccelVoltage.
func Xenon() Constants {
	return Constants{
		Charge:  ElementaryCharge,
		IonMass: XenonMassAMU * AtomicMassUnit,
		Voltage: AccelVoltage,
	}
}

// Validate checks that every constant is strictly positive and finite.
func (c Constants) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"charge", c.Charge},
		{"ion mass", c.IonMass},
		{"voltage", c.Voltage},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) || f.val <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidConstants, f.name, f.val)
		}
	}
	return nil
}

// Species is the contribution of one charge state to the beam.
type Species struct {
	ChargeState int
	Fraction    float64 // share of the unit ion count
	Velocity    float64 // m/s
}

// Sample holds the beam characteristics for one doubly-charged fraction.
type Sample struct {
	Fraction float64 // f2
	Current  float64 // A, unit ion-count basis
	MassFlow float64 // kg/s, unit ion-count basis
	Thrust   float64 // N, momentum-flow proxy
}

// Sweep holds the result sequences, index-aligned with Fractions.
type Sweep struct {
	Constants Constants
	Fractions []float64
	Current   []float64
	MassFlow  []float64
	Thrust    []float64
}

// NewSweep allocates a Sweep with room for n samples.
func NewSweep(c Constants, n int) *Sweep {
	return &Sweep{
		Constants: c,
		Fractions: make([]float64, 0, n),
		Current:   make([]float64, 0, n),
		MassFlow:  make([]float64, 0, n),
		Thrust:    make([]float64, 0, n),
	}
}

func (s *Sweep) append(smp Sample) {
	s.Fractions = append(s.Fractions, smp.Fraction)
	s.Current = append(s.Current, smp.Current)
	s.MassFlow = append(s.MassFlow, smp.MassFlow)
	s.Thrust = append(s.Thrust, smp.Thrust)
}

// Len returns the number of samples in the sweep.
func (s *Sweep) Len() int {
	return len(s.Fractions)
}

// At returns the i-th sample.
func (s *Sweep) At(i int) Sample {
	return Sample{
		Fraction: s.Fractions[i],
		Current:  s.Current[i],
		MassFlow: s.MassFlow[i],
		Thrust:   s.Thrust[i],
	}
}
