package beam

import "math"

// Velocity returns the exit speed of an ion with charge state q accelerated
// through c.Voltage, from q*e*V = M*v^2/2.
func Velocity(c Constants, q int) float64 {
	return math.Sqrt(2 * float64(q) * c.Charge * c.Voltage / c.IonMass)
}

// SpeciesAt splits a unit ion count into its singly- and doubly-charged parts.
// f2 must lie in [0,1].
func SpeciesAt(c Constants, f2 float64) (single, double Species) {
	single = Species{ChargeState: 1, Fraction: 1 - f2, Velocity: Velocity(c, 1)}
	double = Species{ChargeState: 2, Fraction: f2, Velocity: Velocity(c, 2)}
	return
}

// Evaluate computes current, mass flow and thrust for the doubly-charged
// fraction f2. Thrust is taken as fraction*M*v^2 summed over species, a
// momentum-flow proxy that ignores divergence and efficiency terms.
func Evaluate(c Constants, f2 float64) Sample {
	single, double := SpeciesAt(c, f2)
	smp := Sample{Fraction: f2}
	for _, sp := range []Species{single, double} {
		q := float64(sp.ChargeState)
		smp.Current += sp.Fraction * q * c.Charge * sp.Velocity
		smp.MassFlow += sp.Fraction * c.IonMass * sp.Velocity
		smp.Thrust += sp.Fraction * c.IonMass * sp.Velocity * sp.Velocity
	}
	return smp
}
