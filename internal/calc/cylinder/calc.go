package cylinder

import "math"

// Mounting is the capability a buckling analysis needs from a mounting
// strategy. Concrete strategies live in the mounting package; the cylinder
// does not own one, a strategy is supplied per call so the same cylinder
// can be evaluated under different candidate mountings.
type Mounting interface {
	Category() string
	Description() string
	// EndFixityCoefficient is the Euler constant n.
	EndFixityCoefficient() float64
	// EffectiveLengthFactor is K, with n = 1/K^2.
	EffectiveLengthFactor() float64
}

// BucklingResult is the outcome of one Euler buckling check. It is a value,
// produced fresh per call and never stored on the cylinder.
type BucklingResult struct {
	CriticalLoad    float64  `json:"criticalLoad"`    // N
	AppliedLoad     float64  `json:"appliedLoad"`     // N
	BucklingFactor  float64  `json:"bucklingFactor"`  // criticalLoad / appliedLoad
	IsSafe          bool     `json:"isSafe"`          // bucklingFactor >= SafetyFactor
	EffectiveLength float64  `json:"effectiveLength"` // mm
	Mounting        Mounting `json:"-"`
}

// PushForce is the extending force in N at full pressure on the piston
// side, including mechanical efficiency.
func (c *Cylinder) PushForce() float64 {
	return c.pressure * c.PistonArea() * MechanicalEfficiency
}

// PullForce is the retracting force in N at full pressure on the annular
// side. Always below the push force since the rod area is positive.
func (c *Cylinder) PullForce() float64 {
	return c.pressure * c.AnnularArea() * MechanicalEfficiency
}

// WallThickness solves the Lame thick-wall equation for the minimum tube
// wall in mm at the design safety factor. When the allowable stress does
// not exceed the working pressure no single-wall tube can hold the
// pressure and the solve fails with an invalid-pressure error.
func (c *Cylinder) WallThickness() (float64, error) {
	allowable := YieldStrength / SafetyFactor
	if allowable <= c.pressure {
		return 0, NewPressureError("pressure",
			"single-wall design infeasible: allowable stress %g MPa does not exceed the working pressure %g MPa", allowable, c.pressure)
	}
	innerRadius := c.boreDiameter / 2
	outerRadius := innerRadius * math.Sqrt((allowable+c.pressure)/(allowable-c.pressure))
	return outerRadius - innerRadius, nil
}

// Buckling runs the Euler column check of the rod against the given
// mounting. The fully extended length is used as the buckling length, the
// worst case, and the push force as the applied compressive load. It
// cannot fail on a validated cylinder.
func (c *Cylinder) Buckling(m Mounting) BucklingResult {
	length := c.OpenLength()
	critical := m.EndFixityCoefficient() * math.Pi * math.Pi * ElasticModulus * c.RodMomentOfInertia() / (length * length)
	applied := c.PushForce()
	factor := critical / applied
	return BucklingResult{
		CriticalLoad:    critical,
		AppliedLoad:     applied,
		BucklingFactor:  factor,
		IsSafe:          factor >= SafetyFactor,
		EffectiveLength: m.EffectiveLengthFactor() * length,
		Mounting:        m,
	}
}

// TotalWeight is a coarse steel mass estimate in kg from simplified
// annular and cylindrical volumes. The outer tube diameter uses the Lame
// wall plus a 1 mm manufacturing allowance, so the Lame infeasibility
// error propagates.
func (c *Cylinder) TotalWeight() (float64, error) {
	wall, err := c.WallThickness()
	if err != nil {
		return 0, err
	}
	wall += 1 // manufacturing allowance
	outer := c.boreDiameter + 2*wall

	tube := math.Pi / 4 * (outer*outer - c.boreDiameter*c.boreDiameter) * c.closedLength
	rod := c.RodArea() * c.closedLength
	piston := c.PistonArea() * c.piston.width
	head := c.PistonArea() * c.head.totalLength
	base := math.Pi / 4 * outer * outer * c.base.thickness

	const mm3PerM3 = 1e9
	return (tube + rod + piston + head + base) / mm3PerM3 * SteelDensity, nil
}
