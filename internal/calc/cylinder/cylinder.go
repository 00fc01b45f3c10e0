// Package cylinder models a double-acting hydraulic cylinder as an
// immutable, validated aggregate and computes its mechanical outputs:
// actuation forces, minimum pressure-vessel wall thickness (Lame), and
// Euler column buckling safety for a chosen mounting.
package cylinder

import "math"

// Design constants shared by validation and calculation. All lengths are
// mm, pressures and stresses MPa, forces N.
const (
	MechanicalEfficiency = 0.95
	SafetyFactor         = 2.5
	ElasticModulus       = 210000.0 // MPa, structural steel
	YieldStrength        = 355.0    // MPa, S355
	DefaultExtraMargin   = 7.5      // mm
	SteelDensity         = 7850.0   // kg/m3
)

// PistonSpec is the piston part of the flat data-interchange record.
// Zero-valued optional fields take the computed defaults.
type PistonSpec struct {
	Width           float64 `json:"width"`
	Material        string  `json:"material"`
	SealGrooveCount int     `json:"sealGrooveCount"`
	SealWidth       float64 `json:"sealWidth,omitempty"`
	SealHeight      float64 `json:"sealHeight,omitempty"`
}

// HeadSpec is the head (gland) part of the record.
type HeadSpec struct {
	TotalLength float64 `json:"totalLength"`
	GuideLength float64 `json:"guideLength"`
	Material    string  `json:"material"`
}

// BaseSpec is the base part of the record.
type BaseSpec struct {
	Thickness float64 `json:"thickness"`
	PortSize  string  `json:"portSize"`
}

// Params is both the constructor input and the flat data-interchange
// record for a cylinder. Nil sub-specs and a nil extra margin resolve to
// defaults derived from the rod and bore diameters.
type Params struct {
	Pressure     float64     `json:"pressure"`     // MPa
	BoreDiameter float64     `json:"boreDiameter"` // mm
	RodDiameter  float64     `json:"rodDiameter"`  // mm
	Stroke       float64     `json:"stroke"`       // mm
	ClosedLength float64     `json:"closedLength"` // mm
	ExtraMargin  *float64    `json:"extraMargin,omitempty"`
	Piston       *PistonSpec `json:"piston,omitempty"`
	Head         *HeadSpec   `json:"head,omitempty"`
	Base         *BaseSpec   `json:"base,omitempty"`
}

// Cylinder is the validated aggregate. It is immutable: any parameter
// change requires constructing a new instance through New.
type Cylinder struct {
	pressure     float64
	boreDiameter float64
	rodDiameter  float64
	stroke       float64
	closedLength float64
	extraMargin  float64
	piston       Piston
	head         Head
	base         Base
}

// New resolves defaults for any unsupplied part, then runs the fixed-order
// validation pipeline. The first violated rule is reported and no cylinder
// is returned. Part-level rules fire before the aggregate-level sequence
// because the parts are constructed first.
func New(p Params) (*Cylinder, error) {
	// Phase 1: resolve every optional input to its effective value.
	pistonSpec := PistonSpec{}
	if p.Piston != nil {
		pistonSpec = *p.Piston
	}
	if pistonSpec.Width == 0 {
		pistonSpec.Width = 0.6 * p.RodDiameter
	}
	headSpec := HeadSpec{}
	if p.Head != nil {
		headSpec = *p.Head
	}
	if headSpec.TotalLength == 0 {
		headSpec.TotalLength = math.Max(1.2*p.RodDiameter, 25)
	}
	if headSpec.GuideLength == 0 {
		headSpec.GuideLength = p.RodDiameter
	}
	baseSpec := BaseSpec{}
	if p.Base != nil {
		baseSpec = *p.Base
	}
	if baseSpec.Thickness == 0 {
		baseSpec.Thickness = math.Max(0.12*p.BoreDiameter, 12)
	}
	extraMargin := DefaultExtraMargin
	if p.ExtraMargin != nil {
		extraMargin = *p.ExtraMargin
	}

	piston, err := NewPiston(pistonSpec.Width, pistonSpec.Material, pistonSpec.SealGrooveCount)
	if err != nil {
		return nil, err
	}
	if pistonSpec.SealWidth > 0 || pistonSpec.SealHeight > 0 {
		piston = piston.WithSealProfile(pistonSpec.SealWidth, pistonSpec.SealHeight)
	}
	head, err := NewHead(headSpec.TotalLength, headSpec.GuideLength, headSpec.Material, p.RodDiameter)
	if err != nil {
		return nil, err
	}
	base, err := NewBase(baseSpec.Thickness, baseSpec.PortSize)
	if err != nil {
		return nil, err
	}

	c := &Cylinder{
		pressure:     p.Pressure,
		boreDiameter: p.BoreDiameter,
		rodDiameter:  p.RodDiameter,
		stroke:       p.Stroke,
		closedLength: p.ClosedLength,
		extraMargin:  extraMargin,
		piston:       piston,
		head:         head,
		base:         base,
	}

	// Phase 2: cross-field rules in fixed order, first violation wins.
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cylinder) validate() error {
	if c.pressure <= 0 {
		return NewPressureError("pressure", "working pressure must be positive, got %g MPa", c.pressure)
	}
	if c.boreDiameter <= 0 {
		return NewDimensionError("boreDiameter", "bore diameter must be positive, got %g mm", c.boreDiameter)
	}
	if c.rodDiameter <= 0 {
		return NewDimensionError("rodDiameter", "rod diameter must be positive, got %g mm", c.rodDiameter)
	}
	// Equality is rejected too: it would leave zero annular area.
	if c.rodDiameter >= c.boreDiameter {
		return NewDimensionError("rodDiameter", "rod diameter %g mm must be strictly below the bore diameter %g mm", c.rodDiameter, c.boreDiameter)
	}
	if c.stroke <= 0 {
		return NewStrokeError("stroke", "stroke must be positive, got %g mm", c.stroke)
	}
	if c.closedLength <= 0 {
		return NewStrokeError("closedLength", "closed length must be positive, got %g mm", c.closedLength)
	}
	if c.closedLength <= c.stroke {
		return NewStrokeError("closedLength", "closed length %g mm must exceed the stroke %g mm", c.closedLength, c.stroke)
	}
	if c.extraMargin < 0 {
		return NewStrokeError("extraMargin", "extra margin must not be negative, got %g mm", c.extraMargin)
	}
	if minLength := c.MinClosedLength(); c.closedLength < minLength {
		return NewStrokeError("closedLength", "closed length %g mm is below the minimum %g mm required by the internal parts", c.closedLength, minLength)
	}
	return nil
}

// MinimumClosedLength is the length budget the internal parts impose on the
// closed length. Exposed as a free function so callers can pre-check a
// candidate design before construction.
func MinimumClosedLength(pistonWidth, headTotalLength, baseThickness, stroke, extraMargin float64) float64 {
	return pistonWidth + headTotalLength + baseThickness + stroke + extraMargin
}

// MinClosedLength is the minimum closed length of this cylinder's parts.
func (c *Cylinder) MinClosedLength() float64 {
	return MinimumClosedLength(c.piston.width, c.head.totalLength, c.base.thickness, c.stroke, c.extraMargin)
}

func (c *Cylinder) Pressure() float64     { return c.pressure }
func (c *Cylinder) BoreDiameter() float64 { return c.boreDiameter }
func (c *Cylinder) RodDiameter() float64  { return c.rodDiameter }
func (c *Cylinder) Stroke() float64       { return c.stroke }
func (c *Cylinder) ClosedLength() float64 { return c.closedLength }
func (c *Cylinder) ExtraMargin() float64  { return c.extraMargin }
func (c *Cylinder) Piston() Piston        { return c.piston }
func (c *Cylinder) Head() Head            { return c.head }
func (c *Cylinder) Base() Base            { return c.base }

// PistonArea is the full bore area in mm2, the pressure-acting area when
// extending.
func (c *Cylinder) PistonArea() float64 {
	return math.Pi / 4 * c.boreDiameter * c.boreDiameter
}

// AnnularArea is the bore area minus the rod area in mm2, the
// pressure-acting area when retracting.
func (c *Cylinder) AnnularArea() float64 {
	return math.Pi / 4 * (c.boreDiameter*c.boreDiameter - c.rodDiameter*c.rodDiameter)
}

// RodArea is the rod cross-section in mm2.
func (c *Cylinder) RodArea() float64 {
	return math.Pi / 4 * c.rodDiameter * c.rodDiameter
}

// RodMomentOfInertia is the second moment of area of the rod section in mm4.
func (c *Cylinder) RodMomentOfInertia() float64 {
	return math.Pi / 64 * math.Pow(c.rodDiameter, 4)
}

// OpenLength is the fully extended overall length in mm.
func (c *Cylinder) OpenLength() float64 {
	return c.closedLength + c.stroke
}

// BoreToRodRatio is the bore diameter over the rod diameter.
func (c *Cylinder) BoreToRodRatio() float64 {
	return c.boreDiameter / c.rodDiameter
}

// ToRecord returns the fully resolved flat data-interchange record.
// Reconstructing from it reproduces an identical cylinder.
func (c *Cylinder) ToRecord() Params {
	margin := c.extraMargin
	return Params{
		Pressure:     c.pressure,
		BoreDiameter: c.boreDiameter,
		RodDiameter:  c.rodDiameter,
		Stroke:       c.stroke,
		ClosedLength: c.closedLength,
		ExtraMargin:  &margin,
		Piston: &PistonSpec{
			Width:           c.piston.width,
			Material:        c.piston.material,
			SealGrooveCount: c.piston.sealGrooveCount,
			SealWidth:       c.piston.sealWidth,
			SealHeight:      c.piston.sealHeight,
		},
		Head: &HeadSpec{
			TotalLength: c.head.totalLength,
			GuideLength: c.head.guideLength,
			Material:    c.head.material,
		},
		Base: &BaseSpec{
			Thickness: c.base.thickness,
			PortSize:  c.base.portSize,
		},
	}
}

// FromRecord rebuilds a cylinder from a data-interchange record, re-running
// the full construction validation.
func FromRecord(rec Params) (*Cylinder, error) {
	return New(rec)
}
