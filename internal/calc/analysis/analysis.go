// Package analysis runs the full calculation pass over one cylinder
// design: derived geometry, forces, wall thickness, weight and, when a
// mounting is supplied, the Euler buckling check.
package analysis

import (
	cylinder "CylCalc/internal/calc/cylinder"
	mounting "CylCalc/internal/calc/mounting"
	sealcatalog "CylCalc/internal/calc/sealcatalog"
)

// Input is the request payload of one analysis: the cylinder record, an
// optional mounting record and an optional ask to pre-populate the piston
// seal fields from the catalog.
type Input struct {
	Cylinder          cylinder.Params  `json:"cylinder"`
	Mounting          *mounting.Record `json:"mounting,omitempty"`
	ApplyCatalogSeals bool             `json:"applyCatalogSeals,omitempty"`
}

// Summary is everything the presentation side needs from one design.
type Summary struct {
	Record          cylinder.Params `json:"record"`
	PistonArea      float64         `json:"pistonArea"`      // mm2
	AnnularArea     float64         `json:"annularArea"`     // mm2
	RodArea         float64         `json:"rodArea"`         // mm2
	RodInertia      float64         `json:"rodInertia"`      // mm4
	OpenLength      float64         `json:"openLength"`      // mm
	BoreToRodRatio  float64         `json:"boreToRodRatio"`
	MinClosedLength float64         `json:"minClosedLength"` // mm
	PushForce       float64         `json:"pushForce"`       // N
	PullForce       float64         `json:"pullForce"`       // N
	WallThickness   float64         `json:"wallThickness"`   // mm
	TotalWeight     float64         `json:"totalWeight"`     // kg
	Buckling        *BucklingReport `json:"buckling,omitempty"`
}

type BucklingReport struct {
	cylinder.BucklingResult
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Run validates and analyzes one design. Any typed design error is
// returned as-is so callers can surface its kind and parameter.
func Run(in Input) (Summary, error) {
	if in.ApplyCatalogSeals {
		applySeals(&in.Cylinder)
	}

	c, err := cylinder.New(in.Cylinder)
	if err != nil {
		return Summary{}, err
	}

	wall, err := c.WallThickness()
	if err != nil {
		return Summary{}, err
	}
	weight, err := c.TotalWeight()
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Record:          c.ToRecord(),
		PistonArea:      c.PistonArea(),
		AnnularArea:     c.AnnularArea(),
		RodArea:         c.RodArea(),
		RodInertia:      c.RodMomentOfInertia(),
		OpenLength:      c.OpenLength(),
		BoreToRodRatio:  c.BoreToRodRatio(),
		MinClosedLength: c.MinClosedLength(),
		PushForce:       c.PushForce(),
		PullForce:       c.PullForce(),
		WallThickness:   wall,
		TotalWeight:     weight,
	}

	if in.Mounting != nil {
		m, err := mounting.FromRecord(*in.Mounting)
		if err != nil {
			return Summary{}, err
		}
		if err := m.Validate(); err != nil {
			return Summary{}, err
		}
		res := c.Buckling(m)
		s.Buckling = &BucklingReport{
			BucklingResult: res,
			Category:       m.Category(),
			Description:    m.Description(),
		}
	}
	return s, nil
}

// applySeals fills the informational piston seal section from the catalog
// when the caller left it empty. Lookup misses are ignored.
func applySeals(p *cylinder.Params) {
	if p.Piston == nil {
		p.Piston = &cylinder.PistonSpec{}
	}
	if p.Piston.SealWidth > 0 || p.Piston.SealHeight > 0 {
		return
	}
	profile, ok := sealcatalog.LookupByDiameter(sealcatalog.CategoryPiston, p.BoreDiameter)
	if !ok {
		return
	}
	p.Piston.SealWidth = profile.Width
	p.Piston.SealHeight = profile.Height
}
