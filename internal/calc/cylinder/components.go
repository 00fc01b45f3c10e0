package cylinder

// The three owned parts of a cylinder. Each one validates only its own
// fields; cross-field rules stay in the aggregate constructor.

// Piston carries the piston geometry plus informational seal data that an
// external catalog may pre-populate. It is immutable once built.
type Piston struct {
	width           float64 // mm
	material        string
	sealGrooveCount int
	sealWidth       float64 // mm, 0 when no catalog profile was applied
	sealHeight      float64 // mm, 0 when no catalog profile was applied
}

// NewPiston validates and builds a piston part.
func NewPiston(width float64, material string, sealGrooveCount int) (Piston, error) {
	if width <= 0 {
		return Piston{}, NewDimensionError("piston.width", "piston width must be positive, got %g mm", width)
	}
	if sealGrooveCount < 0 {
		return Piston{}, NewDimensionError("piston.sealGrooveCount", "seal groove count must not be negative, got %d", sealGrooveCount)
	}
	return Piston{width: width, material: material, sealGrooveCount: sealGrooveCount}, nil
}

// WithSealProfile returns a copy of the piston with the informational
// catalog seal section applied. The values take no part in validation
// or calculation.
func (p Piston) WithSealProfile(width, height float64) Piston {
	p.sealWidth = width
	p.sealHeight = height
	return p
}

func (p Piston) Width() float64       { return p.width }
func (p Piston) Material() string     { return p.material }
func (p Piston) SealGrooveCount() int { return p.sealGrooveCount }
func (p Piston) SealWidth() float64   { return p.sealWidth }
func (p Piston) SealHeight() float64  { return p.sealHeight }

// Head is the gland that guides the rod out of the tube.
type Head struct {
	totalLength float64 // mm
	guideLength float64 // mm
	material    string
}

// NewHead validates and builds a head part. The caller's rod diameter is a
// validation input only (guide length must give the rod a full bearing
// length); the head keeps no reference to the cylinder.
func NewHead(totalLength, guideLength float64, material string, rodDiameter float64) (Head, error) {
	if totalLength <= 0 {
		return Head{}, NewDimensionError("head.totalLength", "head length must be positive, got %g mm", totalLength)
	}
	if guideLength <= 0 {
		return Head{}, NewDimensionError("head.guideLength", "guide length must be positive, got %g mm", guideLength)
	}
	if guideLength > totalLength {
		return Head{}, NewDimensionError("head.guideLength", "guide length %g mm exceeds head length %g mm", guideLength, totalLength)
	}
	if guideLength < rodDiameter {
		return Head{}, NewDimensionError("head.guideLength", "guide length %g mm is below the rod diameter %g mm", guideLength, rodDiameter)
	}
	return Head{totalLength: totalLength, guideLength: guideLength, material: material}, nil
}

func (h Head) TotalLength() float64 { return h.totalLength }
func (h Head) GuideLength() float64 { return h.guideLength }
func (h Head) Material() string     { return h.material }

// Base is the closed end of the tube.
type Base struct {
	thickness float64 // mm
	portSize  string
}

// NewBase validates and builds a base part. The port size is informational.
func NewBase(thickness float64, portSize string) (Base, error) {
	if thickness <= 0 {
		return Base{}, NewDimensionError("base.thickness", "base thickness must be positive, got %g mm", thickness)
	}
	return Base{thickness: thickness, portSize: portSize}, nil
}

func (b Base) Thickness() float64 { return b.thickness }
func (b Base) PortSize() string   { return b.portSize }
