// Package mounting holds the closed family of cylinder mounting
// strategies. Each strategy carries its own attachment geometry, its Euler
// boundary-condition constants, its validation rules and a declarative
// field schema external input forms can render from.
package mounting

import (
	"math"

	cylinder "CylCalc/internal/calc/cylinder"
)

// Category tags, also the discriminator of the data-interchange record.
const (
	CategoryFrontFlange      = "frontFlange"
	CategoryRearClevis       = "rearClevis"
	CategoryTrunnion         = "trunnion"
	CategorySphericalBearing = "sphericalBearing"
)

// Field describes one input a strategy requires: data-interchange key,
// display label, unit and accepted range. Consumed by external forms only.
type Field struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Integer bool    `json:"integer,omitempty"`
}

// Mounting is the full strategy contract. It extends the minimal
// capability the cylinder's buckling analysis consumes.
type Mounting interface {
	cylinder.Mounting
	FieldSchema() []Field
	Validate() error
	ToRecord() Record
}

// Record is the flat data-interchange form of any strategy, discriminated
// by Category. Only the fields of the tagged variant are meaningful.
type Record struct {
	Category           string  `json:"category"`
	FlangeDiameter     float64 `json:"flangeDiameter,omitempty"`
	BoltCircleDiameter float64 `json:"boltCircleDiameter,omitempty"`
	BoltCount          int     `json:"boltCount,omitempty"`
	PinDiameter        float64 `json:"pinDiameter,omitempty"`
	ClevisWidth        float64 `json:"clevisWidth,omitempty"`
	AxisDistance       float64 `json:"axisDistance,omitempty"`
	HeadDistance       float64 `json:"headDistance,omitempty"`
	TrunnionDiameter   float64 `json:"trunnionDiameter,omitempty"`
	SphereDiameter     float64 `json:"sphereDiameter,omitempty"`
	BoreDiameter       float64 `json:"boreDiameter,omitempty"`
}

// Categories lists the closed strategy set in schema display order.
func Categories() []string {
	return []string{CategoryFrontFlange, CategoryRearClevis, CategoryTrunnion, CategorySphericalBearing}
}

// New returns an empty default instance of the tagged strategy. An
// unrecognized tag fails with a mounting validation error.
func New(category string) (Mounting, error) {
	switch category {
	case CategoryFrontFlange:
		return &FrontFlange{}, nil
	case CategoryRearClevis:
		return &RearClevis{}, nil
	case CategoryTrunnion:
		return &Trunnion{}, nil
	case CategorySphericalBearing:
		return &SphericalBearing{}, nil
	}
	return nil, cylinder.NewMountingError("category", "unknown mounting category %q", category)
}

// FromRecord rebuilds a strategy from its data-interchange record,
// dispatching on the category tag. Field validation stays a separate
// Validate call so partially filled forms can round-trip.
func FromRecord(rec Record) (Mounting, error) {
	switch rec.Category {
	case CategoryFrontFlange:
		return &FrontFlange{
			FlangeDiameter:     rec.FlangeDiameter,
			BoltCircleDiameter: rec.BoltCircleDiameter,
			BoltCount:          rec.BoltCount,
		}, nil
	case CategoryRearClevis:
		return &RearClevis{
			PinDiameter:  rec.PinDiameter,
			ClevisWidth:  rec.ClevisWidth,
			AxisDistance: rec.AxisDistance,
		}, nil
	case CategoryTrunnion:
		return &Trunnion{
			HeadDistance:     rec.HeadDistance,
			TrunnionDiameter: rec.TrunnionDiameter,
		}, nil
	case CategorySphericalBearing:
		return &SphericalBearing{
			SphereDiameter: rec.SphereDiameter,
			BoreDiameter:   rec.BoreDiameter,
		}, nil
	}
	return nil, cylinder.NewMountingError("category", "unknown mounting category %q", rec.Category)
}

// FrontFlange bolts the head end rigidly to the machine frame while the
// rod end stays guided: fixed-pinned boundary, n = 2.
type FrontFlange struct {
	FlangeDiameter     float64 `json:"flangeDiameter"`     // mm
	BoltCircleDiameter float64 `json:"boltCircleDiameter"` // mm
	BoltCount          int     `json:"boltCount"`
}

func (f *FrontFlange) Category() string    { return CategoryFrontFlange }
func (f *FrontFlange) Description() string { return "Front flange mount, head end fixed, rod end guided" }

func (f *FrontFlange) EndFixityCoefficient() float64  { return 2.0 }
func (f *FrontFlange) EffectiveLengthFactor() float64 { return 1 / math.Sqrt2 }

func (f *FrontFlange) FieldSchema() []Field {
	return []Field{
		{Key: "flangeDiameter", Label: "Flange diameter", Unit: "mm", Min: 1, Max: 2000},
		{Key: "boltCircleDiameter", Label: "Bolt circle diameter", Unit: "mm", Min: 1, Max: 2000},
		{Key: "boltCount", Label: "Bolt count", Unit: "", Min: 3, Max: 36, Integer: true},
	}
}

func (f *FrontFlange) Validate() error {
	if f.FlangeDiameter <= 0 {
		return cylinder.NewMountingError("flangeDiameter", "flange diameter must be positive, got %g mm", f.FlangeDiameter)
	}
	if f.BoltCircleDiameter <= 0 {
		return cylinder.NewMountingError("boltCircleDiameter", "bolt circle diameter must be positive, got %g mm", f.BoltCircleDiameter)
	}
	if f.BoltCircleDiameter >= f.FlangeDiameter {
		return cylinder.NewMountingError("boltCircleDiameter", "bolt circle diameter %g mm must stay inside the flange diameter %g mm", f.BoltCircleDiameter, f.FlangeDiameter)
	}
	if f.BoltCount < 3 {
		return cylinder.NewMountingError("boltCount", "at least 3 bolts required, got %d", f.BoltCount)
	}
	if spacing := math.Pi * f.BoltCircleDiameter / float64(f.BoltCount); spacing < 15 {
		return cylinder.NewMountingError("boltCount", "bolt spacing %.1f mm is below the 15 mm minimum", spacing)
	}
	return nil
}

func (f *FrontFlange) ToRecord() Record {
	return Record{
		Category:           CategoryFrontFlange,
		FlangeDiameter:     f.FlangeDiameter,
		BoltCircleDiameter: f.BoltCircleDiameter,
		BoltCount:          f.BoltCount,
	}
}

// RearClevis hangs the cylinder on a pin at the base and a pin at the rod
// eye: pinned-pinned boundary, n = 1.
type RearClevis struct {
	PinDiameter  float64 `json:"pinDiameter"`  // mm
	ClevisWidth  float64 `json:"clevisWidth"`  // mm
	AxisDistance float64 `json:"axisDistance"` // mm, pin axis to cylinder base
}

func (r *RearClevis) Category() string    { return CategoryRearClevis }
func (r *RearClevis) Description() string { return "Rear clevis mount, pivoting on pins at both ends" }

func (r *RearClevis) EndFixityCoefficient() float64  { return 1.0 }
func (r *RearClevis) EffectiveLengthFactor() float64 { return 1.0 }

func (r *RearClevis) FieldSchema() []Field {
	return []Field{
		{Key: "pinDiameter", Label: "Pin diameter", Unit: "mm", Min: 1, Max: 500},
		{Key: "clevisWidth", Label: "Clevis width", Unit: "mm", Min: 1, Max: 1000},
		{Key: "axisDistance", Label: "Pin axis distance", Unit: "mm", Min: 1, Max: 1000},
	}
}

func (r *RearClevis) Validate() error {
	if r.PinDiameter <= 0 {
		return cylinder.NewMountingError("pinDiameter", "pin diameter must be positive, got %g mm", r.PinDiameter)
	}
	if r.ClevisWidth <= 0 {
		return cylinder.NewMountingError("clevisWidth", "clevis width must be positive, got %g mm", r.ClevisWidth)
	}
	if r.ClevisWidth <= r.PinDiameter {
		return cylinder.NewMountingError("clevisWidth", "clevis width %g mm must exceed the pin diameter %g mm", r.ClevisWidth, r.PinDiameter)
	}
	if r.AxisDistance <= 0 {
		return cylinder.NewMountingError("axisDistance", "pin axis distance must be positive, got %g mm", r.AxisDistance)
	}
	return nil
}

func (r *RearClevis) ToRecord() Record {
	return Record{
		Category:     CategoryRearClevis,
		PinDiameter:  r.PinDiameter,
		ClevisWidth:  r.ClevisWidth,
		AxisDistance: r.AxisDistance,
	}
}

// Trunnion clamps the tube between fixed intermediate bearings and a
// rigidly held rod end: fixed-fixed boundary, n = 4.
type Trunnion struct {
	HeadDistance     float64 `json:"headDistance"`     // mm, trunnion axis to head end
	TrunnionDiameter float64 `json:"trunnionDiameter"` // mm
}

func (t *Trunnion) Category() string    { return CategoryTrunnion }
func (t *Trunnion) Description() string { return "Trunnion mount, tube held in fixed intermediate bearings" }

func (t *Trunnion) EndFixityCoefficient() float64  { return 4.0 }
func (t *Trunnion) EffectiveLengthFactor() float64 { return 0.5 }

func (t *Trunnion) FieldSchema() []Field {
	return []Field{
		{Key: "headDistance", Label: "Distance from head end", Unit: "mm", Min: 1, Max: 5000},
		{Key: "trunnionDiameter", Label: "Trunnion diameter", Unit: "mm", Min: 1, Max: 500},
	}
}

func (t *Trunnion) Validate() error {
	if t.HeadDistance <= 0 {
		return cylinder.NewMountingError("headDistance", "head distance must be positive, got %g mm", t.HeadDistance)
	}
	if t.TrunnionDiameter <= 0 {
		return cylinder.NewMountingError("trunnionDiameter", "trunnion diameter must be positive, got %g mm", t.TrunnionDiameter)
	}
	return nil
}

func (t *Trunnion) ToRecord() Record {
	return Record{
		Category:         CategoryTrunnion,
		HeadDistance:     t.HeadDistance,
		TrunnionDiameter: t.TrunnionDiameter,
	}
}

// SphericalBearing leaves the rod eye free to swing on a spherical joint
// with an unguided tube: fixed-free boundary, n = 0.25.
type SphericalBearing struct {
	SphereDiameter float64 `json:"sphereDiameter"` // mm
	BoreDiameter   float64 `json:"boreDiameter"`   // mm, bearing bore
}

func (s *SphericalBearing) Category() string { return CategorySphericalBearing }
func (s *SphericalBearing) Description() string {
	return "Spherical bearing mount, rod eye free to swing"
}

func (s *SphericalBearing) EndFixityCoefficient() float64  { return 0.25 }
func (s *SphericalBearing) EffectiveLengthFactor() float64 { return 2.0 }

func (s *SphericalBearing) FieldSchema() []Field {
	return []Field{
		{Key: "sphereDiameter", Label: "Sphere diameter", Unit: "mm", Min: 1, Max: 500},
		{Key: "boreDiameter", Label: "Bearing bore diameter", Unit: "mm", Min: 1, Max: 500},
	}
}

func (s *SphericalBearing) Validate() error {
	if s.SphereDiameter <= 0 {
		return cylinder.NewMountingError("sphereDiameter", "sphere diameter must be positive, got %g mm", s.SphereDiameter)
	}
	if s.BoreDiameter <= 0 {
		return cylinder.NewMountingError("boreDiameter", "bearing bore must be positive, got %g mm", s.BoreDiameter)
	}
	if s.BoreDiameter >= s.SphereDiameter {
		return cylinder.NewMountingError("boreDiameter", "bearing bore %g mm must stay below the sphere diameter %g mm", s.BoreDiameter, s.SphereDiameter)
	}
	if wall := (s.SphereDiameter - s.BoreDiameter) / 2; wall < 3 {
		return cylinder.NewMountingError("boreDiameter", "bearing wall %.1f mm is below the 3 mm minimum", wall)
	}
	return nil
}

func (s *SphericalBearing) ToRecord() Record {
	return Record{
		Category:       CategorySphericalBearing,
		SphereDiameter: s.SphereDiameter,
		BoreDiameter:   s.BoreDiameter,
	}
}
