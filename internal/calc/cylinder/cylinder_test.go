package cylinder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validParams is the reference design used across the calculation tests:
// 80 mm bore, 45 mm rod, 20 MPa, 500 mm stroke, 700 mm closed length.
func validParams() Params {
	return Params{
		Pressure:     20,
		BoreDiameter: 80,
		RodDiameter:  45,
		Stroke:       500,
		ClosedLength: 700,
	}
}

func TestNewResolvesDefaults(t *testing.T) {
	c, err := New(validParams())
	require.NoError(t, err)

	assert.InDelta(t, 0.6*45, c.Piston().Width(), 1e-9)
	assert.InDelta(t, 1.2*45, c.Head().TotalLength(), 1e-9) // 54 > 25 floor
	assert.InDelta(t, 45, c.Head().GuideLength(), 1e-9)
	assert.InDelta(t, 12, c.Base().Thickness(), 1e-9) // 0.12*80=9.6, floor wins
	assert.InDelta(t, DefaultExtraMargin, c.ExtraMargin(), 1e-9)
}

func TestNewHeadLengthFloor(t *testing.T) {
	p := validParams()
	p.RodDiameter = 18
	c, err := New(p)
	require.NoError(t, err)
	assert.InDelta(t, 25, c.Head().TotalLength(), 1e-9) // 1.2*18=21.6 < 25
}

func TestNewKeepsSuppliedParts(t *testing.T) {
	p := validParams()
	p.Piston = &PistonSpec{Width: 40, Material: "42CrMo4", SealGrooveCount: 2}
	p.Head = &HeadSpec{TotalLength: 60, GuideLength: 50, Material: "CuSn8"}
	p.Base = &BaseSpec{Thickness: 20, PortSize: "G1/2"}
	margin := 0.0
	p.ExtraMargin = &margin

	c, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, 40.0, c.Piston().Width())
	assert.Equal(t, "42CrMo4", c.Piston().Material())
	assert.Equal(t, 2, c.Piston().SealGrooveCount())
	assert.Equal(t, 60.0, c.Head().TotalLength())
	assert.Equal(t, 50.0, c.Head().GuideLength())
	assert.Equal(t, 20.0, c.Base().Thickness())
	assert.Equal(t, "G1/2", c.Base().PortSize())
	assert.Equal(t, 0.0, c.ExtraMargin())
}

func TestValidationOrderAndKinds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		kind   Kind
		param  string
	}{
		{"zero pressure", func(p *Params) { p.Pressure = 0 }, KindInvalidPressure, "pressure"},
		{"negative pressure", func(p *Params) { p.Pressure = -5 }, KindInvalidPressure, "pressure"},
		{"zero bore", func(p *Params) {
			p.BoreDiameter = 0
			// keep the parts constructible so the aggregate rule fires
			p.Base = &BaseSpec{Thickness: 12}
		}, KindInvalidDimension, "boreDiameter"},
		{"rod equals bore", func(p *Params) { p.RodDiameter = p.BoreDiameter }, KindInvalidDimension, "rodDiameter"},
		{"rod above bore", func(p *Params) { p.RodDiameter = p.BoreDiameter + 1 }, KindInvalidDimension, "rodDiameter"},
		{"zero stroke", func(p *Params) { p.Stroke = 0 }, KindInvalidStroke, "stroke"},
		{"zero closed length", func(p *Params) { p.ClosedLength = 0 }, KindInvalidStroke, "closedLength"},
		{"closed length equals stroke", func(p *Params) { p.ClosedLength = p.Stroke }, KindInvalidStroke, "closedLength"},
		{"negative margin", func(p *Params) {
			m := -1.0
			p.ExtraMargin = &m
		}, KindInvalidStroke, "extraMargin"},
		{"closed length below minimum", func(p *Params) { p.ClosedLength = 550 }, KindInvalidStroke, "closedLength"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			c, err := New(p)
			require.Error(t, err)
			assert.Nil(t, c)
			var de *Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.kind, de.Kind)
			assert.Equal(t, tc.param, de.Param)
		})
	}
}

func TestPartValidationFiresFirst(t *testing.T) {
	// An invalid supplied part must surface before the aggregate rules,
	// even when the pressure is also invalid.
	p := validParams()
	p.Pressure = 0
	p.Piston = &PistonSpec{Width: -10}
	_, err := New(p)
	require.Error(t, err)
	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, KindInvalidDimension, de.Kind)
	assert.Equal(t, "piston.width", de.Param)
}

func TestGuideLengthRules(t *testing.T) {
	p := validParams()
	p.Head = &HeadSpec{TotalLength: 60, GuideLength: 70}
	_, err := New(p)
	assert.True(t, IsKind(err, KindInvalidDimension), "guide longer than head: %v", err)

	p = validParams()
	p.Head = &HeadSpec{TotalLength: 60, GuideLength: 30} // below rod diameter 45
	_, err = New(p)
	assert.True(t, IsKind(err, KindInvalidDimension), "guide below rod diameter: %v", err)
}

func TestSealGrooveCountRule(t *testing.T) {
	p := validParams()
	p.Piston = &PistonSpec{Width: 30, SealGrooveCount: -1}
	_, err := New(p)
	require.Error(t, err)
	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "piston.sealGrooveCount", de.Param)
}

func TestDerivedProperties(t *testing.T) {
	c, err := New(validParams())
	require.NoError(t, err)

	assert.InDelta(t, 5026.55, c.PistonArea(), 0.01)
	assert.InDelta(t, 3436.12, c.AnnularArea(), 0.01)
	assert.InDelta(t, 1590.43, c.RodArea(), 0.01)
	assert.InDelta(t, 201289, c.RodMomentOfInertia(), 1)
	assert.InDelta(t, 1200, c.OpenLength(), 1e-9)
	assert.InDelta(t, 1.778, c.BoreToRodRatio(), 0.001)
}

func TestMinimumClosedLength(t *testing.T) {
	c, err := New(validParams())
	require.NoError(t, err)

	// piston 27 + head 54 + base 12 + stroke 500 + margin 7.5
	assert.InDelta(t, 600.5, c.MinClosedLength(), 1e-9)
	assert.InDelta(t, c.MinClosedLength(),
		MinimumClosedLength(c.Piston().Width(), c.Head().TotalLength(), c.Base().Thickness(), c.Stroke(), c.ExtraMargin()), 1e-12)
}

func TestRecordRoundTrip(t *testing.T) {
	p := validParams()
	p.Piston = &PistonSpec{Width: 30, Material: "42CrMo4", SealGrooveCount: 2, SealWidth: 8.1, SealHeight: 5.5}
	c, err := New(p)
	require.NoError(t, err)

	rec := c.ToRecord()
	again, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, c, again)
	assert.Equal(t, rec, again.ToRecord())
}

func TestRecordJSONRoundTrip(t *testing.T) {
	c, err := New(validParams())
	require.NoError(t, err)

	data, err := json.Marshal(c.ToRecord())
	require.NoError(t, err)

	var rec Params
	require.NoError(t, json.Unmarshal(data, &rec))
	again, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestFromRecordRevalidates(t *testing.T) {
	rec := validParams()
	rec.RodDiameter = 80 // equal to bore
	_, err := FromRecord(rec)
	assert.True(t, IsKind(err, KindInvalidDimension))
}
