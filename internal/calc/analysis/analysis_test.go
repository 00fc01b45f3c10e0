package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cylinder "CylCalc/internal/calc/cylinder"
	mounting "CylCalc/internal/calc/mounting"
)

func referenceInput() Input {
	return Input{
		Cylinder: cylinder.Params{
			Pressure:     20,
			BoreDiameter: 80,
			RodDiameter:  45,
			Stroke:       500,
			ClosedLength: 700,
		},
	}
}

func TestRunWithoutMounting(t *testing.T) {
	s, err := Run(referenceInput())
	require.NoError(t, err)

	assert.InDelta(t, 5026.55, s.PistonArea, 0.01)
	assert.InDelta(t, 95504, s.PushForce, 1)
	assert.InDelta(t, 6.09, s.WallThickness, 0.01)
	assert.Greater(t, s.TotalWeight, 0.0)
	assert.Nil(t, s.Buckling)
	require.NotNil(t, s.Record.ExtraMargin)
	assert.InDelta(t, cylinder.DefaultExtraMargin, *s.Record.ExtraMargin, 1e-9)
}

func TestRunWithMounting(t *testing.T) {
	in := referenceInput()
	in.Mounting = &mounting.Record{
		Category:           mounting.CategoryFrontFlange,
		FlangeDiameter:     180,
		BoltCircleDiameter: 140,
		BoltCount:          8,
	}
	s, err := Run(in)
	require.NoError(t, err)

	require.NotNil(t, s.Buckling)
	assert.Equal(t, mounting.CategoryFrontFlange, s.Buckling.Category)
	assert.InDelta(t, 579400, s.Buckling.CriticalLoad, 580)
	assert.True(t, s.Buckling.IsSafe)
}

// All four variants on the same cylinder must order strictly by their
// Euler class, and the fixed-free class sits at exactly 1/8 of the
// fixed-pinned class.
func TestRunBucklingClassOrdering(t *testing.T) {
	records := []mounting.Record{
		{Category: mounting.CategorySphericalBearing, SphereDiameter: 60, BoreDiameter: 40},
		{Category: mounting.CategoryRearClevis, PinDiameter: 30, ClevisWidth: 60, AxisDistance: 45},
		{Category: mounting.CategoryFrontFlange, FlangeDiameter: 180, BoltCircleDiameter: 140, BoltCount: 8},
		{Category: mounting.CategoryTrunnion, HeadDistance: 250, TrunnionDiameter: 50},
	}
	var loads []float64
	for _, rec := range records {
		in := referenceInput()
		in.Mounting = &rec
		s, err := Run(in)
		require.NoError(t, err, rec.Category)
		loads = append(loads, s.Buckling.CriticalLoad)
	}
	for i := 1; i < len(loads); i++ {
		assert.Less(t, loads[i-1], loads[i])
	}
	assert.Equal(t, loads[2]/8, loads[0], "sphericalBearing is exactly 1/8 of frontFlange")
}

func TestRunRejectsInvalidMountingGeometry(t *testing.T) {
	in := referenceInput()
	in.Mounting = &mounting.Record{Category: mounting.CategoryRearClevis, PinDiameter: 30, ClevisWidth: 20, AxisDistance: 45}
	_, err := Run(in)
	assert.True(t, cylinder.IsKind(err, cylinder.KindMountingValidation))
}

func TestRunRejectsUnknownMountingCategory(t *testing.T) {
	in := referenceInput()
	in.Mounting = &mounting.Record{Category: "weldedLug"}
	_, err := Run(in)
	assert.True(t, cylinder.IsKind(err, cylinder.KindMountingValidation))
}

func TestRunSurfacesWallInfeasibility(t *testing.T) {
	in := referenceInput()
	in.Cylinder.Pressure = 200
	_, err := Run(in)
	assert.True(t, cylinder.IsKind(err, cylinder.KindInvalidPressure))
}

func TestRunAppliesCatalogSeals(t *testing.T) {
	in := referenceInput()
	in.ApplyCatalogSeals = true
	s, err := Run(in)
	require.NoError(t, err)

	require.NotNil(t, s.Record.Piston)
	assert.Equal(t, 8.1, s.Record.Piston.SealWidth, "80 mm bore falls in the PK-80150 band")
	assert.Equal(t, 5.5, s.Record.Piston.SealHeight)
}

func TestRunKeepsSuppliedSeals(t *testing.T) {
	in := referenceInput()
	in.ApplyCatalogSeals = true
	in.Cylinder.Piston = &cylinder.PistonSpec{Width: 30, SealWidth: 9.9, SealHeight: 6.6}
	s, err := Run(in)
	require.NoError(t, err)
	assert.Equal(t, 9.9, s.Record.Piston.SealWidth)
	assert.Equal(t, 6.6, s.Record.Piston.SealHeight)
}
