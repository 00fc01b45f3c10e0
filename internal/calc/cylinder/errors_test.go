package cylinder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := NewStrokeError("closedLength", "closed length %g mm must exceed the stroke %g mm", 500.0, 500.0)
	assert.Equal(t, "invalid stroke: closedLength: closed length 500 mm must exceed the stroke 500 mm", err.Error())

	noParam := NewMountingError("", "unknown mounting category %q", "x")
	assert.Equal(t, `mounting validation: unknown mounting category "x"`, noParam.Error())
}

func TestIsKindSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("analysis failed: %w", NewPressureError("pressure", "must be positive"))
	assert.True(t, IsKind(err, KindInvalidPressure))
	assert.False(t, IsKind(err, KindInvalidStroke))
	assert.False(t, IsKind(nil, KindInvalidPressure))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "invalid dimension", KindInvalidDimension.String())
	assert.Equal(t, "invalid pressure", KindInvalidPressure.String())
	assert.Equal(t, "invalid stroke", KindInvalidStroke.String())
	assert.Equal(t, "mounting validation", KindMountingValidation.String())
	assert.Equal(t, "buckling analysis", KindBucklingAnalysis.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
