package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	params, err := ParseRow([]string{"20", "80", "45", "500", "700"})
	require.NoError(t, err)
	assert.Equal(t, 20.0, params.Pressure)
	assert.Equal(t, 80.0, params.BoreDiameter)
	assert.Equal(t, 45.0, params.RodDiameter)
	assert.Equal(t, 500.0, params.Stroke)
	assert.Equal(t, 700.0, params.ClosedLength)
	assert.Nil(t, params.ExtraMargin, "margin column absent keeps the default")
}

func TestParseRowWithMargin(t *testing.T) {
	params, err := ParseRow([]string{"20", "80", "45", "500", "700", "12.5"})
	require.NoError(t, err)
	require.NotNil(t, params.ExtraMargin)
	assert.Equal(t, 12.5, *params.ExtraMargin)
}

func TestParseRowRejectsBadInput(t *testing.T) {
	_, err := ParseRow([]string{"20", "80", "45", "500"})
	assert.Error(t, err, "too few columns")

	_, err = ParseRow([]string{"20", "eighty", "45", "500", "700"})
	assert.Error(t, err, "non-numeric cell")
}
