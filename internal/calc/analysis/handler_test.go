package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcHandler(t *testing.T) {
	body := `{
		"cylinder": {"pressure": 20, "boreDiameter": 80, "rodDiameter": 45, "stroke": 500, "closedLength": 700},
		"mounting": {"category": "rearClevis", "pinDiameter": 30, "clevisWidth": 60, "axisDistance": 45}
	}`
	req := httptest.NewRequest(http.MethodPost, "/tools/cylinder/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var s Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.InDelta(t, 95504, s.PushForce, 1)
	require.NotNil(t, s.Buckling)
	assert.Equal(t, "rearClevis", s.Buckling.Category)
}

func TestCalcHandlerReportsDesignErrors(t *testing.T) {
	body := `{"cylinder": {"pressure": 20, "boreDiameter": 80, "rodDiameter": 80, "stroke": 500, "closedLength": 700}}`
	req := httptest.NewRequest(http.MethodPost, "/tools/cylinder/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
		Param string `json:"param"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid dimension", resp.Kind)
	assert.Equal(t, "rodDiameter", resp.Param)
	assert.NotEmpty(t, resp.Error)
}

func TestCalcHandlerRejectsBadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/cylinder/calc", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
