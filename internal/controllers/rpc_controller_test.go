package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCall_MalformedBody(t *testing.T) {
	e := newTestServer(t)

	code, resp := callRaw(t, e, `{"method":`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeParseError, resp.Error.Code)
}

func TestCall_UnknownMethod(t *testing.T) {
	e := newTestServer(t)

	code, resp := call(t, e, "dropTables", nil)
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "dropTables")
}

func TestCall_MalformedParams(t *testing.T) {
	e := newTestServer(t)

	code, resp := call(t, e, "getReportById", `{"id":"seven"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeParseError, resp.Error.Code)
}

func TestCall_Healthcheck(t *testing.T) {
	e := newTestServer(t)

	var h Health
	callOK(t, e, "healthcheck", nil, &h)
	assert.Equal(t, "ok", h.Status)
	assert.NotEmpty(t, h.Timestamp)
}

func TestNewRPCController_MergesSets(t *testing.T) {
	ctrl := NewRPCController(zap.NewNop(), NewHealthController(), &DashboardController{})
	assert.ElementsMatch(t, []string{"healthcheck", "getDashboardStats"}, ctrl.Methods())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(CodeParseError))
	assert.Equal(t, http.StatusBadRequest, statusFor(CodeBadRequest))
	assert.Equal(t, http.StatusNotFound, statusFor(CodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFor(CodeInternalServer))
}
