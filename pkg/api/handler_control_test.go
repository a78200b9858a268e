package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetControlDefaults(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/control", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ProcessingEnabled"])
	assert.Equal(t, float64(0), body["ControlEpoch"])
}

func TestPauseAndResume(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/control/pause",
		map[string]interface{}{"reason": "deploy window"})
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ProcessingEnabled"])
	assert.Equal(t, "soft", body["PauseMode"], "mode defaults to soft")
	assert.Equal(t, "deploy window", body["PauseReason"])

	rec = f.do(t, http.MethodPost, "/api/v1/control/resume", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["ProcessingEnabled"])
	assert.Equal(t, "", body["PauseReason"])
}

func TestPauseRejectsUnknownMode(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/control/pause",
		map[string]interface{}{"mode": "gentle"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmergencyStopBumpsEpoch(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/control/emergency-stop",
		map[string]interface{}{"reason": "runaway agent"})
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ProcessingEnabled"])
	assert.Equal(t, "hard", body["PauseMode"])
	assert.Equal(t, float64(1), body["ControlEpoch"], "stop fences out in-flight claims")
}

func TestSetConcurrency(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPut, "/api/v1/control/concurrency",
		map[string]interface{}{"max_concurrent_dispatches": 7})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decodeBody(t, rec)["MaxConcurrentDispatches"])

	rec = f.do(t, http.MethodPut, "/api/v1/control/concurrency",
		map[string]interface{}{"max_concurrent_dispatches": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
