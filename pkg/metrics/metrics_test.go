package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveECP(t *testing.T) {
	m := New()

	m.ObserveECP("keypress", 200, 10*time.Millisecond)
	m.ObserveECP("keypress", 200, 12*time.Millisecond)
	m.ObserveECP("apps", 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ECPRequests.WithLabelValues("keypress", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ECPRequests.WithLabelValues("apps", "error")))
}

func TestObserveAppRefresh(t *testing.T) {
	m := New()

	m.ObserveAppRefresh(nil)
	m.ObserveAppRefresh(errors.New("offline"))
	m.ObserveAppRefresh(errors.New("offline"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppRefreshes.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AppRefreshes.WithLabelValues("error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveECP("keypress", 200, time.Millisecond)
		m.ObserveAppRefresh(nil)
		m.ObserveDiscovered(3)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveDiscovered(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "devices_discovered_total 2")
}
