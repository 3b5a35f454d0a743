package aprsobj

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	var reg = prometheus.NewRegistry()
	var m, err = NewMetrics(reg)
	require.NoError(t, err)

	var obj = NewObject("OBJ")
	var item = NewItem("ITEM")
	item.Kill()

	m.transmitted(obj, false)
	m.transmitted(obj, false)
	m.transmitted(item, true)
	m.exhausted()
	m.setOwned(7)
	m.logFailed()
	m.observeSweep(2 * time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Transmissions.WithLabelValues("object", "live")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Transmissions.WithLabelValues("item", "killed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.KilledExhausted), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.OwnedObjects), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LogErrors), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.SweepDuration))
}

func TestMetricsRegisterTwice(t *testing.T) {
	var reg = prometheus.NewRegistry()

	var first, err = NewMetrics(reg)
	require.NoError(t, err)
	first.setOwned(3)

	var second, err2 = NewMetrics(reg)
	require.NoError(t, err2)

	assert.Same(t, first.OwnedObjects, second.OwnedObjects)
	assert.InDelta(t, 3, testutil.ToFloat64(second.OwnedObjects), 0)
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.transmitted(NewObject("OBJ"), false)
		m.exhausted()
		m.setOwned(1)
		m.observeSweep(time.Second)
		m.logFailed()
	})
	assert.NotNil(t, m.Handler())
}

func TestMetricsHandler(t *testing.T) {
	var reg = prometheus.NewRegistry()
	var m, err = NewMetrics(reg)
	require.NoError(t, err)
	m.setOwned(2)

	var rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body = rec.Body.String()
	assert.True(t, strings.Contains(body, "aprsobj_owned_objects 2"), body)
}
