package telemetry

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTiles(t *testing.T) {
	RecordTiles(5)
	assert.Equal(t, 5.0, testutil.ToFloat64(metricTilesCurrent))

	RecordTiles(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(metricTilesCurrent))
}

func TestCountersIncrement(t *testing.T) {
	attachBefore := testutil.ToFloat64(metricSurfaceAttaches)
	detachBefore := testutil.ToFloat64(metricSurfaceDetaches)
	reconcileBefore := testutil.ToFloat64(metricReconciles)

	RecordAttach()
	RecordDetach()
	RecordReconcile()
	RecordLayoutFailure()

	assert.Equal(t, attachBefore+1, testutil.ToFloat64(metricSurfaceAttaches))
	assert.Equal(t, detachBefore+1, testutil.ToFloat64(metricSurfaceDetaches))
	assert.Equal(t, reconcileBefore+1, testutil.ToFloat64(metricReconciles))
}

func TestHandlerServesMetrics(t *testing.T) {
	RecordTiles(3)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "videogrid_tiles_current")
}
