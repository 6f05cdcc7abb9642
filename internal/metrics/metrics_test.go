package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLoad(t *testing.T) {
	c := NewCollector()

	c.ObserveLoad(time.Second, nil)
	c.ObserveLoad(2*time.Second, nil)
	c.ObserveLoad(time.Second, assert.AnError)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.FeedLoads.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.FeedLoads.WithLabelValues("error")))
}

func TestSetFeedSize(t *testing.T) {
	c := NewCollector()
	c.SetFeedSize(10, 250, 250, 12)

	assert.Equal(t, 10.0, testutil.ToFloat64(c.TripsLoaded))
	assert.Equal(t, 250.0, testutil.ToFloat64(c.StopTimesLoaded))
	assert.Equal(t, 250.0, testutil.ToFloat64(c.StopTimesCompacted))
	assert.Equal(t, 12.0, testutil.ToFloat64(c.InternedStrings))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveLoad(time.Second, nil)
		c.SetFeedSize(1, 2, 3, 4)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	c.SetFeedSize(3, 30, 0, 0)

	server := httptest.NewServer(c.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "gtfsmodel_trips_loaded 3")
	assert.Contains(t, string(body), "gtfsmodel_stop_times_loaded 30")
}
