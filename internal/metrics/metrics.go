package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the feed-level metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	TripsLoaded        prometheus.Gauge
	StopTimesLoaded    prometheus.Gauge
	StopTimesCompacted prometheus.Gauge
	InternedStrings    prometheus.Gauge

	FeedLoads    *prometheus.CounterVec // result label: success|error
	LoadDuration prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		TripsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gtfsmodel_trips_loaded",
			Help: "Number of trips in the published feed.",
		}),
		StopTimesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gtfsmodel_stop_times_loaded",
			Help: "Number of stop times in the published feed.",
		}),
		StopTimesCompacted: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gtfsmodel_stop_times_compacted",
			Help: "Number of stop times backed by the packed table.",
		}),
		InternedStrings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gtfsmodel_interned_strings",
			Help: "Distinct strings held by the packed stop time table.",
		}),
		FeedLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gtfsmodel_feed_loads_total",
			Help: "Feed load attempts by result.",
		}, []string{"result"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gtfsmodel_feed_load_duration_seconds",
			Help:    "Time to download, parse, build and compact a feed.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
	}

	reg.MustRegister(
		c.TripsLoaded, c.StopTimesLoaded, c.StopTimesCompacted, c.InternedStrings,
		c.FeedLoads, c.LoadDuration,
	)

	return c
}

// ObserveLoad records one load attempt. A nil collector is a no-op.
func (c *Collector) ObserveLoad(duration time.Duration, err error) {
	if c == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	c.FeedLoads.WithLabelValues(result).Inc()
	c.LoadDuration.Observe(duration.Seconds())
}

// SetFeedSize records the size of the published feed. A nil collector is a no-op.
func (c *Collector) SetFeedSize(trips, stopTimes, compacted, internedStrings int) {
	if c == nil {
		return
	}
	c.TripsLoaded.Set(float64(trips))
	c.StopTimesLoaded.Set(float64(stopTimes))
	c.StopTimesCompacted.Set(float64(compacted))
	c.InternedStrings.Set(float64(internedStrings))
}

func (c *Collector) Registry() *prometheus.Registry { return c.reg }

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
