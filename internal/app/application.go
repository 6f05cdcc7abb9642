package app

import (
	"log/slog"

	"gtfsmodel.onebusaway.org/internal/appconf"
	"gtfsmodel.onebusaway.org/internal/gtfs"
	"gtfsmodel.onebusaway.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config      appconf.Config
	GtfsConfig  gtfs.Config
	Logger      *slog.Logger
	GtfsManager *gtfs.Manager
	Metrics     *metrics.Collector
}
