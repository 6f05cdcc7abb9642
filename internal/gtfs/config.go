package gtfs

import (
	"time"

	"gtfsmodel.onebusaway.org/internal/appconf"
)

type Config struct {
	GtfsURL          string
	Env              appconf.Environment
	Verbose          bool
	CompactStopTimes bool
	// RefreshInterval applies to URL sources only. Zero disables refreshing.
	RefreshInterval time.Duration
}

// NewConfig derives the manager configuration from the application config.
func NewConfig(cfg appconf.Config) Config {
	return Config{
		GtfsURL:          cfg.GtfsURL,
		Env:              cfg.Env,
		Verbose:          cfg.Verbose,
		CompactStopTimes: cfg.CompactStopTimes,
		RefreshInterval:  cfg.RefreshInterval,
	}
}
