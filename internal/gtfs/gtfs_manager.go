package gtfs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gtfsmodel.onebusaway.org/internal/logging"
	"gtfsmodel.onebusaway.org/internal/metrics"
	"gtfsmodel.onebusaway.org/model"
)

// Manager owns the published Feed. A feed is built and optionally compacted
// on one goroutine, then swapped in under the lock; readers only ever see a
// fully built feed.
type Manager struct {
	gtfsSource   string
	isLocalFile  bool
	config       Config
	logger       *slog.Logger
	metrics      *metrics.Collector
	feed         *Feed
	lastUpdated  time.Time
	feedMutex    sync.RWMutex
	reloadMutex  sync.Mutex
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitGTFSManager loads the feed at config.GtfsURL, which can be either a URL
// or a local file path. URL sources are refreshed every RefreshInterval.
// logger and collector may be nil.
func InitGTFSManager(config Config, logger *slog.Logger, collector *metrics.Collector) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	manager := &Manager{
		gtfsSource:   config.GtfsURL,
		isLocalFile:  isLocalSource(config.GtfsURL),
		config:       config,
		logger:       logger.With(slog.String("component", "gtfs_manager")),
		metrics:      collector,
		shutdownChan: make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()
	if err := manager.Reload(ctx); err != nil {
		return nil, err
	}

	if !manager.isLocalFile && config.RefreshInterval > 0 {
		manager.wg.Add(1)
		go manager.updateStaticGTFS()
	} else if config.Verbose {
		manager.logger.Info("periodic GTFS updates disabled", slog.String("source", manager.gtfsSource))
	}

	return manager, nil
}

// Reload fetches and rebuilds the feed, then publishes it. On error the current
// feed is kept.
func (manager *Manager) Reload(ctx context.Context) error {
	manager.reloadMutex.Lock()
	defer manager.reloadMutex.Unlock()

	start := time.Now()
	feed, err := manager.buildFeed(ctx)
	manager.metrics.ObserveLoad(time.Since(start), err)
	if err != nil {
		return err
	}

	compacted, interned := 0, 0
	if table := feed.Table(); table != nil {
		compacted = table.Len()
		interned = table.InternedStrings()
	}
	manager.metrics.SetFeedSize(feed.TripCount(), feed.StopTimeCount(), compacted, interned)

	manager.feedMutex.Lock()
	manager.feed = feed
	manager.lastUpdated = time.Now()
	manager.feedMutex.Unlock()

	logging.LogOperation(manager.logger, "gtfs_feed_loaded",
		slog.String("source", manager.gtfsSource),
		slog.Int("trips", feed.TripCount()),
		slog.Int("stop_times", feed.StopTimeCount()),
		slog.Int("compacted_stop_times", compacted),
		slog.Duration("duration", time.Since(start)))

	return nil
}

func (manager *Manager) buildFeed(ctx context.Context) (*Feed, error) {
	staticData, err := loadGTFSData(ctx, manager.gtfsSource, manager.isLocalFile, manager.logger)
	if err != nil {
		return nil, err
	}

	feed := BuildFeed(staticData)
	if manager.config.CompactStopTimes {
		table := feed.Compact()
		if manager.config.Verbose {
			manager.logger.Debug("compacted stop times",
				slog.Int("rows", table.Len()),
				slog.Int("interned_strings", table.InternedStrings()))
		}
	}
	return feed, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

// Feed returns the published feed. The returned feed must be treated as
// read-only.
func (manager *Manager) Feed() *Feed {
	manager.feedMutex.RLock()
	defer manager.feedMutex.RUnlock()
	return manager.feed
}

func (manager *Manager) LastUpdated() time.Time {
	manager.feedMutex.RLock()
	defer manager.feedMutex.RUnlock()
	return manager.lastUpdated
}

func (manager *Manager) FindTrip(id model.AgencyAndID) *model.Trip {
	feed := manager.Feed()
	if feed == nil {
		return nil
	}
	return feed.Trip(id)
}

// StopTimesForTrip returns the trip's stop times in sequence order. The bool
// reports whether the trip exists.
func (manager *Manager) StopTimesForTrip(id model.AgencyAndID) ([]*model.StopTime, bool) {
	feed := manager.Feed()
	if feed == nil || feed.Trip(id) == nil {
		return nil, false
	}
	return feed.StopTimesForTrip(id), true
}

func (manager *Manager) LogStatistics() {
	feed := manager.Feed()
	if feed == nil {
		manager.logger.Warn("no GTFS feed loaded", slog.String("source", manager.gtfsSource))
		return
	}

	attrs := []any{
		slog.String("source", manager.gtfsSource),
		slog.Bool("local_file", manager.isLocalFile),
		slog.Time("last_updated", manager.LastUpdated()),
		slog.Int("routes", feed.RouteCount()),
		slog.Int("stops", feed.StopCount()),
		slog.Int("trips", feed.TripCount()),
		slog.Int("stop_times", feed.StopTimeCount()),
	}
	if table := feed.Table(); table != nil {
		attrs = append(attrs,
			slog.Int("compacted_stop_times", table.Len()),
			slog.Int("interned_strings", table.InternedStrings()))
	}
	manager.logger.Info("gtfs_statistics", attrs...)
}
