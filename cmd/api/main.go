package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"gtfsmodel.onebusaway.org/internal/app"
	"gtfsmodel.onebusaway.org/internal/appconf"
	"gtfsmodel.onebusaway.org/internal/gtfs"
	"gtfsmodel.onebusaway.org/internal/logging"
	"gtfsmodel.onebusaway.org/internal/metrics"
	"gtfsmodel.onebusaway.org/internal/restapi"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cliApp := newCLIApp()
	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCLIApp() *cli.App {
	return &cli.App{
		Name:  "gtfsmodel",
		Usage: "Serve trips and stop times from a static GTFS feed",
		Flags: configFlags(),
		Action: func(c *cli.Context) error {
			return serve(c)
		},
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "load the feed, log its statistics and exit",
				Flags: configFlags(),
				Action: func(c *cli.Context) error {
					application, err := buildApplication(c)
					if err != nil {
						return err
					}
					defer application.GtfsManager.Shutdown()
					application.GtfsManager.LogStatistics()
					return nil
				},
			},
		},
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
		&cli.IntFlag{Name: "port", Usage: "API server port"},
		&cli.StringFlag{Name: "env", Usage: "environment (development|test|production)"},
		&cli.StringFlag{Name: "gtfs-url", Usage: "URL or local path of a static GTFS zip file"},
		&cli.StringFlag{Name: "api-keys", Usage: "comma separated API keys"},
		&cli.BoolFlag{Name: "compact", Usage: "pack stop times into a columnar table after loading"},
		&cli.DurationFlag{Name: "refresh-interval", Usage: "reload interval for URL feeds, 0 disables"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.BoolFlag{Name: "verbose", Usage: "log extra detail while loading"},
	}
}

// loadConfig reads the config file and environment, then applies any flags the
// user set explicitly.
func loadConfig(c *cli.Context) (appconf.Config, error) {
	cfg, err := appconf.Load(c.String("config"))
	if err != nil {
		return appconf.Config{}, err
	}

	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}
	if c.IsSet("env") {
		cfg.EnvName = c.String("env")
	}
	if c.IsSet("gtfs-url") {
		cfg.GtfsURL = c.String("gtfs-url")
	}
	if c.IsSet("api-keys") {
		cfg.ApiKeys = appconf.ParseAPIKeys(c.String("api-keys"))
	}
	if c.IsSet("compact") {
		cfg.CompactStopTimes = c.Bool("compact")
	}
	if c.IsSet("refresh-interval") {
		cfg.RefreshInterval = c.Duration("refresh-interval")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}

	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, err
	}
	return cfg, nil
}

func buildApplication(c *cli.Context) (*app.Application, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	collector := metrics.NewCollector()
	gtfsConfig := gtfs.NewConfig(cfg)

	gtfsManager, err := gtfs.InitGTFSManager(gtfsConfig, logger, collector)
	if err != nil {
		logging.LogError(logger, "failed to initialize GTFS manager", err,
			slog.String("source", gtfsConfig.GtfsURL))
		return nil, err
	}

	return &app.Application{
		Config:      cfg,
		GtfsConfig:  gtfsConfig,
		Logger:      logger,
		GtfsManager: gtfsManager,
		Metrics:     collector,
	}, nil
}

func serve(c *cli.Context) error {
	application, err := buildApplication(c)
	if err != nil {
		return err
	}
	defer application.GtfsManager.Shutdown()

	application.GtfsManager.LogStatistics()

	api := restapi.NewRestAPI(application)
	defer api.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      newRouter(application, api),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		application.Logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", application.Config.Env.String()))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	application.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.SafeCloseWithLogging(srv, application.Logger, "http_server")
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
