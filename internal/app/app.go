package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"countryfx/internal/adapters/artifacts"
	"countryfx/internal/adapters/cache"
	"countryfx/internal/adapters/httpclient"
	"countryfx/internal/adapters/postgres"
	"countryfx/internal/api"
	"countryfx/internal/config"
	"countryfx/internal/country"
	"countryfx/internal/country/handler"
	"countryfx/internal/platform/db"
	httpserver "countryfx/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	countriesClient := httpclient.NewCountriesClient(baseHTTPClient, appCfg.Sources.CountriesURL)
	ratesClient := httpclient.NewRatesClient(baseHTTPClient, appCfg.Sources.RatesURL)

	// Repository and read cache
	countryRepo := postgres.NewCountryRepository(pool)
	countryCache, err := cache.NewCountryCache(appCfg.Cache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create country cache")
		return err
	}
	defer countryCache.Close()

	// Services
	summaryRenderer := artifacts.NewPNGSummaryRenderer(appCfg.Summary.Path)
	refreshService := country.NewRefreshService(countriesClient, ratesClient, countryRepo, countryCache, summaryRenderer)
	countryService := country.NewService(countryRepo, countryCache)
	queryValidator := country.NewQueryValidator()

	// Background refresh scheduler
	if appCfg.Scheduler.Enabled {
		scheduler := country.NewScheduler(refreshService, time.Duration(appCfg.Scheduler.RefreshIntervalSec)*time.Second)
		// Ensure scheduler stops before DB pool closes
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	// Handlers and router
	countryHandler := handler.NewCountryHandler(queryValidator, countryService, refreshService, summaryRenderer.Path())
	router := api.NewRouter(countryHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
