package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"atlas.healthmap.org/internal/app"
	"atlas.healthmap.org/internal/appconf"
	"atlas.healthmap.org/internal/dataset"
	"atlas.healthmap.org/internal/restapi"
	"atlas.healthmap.org/internal/webui"
)

func main() {
	var cfg appconf.Config
	var apiKeysFlag, envFlag, configFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key (0 blocks everything, negative disables limiting)")
	flag.StringVar(&cfg.DataDir, "data-dir", "./data", "Directory holding the indicator datasets")
	flag.StringVar(&cfg.GeoJSONSource, "geojson", "", "Country polygon GeoJSON path or URL (default: <data-dir>/countries.geo.json)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose dataset logging")
	flag.StringVar(&configFlag, "config", "", "Optional TOML config file overlaying flag values")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if configFlag != "" {
		if err := appconf.ApplyFile(&cfg, configFlag); err != nil {
			logger.Error("failed to load config file", "error", err)
			os.Exit(1)
		}
	}

	datasetConfig := dataset.Config{
		DataDir:       cfg.DataDir,
		GeoJSONSource: cfg.GeoJSONSource,
		Verbose:       cfg.Verbose,
	}

	// A dashboard without its datasets has nothing to serve: any load
	// failure here halts the process with the reason.
	manager, err := dataset.InitManager(datasetConfig, logger)
	if err != nil {
		logger.Error("failed to load datasets", "error", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config:        cfg,
		DatasetConfig: datasetConfig,
		Logger:        logger,
		Manager:       manager,
	}

	api := restapi.NewRestAPI(application)
	router := httprouter.New()
	api.SetRoutes(router)

	mux := http.NewServeMux()
	web := &webui.WebUI{Manager: manager}
	web.SetWebUIRoutes(mux)
	mux.Handle("/", router)

	handler := restapi.NewRequestLoggingMiddleware(logger)(
		api.NewRecoveryMiddleware()(
			restapi.CompressionMiddleware(
				api.WithSecurityHeaders(mux))))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err.Error())
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	manager.Shutdown()
}
