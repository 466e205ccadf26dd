// HTTP API - баллы, бейджи, серия недель, лидерборд
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/gamify/internal/api"
	db "github.com/glkeru/gamify/internal/db"
	interf "github.com/glkeru/gamify/internal/interfaces"
	services "github.com/glkeru/gamify/internal/services"
	otelobs "github.com/glkeru/gamify/observability/otel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("GAMIFY_PORT")
	if port == "" {
		panic("env GAMIFY_PORT is not set")
	}

	// tracing
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown := otelobs.InitTracer(context.Background())
		defer shutdown()
	}

	// database
	storage, err := db.NewStorageDB(logger)
	if err != nil {
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// каталог бейджей
	var catalogdb interf.CatalogStorage
	catalogdb, err = db.NewCatalogDB()
	if err != nil {
		logger.Error(err.Error())
		catalogdb = nil
	}

	// services
	badges, err := services.NewBadgeService(catalogdb, storage, storage, storage, logger)
	if err != nil {
		panic(err)
	}
	points := services.NewPointsService(logger, storage, cache, badges)
	board := services.NewLeaderboardService(logger, storage)

	// api handlers
	r := api.NewHandler(points, badges, board, catalogdb, logger)
	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", otelhttp.NewHandler(r, "gamify"))

	srv := &http.Server{
		Handler:      root,
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
