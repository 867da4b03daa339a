package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"school-stats/config"
	"school-stats/controllers"
	"school-stats/middleware"
	"school-stats/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Error loading config")
	}
	if err := cfg.ConfigureLogger(log.StandardLogger()); err != nil {
		log.WithError(err).Fatal("Error configuring logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := store.OpenSource(cfg.DataSource, store.SourceOptions{
		AWSRegion:          cfg.AWSRegion,
		AWSAccessKeyID:     cfg.AWSAccessKeyID,
		AWSSecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		log.WithError(err).Fatal("Error opening data source")
	}
	table, err := store.Load(ctx, src)
	if err != nil {
		log.WithError(err).Fatal("Error loading data source")
	}

	metrics := middleware.NewMetrics()
	metrics.SetSchools(table.Len())

	router := controllers.NewRouter(table, controllers.RouterOptions{
		StrictParams: cfg.StrictParams,
		PageLimit:    cfg.PageLimit,
		TopLimit:     cfg.TopLimit,
		Metrics:      metrics,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHandler(cfg, router, log.StandardLogger()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", server.Addr).Info("Server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// newHandler wraps the router with the middleware that must also see
// requests no route matches.
func newHandler(cfg config.Config, router http.Handler, logger *log.Logger) http.Handler {
	h := router
	if cfg.RateLimit > 0 {
		h = middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1)))(h)
	}
	h = middleware.CORS(cfg.CORSOrigin)(h)
	h = middleware.AccessLog(logger)(h)
	return middleware.RequestID(h)
}
