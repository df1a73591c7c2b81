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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"statehouse/internal/civic/geo"
	"statehouse/internal/civic/handler"
	civicmetrics "statehouse/internal/civic/metrics"
	"statehouse/internal/civic/service"
	"statehouse/internal/civic/store"
	"statehouse/internal/jurisdiction"
	"statehouse/internal/platform/config"
	"statehouse/internal/platform/httpserver"
	"statehouse/internal/platform/logger"
	"statehouse/internal/platform/metrics"
	"statehouse/internal/platform/middleware"
	"statehouse/internal/platform/postgres"
	"statehouse/internal/platform/redis"
	ratelimitmetrics "statehouse/internal/ratelimit/metrics"
	ratelimitmw "statehouse/internal/ratelimit/middleware"
	"statehouse/internal/ratelimit/ports"
	ratelimitsvc "statehouse/internal/ratelimit/service"
	"statehouse/internal/ratelimit/store/bucket"
	"statehouse/internal/ratelimit/store/profile"
	"statehouse/pkg/platform/httputil"
	"statehouse/pkg/platform/middleware/metadata"
	"statehouse/pkg/platform/middleware/requesttime"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides server.addr)")
}

// app holds the wired dependencies behind the router.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	registry  prometheus.Registerer
	gatherer  prometheus.Gatherer
	store     *store.Store
	geo       service.DivisionLookup
	profiles  ports.ProfileStore
	usage     ports.UsageStore
	readiness []func(context.Context) error
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	a := &app{
		cfg:      cfg,
		logger:   log,
		registry: prometheus.DefaultRegisterer,
		gatherer: prometheus.DefaultGatherer,
		store:    store.New(db),
		geo:      geo.New(cfg.Geo, geo.WithLogger(log)),
		profiles: profile.NewPostgres(db),
		usage:    bucket.NewInMemoryBucketStore(),
	}
	a.readiness = append(a.readiness, a.store.Ping)

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		a.usage = bucket.NewRedis(rdb)
		a.readiness = append(a.readiness, rdb.Health)
	} else {
		log.Warn("redis not configured, usage counters are per process")
	}

	router, err := a.router()
	if err != nil {
		return err
	}
	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting statehouse", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *app) router() (http.Handler, error) {
	metadataTable, err := jurisdiction.LoadMetadata()
	if err != nil {
		return nil, err
	}

	civic := service.New(service.Tables{
		Jurisdictions: a.store.Jurisdictions,
		People:        a.store.People,
		Bills:         a.store.Bills,
		Committees:    a.store.Committees,
		Events:        a.store.Events,
	}, a.store.Runs, a.geo, jurisdiction.NewResolver(metadataTable),
		service.WithLogger(a.logger),
		service.WithMetrics(civicmetrics.New(a.registry)),
		service.WithSearchLanguage(a.cfg.Search.Language),
	)

	quota, err := ratelimitsvc.New(a.profiles, a.usage,
		ratelimitsvc.WithLogger(a.logger),
		ratelimitsvc.WithMetrics(ratelimitmetrics.New(a.registry)),
	)
	if err != nil {
		return nil, err
	}
	keys := ratelimitmw.New(quota, a.logger, ratelimitmw.WithDisabled(!a.cfg.RateLimit.Enabled))

	r := chi.NewRouter()
	r.Use(middleware.Recovery(a.logger))
	r.Use(metadata.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(a.logger))
	r.Use(middleware.Latency(metrics.New(a.registry)))

	r.Get("/health", a.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		if a.cfg.Server.RequestTimeout > 0 {
			r.Use(chimiddleware.Timeout(a.cfg.Server.RequestTimeout))
		}
		r.Use(keys.RequireAPIKey)
		handler.New(civic, a.logger).Register(r)
	})
	return r, nil
}

func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	for _, check := range a.readiness {
		if err := check(ctx); err != nil {
			a.logger.WarnContext(ctx, "health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
