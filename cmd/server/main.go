package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/diet-planner/internal/catalog"
	"github.com/janisto/diet-planner/internal/config"
	"github.com/janisto/diet-planner/internal/http/health"
	"github.com/janisto/diet-planner/internal/http/v1/routes"
	"github.com/janisto/diet-planner/internal/platform/firebase"
	applog "github.com/janisto/diet-planner/internal/platform/logging"
	appmiddleware "github.com/janisto/diet-planner/internal/platform/middleware"
	"github.com/janisto/diet-planner/internal/platform/respond"
	"github.com/janisto/diet-planner/internal/service/tracker"
	"github.com/janisto/diet-planner/internal/store"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiPrefix = "/v1"
	docsPath  = "/api-docs"
)

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "failed to load config", err)
	}
	applog.SetDebug(cfg.Server.Debug)

	ctx := context.Background()
	gw, closeGateway, err := openGateway(ctx, cfg)
	if err != nil {
		applog.LogFatal(ctx, "failed to open state backend", err, zap.String("backend", cfg.Store.Backend))
	}
	defer func() {
		if err := closeGateway(); err != nil {
			applog.LogError(context.Background(), "state backend close error", err)
		}
	}()

	builtin, err := catalog.Default()
	if err != nil {
		applog.LogFatal(ctx, "failed to load built-in foods", err)
	}
	svc := tracker.New(ctx, gw, builtin)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           newRouter(cfg, svc),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("backend", cfg.Store.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		_ = closeGateway()
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// openGateway connects the configured state backend. The returned close
// function releases its connections.
func openGateway(ctx context.Context, cfg *config.Config) (store.Gateway, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case config.BackendFile:
		return store.NewFileGateway(cfg.Store.StatePath), noop, nil
	case config.BackendMemory:
		return store.NewMemoryGateway(), noop, nil
	case config.BackendSQLite, config.BackendPostgres:
		db, err := store.OpenSQL(cfg.Store.Backend, cfg.Store.DatabaseDSN, cfg.Server.Debug)
		if err != nil {
			return nil, nil, err
		}
		gw, err := store.NewSQLGateway(db, cfg.Store.StateKey)
		if err != nil {
			return nil, nil, err
		}
		return gw, gw.Close, nil
	case config.BackendRedis:
		gw, err := store.NewRedisGateway(ctx, store.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Store.StateKey)
		if err != nil {
			return nil, nil, err
		}
		return gw, gw.Close, nil
	case config.BackendFirestore:
		clients, err := firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:                    cfg.Firebase.ProjectID,
			GoogleApplicationCredentials: cfg.Firebase.Credentials,
		})
		if err != nil {
			return nil, nil, err
		}
		return store.NewFirestoreGateway(clients.Firestore, cfg.Store.StateKey), clients.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown state backend %q", cfg.Store.Backend)
	}
}

// newRouter builds the HTTP handler: base middleware, health check and the
// v1 API.
func newRouter(cfg *config.Config, svc tracker.Service) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(apiPrefix+docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.Server.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP and X-Forwarded-For. Run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.NewHandler(cfg.Store.Backend))

	router.Route(apiPrefix, func(r chi.Router) {
		humaCfg := huma.DefaultConfig("Diet Planner API", Version)
		humaCfg.DocsPath = docsPath
		humaCfg.Servers = []*huma.Server{{URL: apiPrefix}}
		api := humachi.New(r, humaCfg)

		// Advertise CBOR next to JSON for every body.
		api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
			func(_ *huma.OpenAPI, op *huma.Operation) {
				if op.RequestBody != nil && op.RequestBody.Content != nil {
					if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
						op.RequestBody.Content["application/cbor"] = jsonContent
					}
				}
				for _, resp := range op.Responses {
					if resp.Content == nil {
						continue
					}
					if jsonContent, ok := resp.Content["application/json"]; ok {
						resp.Content["application/cbor"] = jsonContent
					}
				}
			},
		)

		routes.Register(api, svc)
	})
	return router
}
