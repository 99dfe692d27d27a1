package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/electronics-store/internal/auth"
	"github.com/rogerio-castellano/electronics-store/internal/config"
	"github.com/rogerio-castellano/electronics-store/internal/db"
	"github.com/rogerio-castellano/electronics-store/internal/http/ban"
	"github.com/rogerio-castellano/electronics-store/internal/http/handlers"
	mw "github.com/rogerio-castellano/electronics-store/internal/http/middleware"
	rl "github.com/rogerio-castellano/electronics-store/internal/http/rate_limiter"
	"github.com/rogerio-castellano/electronics-store/internal/http/router"
	"github.com/rogerio-castellano/electronics-store/internal/logger"
	"github.com/rogerio-castellano/electronics-store/internal/repo"
	"go.uber.org/zap"
)

// @title Electronics Store API
// @version 1.0
// @description Back office for an electronics retailer: catalog, inventory, orders, customers, staff and sales.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStores()

	bans, closeBans, err := openBans(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeBans()

	authSvc := auth.NewService(stores.Users, auth.NewTokenIssuer(cfg.JWT.Secret, auth.TokenTTL))
	created, err := authSvc.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return err
	}
	if created {
		lg.Info("Bootstrap admin created", zap.String("username", cfg.Admin.Username))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := mw.NewMetrics(reg, "store")

	limiter := rl.New(1, 3)
	done := make(chan struct{})
	defer close(done)
	go limiter.StartVisitorCleanupLoop(done)

	h := handlers.New(stores, authSvc, bans, metrics, lg)
	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Config{
			Handlers: h,
			Tokens:   authSvc.Tokens(),
			Limiter:  limiter,
			Gatherer: reg,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("Server running", zap.String("addr", cfg.Server.Addr), zap.String("store", cfg.Database.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	lg.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg *config.Config, lg *zap.Logger) (*repo.Stores, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		lg.Warn("Using in-memory stores; data is lost on restart")
		return repo.NewMemoryStores(), func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(database, lg); err != nil {
			database.Close()
			return nil, nil, err
		}
	}
	return repo.NewPostgresStores(database), func() { database.Close() }, nil
}

func openBans(ctx context.Context, cfg *config.Config, lg *zap.Logger) (ban.Store, func(), error) {
	if cfg.Redis.Addr == "" {
		lg.Info("REDIS_ADDR not set; login bans kept in memory")
		return ban.NewMemoryStore(cfg.Login.MaxFailures, cfg.Login.BanTTL), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, err
	}
	return ban.NewRedisStore(rdb, cfg.Login.MaxFailures, cfg.Login.BanTTL, lg), func() { rdb.Close() }, nil
}
