package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mcolombo/habit-garden/internal/adapters/cache"
	adapterHTTP "github.com/mcolombo/habit-garden/internal/adapters/handler/http"
	"github.com/mcolombo/habit-garden/internal/adapters/repository"
	"github.com/mcolombo/habit-garden/internal/config"
	"github.com/mcolombo/habit-garden/internal/core/services"
	"github.com/mcolombo/habit-garden/internal/core/workers"
)

func main() {
	startTime := time.Now()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := log.ParseLevel(cfg.AppLogLevel); err == nil {
		log.SetLevel(level)
	}

	log.WithField("driver", cfg.DBDriver).Info("connecting to database")

	driver := cfg.DBDriver
	if driver == "postgres" {
		driver = "pgx"
	}

	db, err := sqlx.Connect(driver, cfg.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx := context.Background()

	if err := repository.Migrate(ctx, db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	if cfg.Seed {
		if err := repository.Seed(ctx, db); err != nil {
			log.WithError(err).Fatal("failed to seed starter data")
		}
	}

	habitRepo := repository.NewSQLHabitRepository(db)
	completionRepo := repository.NewSQLCompletionRepository(db)
	shopRepo := repository.NewSQLShopRepository(db)

	var statsCache services.SummaryCache
	rdb := connectRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
		statsCache = cache.NewStatsCache(rdb, cfg.StatsCacheTTL)
	}

	statsService := services.NewStatsService(habitRepo, completionRepo, shopRepo, statsCache, cfg.StatsWindowDays)

	refreshWorker := workers.NewRefreshWorker(statsService)
	workerCtx, stopWorker := context.WithCancel(ctx)
	defer stopWorker()
	refreshWorker.Start(workerCtx)

	habitService := services.NewHabitService(habitRepo, statsCache, refreshWorker)
	completionService := services.NewCompletionService(completionRepo, habitRepo, statsCache, refreshWorker)
	shopService := services.NewShopService(shopRepo, habitRepo, completionRepo, statsCache, refreshWorker)

	// The cached snapshot embeds "today"; recompute it as the day rolls over.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 0 * * *", func() {
		if err := statsService.Refresh(context.Background()); err != nil {
			log.WithError(err).Warn("midnight stats refresh failed")
		}
	}); err != nil {
		log.WithError(err).Fatal("failed to schedule the midnight refresh")
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:      adapterHTTP.NewHabitHandler(habitService),
		CompletionHandler: adapterHTTP.NewCompletionHandler(completionService),
		StatsHandler:      adapterHTTP.NewStatsHandler(statsService),
		ShopHandler:       adapterHTTP.NewShopHandler(shopService),
		DB:                db,
		Redis:             rdb,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		StartTime:         startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("habit garden API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("stop signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("forced shutdown")
	}

	log.Info("server stopped gracefully")
}

// connectRedis returns nil when Redis is disabled or unreachable; the app
// runs fine without the cache, it just recomputes stats on every request.
func connectRedis(cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled {
		return nil
	}

	rdb, err := cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, continuing without the stats cache")
		return nil
	}

	log.Info("redis connected, stats cache enabled")
	return rdb
}
