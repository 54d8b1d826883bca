package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cashdesk/internal/api"
	"cashdesk/internal/config"
	"cashdesk/internal/gateway"
	"cashdesk/internal/money"
	"cashdesk/internal/usecase"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *gateway.GormStore
	billing    *usecase.BillingUseCase
	cashier    *usecase.CashierUseCase
	enrollment *usecase.EnrollmentUseCase
	closers    []func() error
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func openDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		dialector = sqlite.Open(cfg.DSN())
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}
	return db, nil
}

// activeSessions uses redis when REDIS_ADDR is set and reachable, and keeps
// the pointers in memory otherwise.
func activeSessions(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (usecase.ActiveSessions, func() error) {
	if cfg.Addr == "" {
		log.Warn("REDIS_ADDR is not set, active sessions are kept in memory")
		return gateway.NewMemoryActiveSessions(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error("redis unreachable, active sessions are kept in memory", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return gateway.NewMemoryActiveSessions(), nil
	}
	log.Info("active sessions stored in redis", "addr", cfg.Addr)
	return gateway.NewRedisActiveSessions(client, cfg.TTL), client.Close
}

// newApp wires the application: database, stores, then use cases.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: log, store: gateway.NewGormStore(db)}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	if cfg.App.AutoMigrate {
		if err := a.store.Migrate(ctx); err != nil {
			a.close()
			return nil, err
		}
	}

	active, closeActive := activeSessions(ctx, cfg.Redis, log)
	if closeActive != nil {
		a.closers = append(a.closers, closeActive)
	}

	a.billing = usecase.NewBillingUseCase(a.store)
	a.cashier = usecase.NewCashierUseCase(a.store, a.store, a.store, active,
		usecase.WithOverpayment(cfg.App.AllowOverpayment),
		usecase.WithLogger(log))
	a.enrollment = usecase.NewEnrollmentUseCase(a.store, a.cashier, log)
	return a, nil
}

func (a *app) handler() *api.Handler {
	return api.NewHandler(a.billing, a.cashier, a.enrollment, money.NewFormatterFor(a.cfg.App.Locale))
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}
