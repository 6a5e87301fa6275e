package cmd

import (
	"context"
	"io"
	"os"

	"solid-example/catalog"
	"solid-example/config"
	"solid-example/infrastructure/persistence/sqlite"
	apperrors "solid-example/pkg/errors"
	"solid-example/pkg/logger"
	srpcompliant "solid-example/solid/srp/compliant"

	"go.uber.org/zap"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg        *config.Config
	out        io.Writer
	store      srpcompliant.Store
	strategies map[string]catalog.StrategyFactory
	skipLogger bool
}

func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg, out: os.Stdout}
}

// WithOutput sets where demonstration text goes
func (b *AppBuilder) WithOutput(w io.Writer) *AppBuilder {
	b.out = w
	return b
}

// WithStore overrides the store chosen by storage.type
func (b *AppBuilder) WithStore(store srpcompliant.Store) *AppBuilder {
	b.store = store
	return b
}

// WithStrategy registers an extra payment strategy for the compliant payment demo
func (b *AppBuilder) WithStrategy(method string, factory catalog.StrategyFactory) *AppBuilder {
	if b.strategies == nil {
		b.strategies = catalog.DefaultStrategies()
	}
	b.strategies[method] = factory
	return b
}

// SkipLoggerInit keeps whatever logger is already installed
func (b *AppBuilder) SkipLoggerInit() *AppBuilder {
	b.skipLogger = true
	return b
}

func (b *AppBuilder) Build() (*App, error) {
	if !b.skipLogger {
		if err := logger.Init(&b.cfg.Log, b.cfg.App.Env); err != nil {
			return nil, apperrors.Config(err)
		}
	}

	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	users := b.seedUsers()

	var closers []func() error
	store := b.store
	if store == nil {
		var err error
		store, closers, err = b.initStore(users)
		if err != nil {
			return nil, err
		}
	}

	cat := catalog.New(catalog.Options{
		Documents: catalog.Documents{
			Simple:          b.cfg.Demo.Documents.Simple,
			AdvancedPlain:   b.cfg.Demo.Documents.AdvancedPlain,
			AdvancedStapled: b.cfg.Demo.Documents.AdvancedStapled,
			Generic:         b.cfg.Demo.Documents.Generic,
		},
		Payments:   b.payments(),
		Strategies: b.strategies,
		Users:      users,
		Store:      store,
	})

	return &App{
		cfg:     b.cfg,
		out:     b.out,
		catalog: cat,
		closers: closers,
	}, nil
}

func (b *AppBuilder) seedUsers() []srpcompliant.User {
	users := make([]srpcompliant.User, 0, len(b.cfg.Demo.Users))
	for _, u := range b.cfg.Demo.Users {
		users = append(users, srpcompliant.User{UserID: u.ID, Name: u.Name, Email: u.Email})
	}
	return users
}

func (b *AppBuilder) payments() []catalog.Payment {
	payments := make([]catalog.Payment, 0, len(b.cfg.Demo.Payments))
	for _, p := range b.cfg.Demo.Payments {
		payments = append(payments, catalog.Payment{Method: p.Method, Amount: p.Amount})
	}
	return payments
}

// initStore returns nil for the memory type; the catalog then seeds its own.
func (b *AppBuilder) initStore(users []srpcompliant.User) (srpcompliant.Store, []func() error, error) {
	switch b.cfg.Storage.Type {
	case "", "memory":
		logger.Info("Using in-memory user store")
		return nil, nil, nil
	case "sqlite":
		logger.Info("Using SQLite user store", zap.String("dsn", b.cfg.Storage.DSN))
		db, err := sqlite.Open(b.cfg.Storage.DSN, b.cfg.Storage.SlowThreshold)
		if err != nil {
			return nil, nil, apperrors.Storage(err, "failed to open user store")
		}
		store := sqlite.NewUserStore(db)
		if err := store.Seed(context.Background(), users...); err != nil {
			_ = sqlite.Close(db)
			return nil, nil, apperrors.Storage(err, "failed to seed user store")
		}
		return store, []func() error{func() error { return sqlite.Close(db) }}, nil
	default:
		return nil, nil, apperrors.New(apperrors.CodeConfig, "unknown storage type: "+b.cfg.Storage.Type)
	}
}
