// Package storage selects and initialises one repository backend.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"smarthost/internal/app/middleware"
	domainbooking "smarthost/internal/domain/booking"
	domainhosts "smarthost/internal/domain/hosts"
	domainproperties "smarthost/internal/domain/properties"
	"smarthost/internal/infra/config"
	"smarthost/internal/infra/storage/memory"
	"smarthost/internal/infra/storage/mongostore"
	"smarthost/internal/infra/storage/ormstore"
	"smarthost/internal/infra/storage/sqlstore"
)

// Repositories is an opened backend. Close releases its connections.
type Repositories struct {
	Backend     string
	Hosts       domainhosts.Repository
	Properties  domainproperties.Repository
	Bookings    domainbooking.Repository
	Idempotency middleware.IdempotencyStore

	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}

// Open connects the configured backend and runs its schema initialiser.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (Repositories, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var (
		repos Repositories
		err   error
	)
	switch cfg.StorageBackend {
	case config.BackendMemory:
		repos = openMemory()
	case config.BackendSQL:
		repos, err = openSQL(ctx, cfg.SQLitePath)
	case config.BackendORM, "":
		repos, err = openORM(ctx, cfg.SQLitePath, cfg.SQLLog)
	case config.BackendMongo:
		repos, err = openMongo(ctx, cfg)
	default:
		return Repositories{}, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
	if err != nil {
		return Repositories{}, err
	}
	if repos.Idempotency == nil {
		repos.Idempotency = memory.NewIdempotencyStore(cfg.IdempotencyTTL)
	}
	logger.Info("storage ready", "backend", repos.Backend)
	return repos, nil
}

func openMemory() Repositories {
	return Repositories{
		Backend:    config.BackendMemory,
		Hosts:      memory.NewHostRepository(),
		Properties: memory.NewPropertyRepository(),
		Bookings:   memory.NewBookingRepository(),
		Ping:       func(context.Context) error { return nil },
		Close:      func(context.Context) error { return nil },
	}
}

func openSQL(ctx context.Context, path string) (Repositories, error) {
	db, err := sqlstore.Open(path)
	if err != nil {
		return Repositories{}, err
	}
	if err := sqlstore.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return Repositories{}, err
	}
	return Repositories{
		Backend:    config.BackendSQL,
		Hosts:      sqlstore.NewHostRepository(db),
		Properties: sqlstore.NewPropertyRepository(db),
		Bookings:   sqlstore.NewBookingRepository(db),
		Ping:       db.PingContext,
		Close:      func(context.Context) error { return db.Close() },
	}, nil
}

func openORM(ctx context.Context, path string, logSQL bool) (Repositories, error) {
	db, err := ormstore.Open(path, ormstore.Options{LogSQL: logSQL})
	if err != nil {
		return Repositories{}, err
	}
	if err := ormstore.Migrate(ctx, db); err != nil {
		_ = ormstore.Close(db)
		return Repositories{}, err
	}
	return Repositories{
		Backend:    config.BackendORM,
		Hosts:      ormstore.NewHostRepository(db),
		Properties: ormstore.NewPropertyRepository(db),
		Bookings:   ormstore.NewBookingRepository(db),
		Ping:       func(ctx context.Context) error { return ormstore.Ping(ctx, db) },
		Close:      func(context.Context) error { return ormstore.Close(db) },
	}, nil
}

func openMongo(ctx context.Context, cfg config.Config) (Repositories, error) {
	client, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return Repositories{}, err
	}
	if err := client.EnsureIndexes(ctx); err != nil {
		_ = client.Close(ctx)
		return Repositories{}, err
	}
	idem, err := mongostore.NewIdempotencyStore(ctx, client.DB, cfg.IdempotencyTTL)
	if err != nil {
		_ = client.Close(ctx)
		return Repositories{}, err
	}
	return Repositories{
		Backend:     config.BackendMongo,
		Hosts:       mongostore.NewHostRepository(client.DB),
		Properties:  mongostore.NewPropertyRepository(client.DB),
		Bookings:    mongostore.NewBookingRepository(client.DB),
		Idempotency: idem,
		Ping:        client.Ping,
		Close:       client.Close,
	}, nil
}
