// Command seed loads a small sample data set into the configured backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	domainproperties "smarthost/internal/domain/properties"
	"smarthost/internal/domain/shared/domainerr"
	"smarthost/internal/infra/config"
	"smarthost/internal/infra/obs"
	"smarthost/internal/infra/storage"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	logger := obs.NewLogger(cfg.Env)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

// run owns the storage handle so it is closed before the process exits.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) (err error) {
	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("storage init: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(ctx); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("storage close: %w", closeErr))
		}
	}()
	return seed(ctx, repos.Properties, logger)
}

func seed(ctx context.Context, repo domainproperties.Repository, logger *slog.Logger) error {
	prop, err := repo.AddProperty(ctx, domainproperties.PropertyDraft{Name: "Aruba House", Location: "Paradera"})
	if domainerr.IsConflict(err) {
		logger.Info("sample data already present")
		return nil
	}
	if err != nil {
		return err
	}
	seaView, garden := "Sea view", "Garden access"
	rooms := []domainproperties.RoomDraft{
		{PropertyID: prop.ID, Beds: domainproperties.BedsOf(2), Features: &seaView, Price: 100.0},
		{PropertyID: prop.ID, Beds: domainproperties.BedsOf(1), Features: &garden, Price: 80.0},
	}
	for _, draft := range rooms {
		if _, err := repo.AddRoom(ctx, draft); err != nil {
			return err
		}
	}

	props, err := repo.ListProperties(ctx)
	if err != nil {
		return err
	}
	stored, err := repo.ListRooms(ctx, domainproperties.ForProperty(prop.ID))
	if err != nil {
		return err
	}
	for _, p := range props {
		logger.Info("property", "id", p.ID, "name", p.Name, "location", p.Location)
	}
	for _, r := range stored {
		features := ""
		if r.Features != nil {
			features = *r.Features
		}
		logger.Info("room", "id", r.ID, "property_id", r.PropertyID, "beds", r.Beds, "features", features, "price", r.Price)
	}
	return nil
}
