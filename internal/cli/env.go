package cli

import (
	"context"

	"github.com/couchcryptid/pothole-dashboard/internal/config"
	"github.com/couchcryptid/pothole-dashboard/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return cfg, nil
}

func storeOptions(cfg *config.Config) store.Options {
	return store.Options{
		Driver: cfg.StoreDriver,
		Path:   cfg.StorePath,
		DSN:    cfg.StoreDSN,
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	s, err := store.Open(ctx, storeOptions(cfg))
	if err != nil {
		return nil, WrapExitError(ExitFailure, "open store", err)
	}
	return s, nil
}
