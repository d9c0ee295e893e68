package kv

import (
	"context"
	"fmt"

	"github.com/medzone/storefront/internal/config"
)

// Open creates the Store selected by the storage configuration
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "file":
		return NewFileStore(cfg.DataDir)
	case "redis":
		return NewRedisStore(ctx, cfg)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
