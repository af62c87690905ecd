package config

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/repository/gcs"
	"github.com/m-mizutani/cardgen/pkg/repository/memory"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Storage selects the lease store backend. Without a bucket the in-memory
// store is used, which only excludes concurrent runs inside one process.
type Storage struct {
	bucket string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lock-bucket",
			Usage:       "GCS bucket holding lock objects (empty: in-memory lock, single instance only)",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("CARDGEN_LOCK_BUCKET"),
		},
	}
}

// NewLeaseStore builds the configured lease store. The returned closer is
// nil for the in-memory store.
func (x Storage) NewLeaseStore(ctx context.Context) (interfaces.LeaseStore, io.Closer, error) {
	if x.bucket == "" {
		logging.From(ctx).Warn("no lock bucket configured, using in-process lock")
		return memory.New(), nil, nil
	}

	store, err := gcs.New(ctx, x.bucket)
	if err != nil {
		return nil, nil, err
	}
	return store, store, nil
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Bucket", x.bucket),
	)
}
