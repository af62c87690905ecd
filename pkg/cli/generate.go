package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/cardgen/pkg/cli/config"
	"github.com/m-mizutani/cardgen/pkg/infra"
	"github.com/m-mizutani/cardgen/pkg/usecase"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
	"github.com/m-mizutani/cardgen/pkg/utils/safe"

	"github.com/urfave/cli/v3"
)

// generateCommand runs one batch cycle and exits. Meant for cron-style
// schedulers that do not keep the server running; overlap with a running
// server is safe because both sides contend on the same lock resource.
func generateCommand() *cli.Command {
	var (
		githubApp config.GitHubApp
		storage   config.Storage
		site      config.Site
		sentry    config.Sentry
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Run one missing-cards batch cycle",
		Flags: slice.Flatten(
			githubApp.Flags(),
			storage.Flags(),
			site.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting generate",
				slog.Any("GitHubApp", githubApp),
				slog.Any("Storage", storage),
				slog.Any("Site", site),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := githubApp.New()
			if err != nil {
				return err
			}

			leaseStore, closeStore, err := storage.NewLeaseStore(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(closeStore)

			clients := infra.New(
				infra.WithContentRepo(ghClient),
				infra.WithLeaseStore(leaseStore),
			)

			uc := usecase.New(clients, site.UseCaseOptions()...)

			result, err := uc.GenerateMissingCards(ctx)
			if err != nil {
				return err
			}

			fmt.Println(result.String())
			return nil
		},
	}
}
