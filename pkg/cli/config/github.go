package config

import (
	"log/slog"

	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

// GitHubApp binds the GitHub App credentials and the target content
// repository. One deployment serves one repository.
type GitHubApp struct {
	id         types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	owner      string
	repo       string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("CARDGEN_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "github-install-id",
			Usage:       "GitHub App Installation ID of the content repository",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("CARDGEN_GITHUB_INSTALL_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("CARDGEN_GITHUB_APP_PRIVATE_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Owner of the content repository",
			Category:    "GitHub App",
			Destination: &x.owner,
			Sources:     cli.EnvVars("CARDGEN_GITHUB_OWNER"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Name of the content repository",
			Category:    "GitHub App",
			Destination: &x.repo,
			Sources:     cli.EnvVars("CARDGEN_GITHUB_REPO"),
			Required:    true,
		},
	}
}

func (x GitHubApp) New() (*ghapp.Client, error) {
	return ghapp.New(x.id, x.installID, x.privateKey, x.owner, x.repo)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("Owner", x.owner),
		slog.String("Repo", x.repo),
	)
}
