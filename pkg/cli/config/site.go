package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/cardgen/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Site binds the blog layout and batch tuning knobs.
type Site struct {
	postsDir      string
	cardsDir      string
	cardBaseURL   string
	itemCap       int64
	leaseDuration time.Duration
	contactEmail  string
}

func (x *Site) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "posts-dir",
			Usage:       "Directory of posts in the content repository",
			Category:    "Site",
			Value:       "_posts",
			Destination: &x.postsDir,
			Sources:     cli.EnvVars("CARDGEN_POSTS_DIR"),
		},
		&cli.StringFlag{
			Name:        "cards-dir",
			Usage:       "Directory of generated cards in the content repository",
			Category:    "Site",
			Value:       "cards",
			Destination: &x.cardsDir,
			Sources:     cli.EnvVars("CARDGEN_CARDS_DIR"),
		},
		&cli.StringFlag{
			Name:        "card-base-url",
			Usage:       "Base URL the on-demand endpoint redirects to",
			Category:    "Site",
			Destination: &x.cardBaseURL,
			Sources:     cli.EnvVars("CARDGEN_CARD_BASE_URL"),
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "item-cap",
			Usage:       "Max cards published per batch run",
			Category:    "Site",
			Value:       10,
			Destination: &x.itemCap,
			Sources:     cli.EnvVars("CARDGEN_ITEM_CAP"),
		},
		&cli.DurationFlag{
			Name:        "lease-duration",
			Usage:       "Lock lease duration for one batch run",
			Category:    "Site",
			Value:       60 * time.Second,
			Destination: &x.leaseDuration,
			Sources:     cli.EnvVars("CARDGEN_LEASE_DURATION"),
		},
		&cli.StringFlag{
			Name:        "contact-email",
			Usage:       "Fallback contact address shown in operational logs",
			Category:    "Site",
			Destination: &x.contactEmail,
			Sources:     cli.EnvVars("CARDGEN_CONTACT_EMAIL"),
		},
	}
}

// UseCaseOptions maps the site configuration onto usecase options.
func (x Site) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithPostsDir(x.postsDir),
		usecase.WithCardsDir(x.cardsDir),
		usecase.WithCardBaseURL(x.cardBaseURL),
		usecase.WithItemCap(int(x.itemCap)),
		usecase.WithLeaseDuration(x.leaseDuration),
	}
}

func (x Site) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("PostsDir", x.postsDir),
		slog.String("CardsDir", x.cardsDir),
		slog.String("CardBaseURL", x.cardBaseURL),
		slog.Int64("ItemCap", x.itemCap),
		slog.Duration("LeaseDuration", x.leaseDuration),
		slog.String("ContactEmail", x.contactEmail),
	)
}
