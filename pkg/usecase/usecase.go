package usecase

import (
	"time"

	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	postsDir      string
	cardsDir      string
	cardBaseURL   string
	branchPrefix  string
	lockResource  types.LockResource
	leaseDuration time.Duration
	itemCap       int
	renewEvery    int
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,

		postsDir:      "_posts",
		cardsDir:      "cards",
		branchPrefix:  "social-cards/",
		lockResource:  "generate-cards",
		leaseDuration: 60 * time.Second,
		itemCap:       10,
		renewEvery:    1,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func WithPostsDir(dir string) Option {
	return func(x *UseCase) {
		x.postsDir = dir
	}
}

func WithCardsDir(dir string) Option {
	return func(x *UseCase) {
		x.cardsDir = dir
	}
}

// WithCardBaseURL sets the location prefix the on-demand endpoint redirects
// to, e.g. a raw content URL of the repository's default branch.
func WithCardBaseURL(baseURL string) Option {
	return func(x *UseCase) {
		x.cardBaseURL = baseURL
	}
}

func WithBranchPrefix(prefix string) Option {
	return func(x *UseCase) {
		x.branchPrefix = prefix
	}
}

func WithLockResource(resource types.LockResource) Option {
	return func(x *UseCase) {
		x.lockResource = resource
	}
}

func WithLeaseDuration(d time.Duration) Option {
	return func(x *UseCase) {
		x.leaseDuration = d
	}
}

// WithItemCap bounds how many cards one batch run publishes. Remaining posts
// are left for the next run's scan.
func WithItemCap(n int) Option {
	return func(x *UseCase) {
		x.itemCap = n
	}
}

// WithRenewEvery sets the lease renewal cadence in processed posts. Skipped
// posts count so the lease stays alive through a streak of malformed ones.
func WithRenewEvery(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.renewEvery = n
		}
	}
}
