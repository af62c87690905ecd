package infra

import (
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/infra/render"
)

type Clients struct {
	contentRepo interfaces.ContentRepo
	renderer    interfaces.CardRenderer
	leaseStore  interfaces.LeaseStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		renderer: render.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) ContentRepo() interfaces.ContentRepo {
	return x.contentRepo
}
func (x *Clients) Renderer() interfaces.CardRenderer {
	return x.renderer
}
func (x *Clients) LeaseStore() interfaces.LeaseStore {
	return x.leaseStore
}

func WithContentRepo(repo interfaces.ContentRepo) Option {
	return func(x *Clients) {
		x.contentRepo = repo
	}
}

func WithRenderer(renderer interfaces.CardRenderer) Option {
	return func(x *Clients) {
		x.renderer = renderer
	}
}

func WithLeaseStore(store interfaces.LeaseStore) Option {
	return func(x *Clients) {
		x.leaseStore = store
	}
}
