package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/repository"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
)

type leaseState struct {
	token     types.LeaseToken
	expiresAt time.Time
}

type leaseStore struct {
	mu     sync.Mutex
	leases map[types.LockResource]*leaseState
}

// New creates an in-memory lease store. It is the repository double for
// tests and single-instance local runs; deployments with more than one
// service instance need a shared store such as the GCS one.
func New() interfaces.LeaseStore {
	return &leaseStore{
		leases: make(map[types.LockResource]*leaseState),
	}
}

var _ interfaces.LeaseStore = (*leaseStore)(nil)

func (r *leaseStore) Acquire(ctx context.Context, resource types.LockResource, duration time.Duration) (*model.Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := logging.CtxTime(ctx)
	if current, ok := r.leases[resource]; ok && now.Before(current.expiresAt) {
		return nil, goerr.Wrap(types.ErrLockConflict, "lease is held",
			goerr.V("resource", resource),
			goerr.V("expiresAt", current.expiresAt),
		)
	}

	state := &leaseState{
		token:     types.LeaseToken(uuid.NewString()),
		expiresAt: now.Add(duration),
	}
	r.leases[resource] = state

	return &model.Lease{
		Resource:  resource,
		Token:     state.token,
		ExpiresAt: state.expiresAt,
	}, nil
}

func (r *leaseStore) Renew(ctx context.Context, lease *model.Lease, duration time.Duration) (*model.Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := logging.CtxTime(ctx)
	current, ok := r.leases[lease.Resource]
	if !ok {
		return nil, goerr.Wrap(repository.ErrLeaseNotFound, "nothing to renew",
			goerr.V("resource", lease.Resource),
		)
	}
	if current.token != lease.Token || !now.Before(current.expiresAt) {
		return nil, goerr.Wrap(types.ErrLockConflict, "lease was lost",
			goerr.V("resource", lease.Resource),
		)
	}

	current.expiresAt = now.Add(duration)

	return &model.Lease{
		Resource:  lease.Resource,
		Token:     lease.Token,
		ExpiresAt: current.expiresAt,
	}, nil
}

func (r *leaseStore) Release(ctx context.Context, lease *model.Lease) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.leases[lease.Resource]
	if !ok || current.token != lease.Token {
		// Already expired and reclaimed, or never held. Not an error worth
		// escalating: the caller releases best-effort.
		return nil
	}

	delete(r.leases, lease.Resource)
	return nil
}
