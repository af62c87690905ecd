package interfaces

//go:generate moq -out ../mock/repository.go -pkg mock . LeaseStore

import (
	"context"
	"time"

	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
)

// LeaseStore grants time-bounded exclusive leases on named resources. A held
// lease is the only mutual exclusion mechanism across concurrently triggered
// runs; in-process state must never be used for that purpose.
type LeaseStore interface {
	// Acquire takes a lease on the resource, creating the lock object first
	// if it does not exist. If another token holds a non-expired lease,
	// types.ErrLockConflict is returned.
	Acquire(ctx context.Context, resource types.LockResource, duration time.Duration) (*model.Lease, error)

	// Renew extends a held lease. types.ErrLockConflict here means the lease
	// was lost (expired and reclaimed, or broken) and the holder must stop
	// mutating shared state immediately.
	Renew(ctx context.Context, lease *model.Lease, duration time.Duration) (*model.Lease, error)

	// Release gives up the lease. Failure is not fatal to the caller: an
	// unreleased lease self-expires.
	Release(ctx context.Context, lease *model.Lease) error
}
