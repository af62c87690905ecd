package model

import (
	"time"

	"github.com/m-mizutani/cardgen/pkg/domain/types"
)

// Lease is an acquired time-bounded claim on a lock resource. It is owned
// exclusively by one batch run and must be renewed before ExpiresAt to stay
// valid. A crashed run simply lets it expire.
type Lease struct {
	Resource  types.LockResource
	Token     types.LeaseToken
	ExpiresAt time.Time
}

// Expired reports whether the lease is no longer valid at the given time.
func (x *Lease) Expired(now time.Time) bool {
	return !now.Before(x.ExpiresAt)
}
