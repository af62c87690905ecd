package repository

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
)

var (
	// ErrLeaseNotFound reports a renewal against a lease record that no
	// longer exists, as opposed to one reclaimed by another holder. It
	// unwraps to types.ErrLockConflict so callers treating any lost lease
	// uniformly keep working.
	ErrLeaseNotFound = goerr.Wrap(types.ErrLockConflict, "lease not found")
)
