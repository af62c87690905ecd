package gcs

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/repository"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
	"google.golang.org/api/googleapi"
)

const (
	metaKeyToken   = "lease-token"
	metaKeyExpires = "lease-expires-at"

	objectPrefix = "locks/"
)

// LeaseStore keeps lease state in the metadata of one GCS object per lock
// resource. Metageneration-match preconditions make each ownership change a
// compare-and-swap: a racing writer gets a 412, which maps to a conflict.
type LeaseStore struct {
	client *storage.Client
	bucket string
}

var _ interfaces.LeaseStore = (*LeaseStore)(nil)

func New(ctx context.Context, bucket string) (*LeaseStore, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	return &LeaseStore{
		client: client,
		bucket: bucket,
	}, nil
}

func (r *LeaseStore) Close() error {
	return r.client.Close()
}

func (r *LeaseStore) object(resource types.LockResource) *storage.ObjectHandle {
	return r.client.Bucket(r.bucket).Object(objectPrefix + string(resource))
}

// ensureLockObject creates the empty placeholder object for the resource if
// it does not exist yet. Losing the creation race to another run is fine;
// both proceed to the metadata CAS.
func (r *LeaseStore) ensureLockObject(ctx context.Context, resource types.LockResource) error {
	obj := r.object(resource).If(storage.Conditions{DoesNotExist: true})

	w := obj.NewWriter(ctx)
	if err := w.Close(); err != nil {
		if isPreconditionFailed(err) {
			return nil
		}
		return goerr.Wrap(err, "failed to create lock object", goerr.V("resource", resource))
	}

	return nil
}

func (r *LeaseStore) Acquire(ctx context.Context, resource types.LockResource, duration time.Duration) (*model.Lease, error) {
	if err := r.ensureLockObject(ctx, resource); err != nil {
		return nil, err
	}

	attrs, err := r.object(resource).Attrs(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read lock object", goerr.V("resource", resource))
	}

	now := logging.CtxTime(ctx)
	if held, expiresAt := currentLease(attrs.Metadata); held && now.Before(expiresAt) {
		return nil, goerr.Wrap(types.ErrLockConflict, "lease is held",
			goerr.V("resource", resource),
			goerr.V("expiresAt", expiresAt),
		)
	}

	token := types.LeaseToken(uuid.NewString())
	expiresAt := now.Add(duration)
	if err := r.swapLease(ctx, resource, attrs.Metageneration, string(token), expiresAt); err != nil {
		return nil, err
	}

	return &model.Lease{
		Resource:  resource,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (r *LeaseStore) Renew(ctx context.Context, lease *model.Lease, duration time.Duration) (*model.Lease, error) {
	attrs, err := r.object(lease.Resource).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(repository.ErrLeaseNotFound, "lock object is gone", goerr.V("resource", lease.Resource))
		}
		return nil, goerr.Wrap(err, "failed to read lock object", goerr.V("resource", lease.Resource))
	}

	now := logging.CtxTime(ctx)
	if attrs.Metadata[metaKeyToken] != string(lease.Token) {
		return nil, goerr.Wrap(types.ErrLockConflict, "lease was reclaimed", goerr.V("resource", lease.Resource))
	}
	if _, expiresAt := currentLease(attrs.Metadata); !now.Before(expiresAt) {
		return nil, goerr.Wrap(types.ErrLockConflict, "lease expired", goerr.V("resource", lease.Resource))
	}

	expiresAt := now.Add(duration)
	if err := r.swapLease(ctx, lease.Resource, attrs.Metageneration, string(lease.Token), expiresAt); err != nil {
		return nil, err
	}

	return &model.Lease{
		Resource:  lease.Resource,
		Token:     lease.Token,
		ExpiresAt: expiresAt,
	}, nil
}

func (r *LeaseStore) Release(ctx context.Context, lease *model.Lease) error {
	attrs, err := r.object(lease.Resource).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to read lock object", goerr.V("resource", lease.Resource))
	}

	// A different token means the lease already expired and someone else took
	// over; releasing it is not ours to do.
	if attrs.Metadata[metaKeyToken] != string(lease.Token) {
		return nil
	}

	obj := r.object(lease.Resource).If(storage.Conditions{MetagenerationMatch: attrs.Metageneration})
	if _, err := obj.Update(ctx, storage.ObjectAttrsToUpdate{
		Metadata: map[string]string{},
	}); err != nil {
		if isPreconditionFailed(err) {
			return nil
		}
		return goerr.Wrap(err, "failed to release lease", goerr.V("resource", lease.Resource))
	}

	return nil
}

func (r *LeaseStore) swapLease(ctx context.Context, resource types.LockResource, metageneration int64, token string, expiresAt time.Time) error {
	obj := r.object(resource).If(storage.Conditions{MetagenerationMatch: metageneration})

	if _, err := obj.Update(ctx, storage.ObjectAttrsToUpdate{
		Metadata: map[string]string{
			metaKeyToken:   token,
			metaKeyExpires: expiresAt.Format(time.RFC3339Nano),
		},
	}); err != nil {
		if isPreconditionFailed(err) {
			return goerr.Wrap(types.ErrLockConflict, "lost the lease race", goerr.V("resource", resource))
		}
		return goerr.Wrap(err, "failed to update lease metadata", goerr.V("resource", resource))
	}

	return nil
}

func currentLease(metadata map[string]string) (bool, time.Time) {
	token, ok := metadata[metaKeyToken]
	if !ok || token == "" {
		return false, time.Time{}
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, metadata[metaKeyExpires])
	if err != nil {
		// Unparseable expiry means a broken record; treat it as expired so
		// the lock cannot wedge forever.
		return false, time.Time{}
	}

	return true, expiresAt
}

func isPreconditionFailed(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed
}
