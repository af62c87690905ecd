package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/mock"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/infra"
	"github.com/m-mizutani/cardgen/pkg/repository/memory"
	"github.com/m-mizutani/cardgen/pkg/usecase"
)

func TestGenerateMissingCards(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes all missing cards and opens one pull request", func(t *testing.T) {
		repo := newFakeRepo(
			[]string{"a.md", "b.md", "c.md"},
			map[string]string{
				"a.md": postContent("Post A"),
				"b.md": postContent("Post B"),
				"c.md": postContent("Post C"),
			},
			map[string][]byte{"cards/b.md.png": []byte("existing")},
		)
		repoMock := repo.mock()

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(memory.New()),
		))

		result := gt.R1(uc.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, result.Status).Equal(types.RunStatusCompleted)
		gt.V(t, result.Published).Equal(2)
		gt.V(t, result.Remaining).Equal(0)
		gt.V(t, result.PullRequestURL).Equal("https://github.com/example/blog/pull/1")

		// One branch, commits strictly chained on it.
		gt.A(t, repoMock.CreateBranchCalls()).Length(1)
		gt.True(t, strings.HasPrefix(string(repoMock.CreateBranchCalls()[0].Name), "social-cards/"))

		commits := repoMock.CreateCommitCalls()
		gt.A(t, commits).Length(2)
		gt.V(t, commits[0].Parent).Equal(types.CommitSHA("commit-0"))

		refUpdates := repoMock.UpdateBranchRefCalls()
		gt.A(t, refUpdates).Length(2)
		gt.V(t, commits[1].Parent).Equal(refUpdates[0].Commit)

		prs := repoMock.CreatePullRequestCalls()
		gt.A(t, prs).Length(1)
		gt.V(t, prs[0].Input.Base).Equal(types.BranchName("main"))
		gt.V(t, prs[0].Input.Head).Equal(repoMock.CreateBranchCalls()[0].Name)
	})

	t.Run("lock conflict skips with zero writes", func(t *testing.T) {
		repo := newFakeRepo([]string{"a.md"}, map[string]string{"a.md": postContent("A")}, nil)
		repoMock := repo.mock()

		leases := &mock.LeaseStoreMock{
			AcquireFunc: func(ctx context.Context, resource types.LockResource, duration time.Duration) (*model.Lease, error) {
				return nil, goerr.Wrap(types.ErrLockConflict, "held")
			},
		}

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(leases),
		))

		result := gt.R1(uc.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, result.Status).Equal(types.RunStatusSkipped)

		gt.A(t, repoMock.ListDirectoryCalls()).Length(0)
		gt.A(t, repoMock.CreateBranchCalls()).Length(0)
		gt.A(t, leases.ReleaseCalls()).Length(0)
	})

	t.Run("item cap bounds the run", func(t *testing.T) {
		posts := map[string]string{}
		var order []string
		for _, name := range []string{"a.md", "b.md", "c.md", "d.md", "e.md"} {
			order = append(order, name)
			posts[name] = postContent(name)
		}
		repo := newFakeRepo(order, posts, nil)
		repoMock := repo.mock()

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(memory.New()),
		), usecase.WithItemCap(2))

		result := gt.R1(uc.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, result.Status).Equal(types.RunStatusPartial)
		gt.V(t, result.Published).Equal(2)
		gt.V(t, result.Remaining).Equal(3)

		gt.A(t, repoMock.CreateCommitCalls()).Length(2)
		gt.A(t, repoMock.CreatePullRequestCalls()).Length(1)
	})

	t.Run("lease loss stops early but still opens the pull request", func(t *testing.T) {
		repo := newFakeRepo(
			[]string{"a.md", "b.md", "c.md"},
			map[string]string{
				"a.md": postContent("A"),
				"b.md": postContent("B"),
				"c.md": postContent("C"),
			},
			nil,
		)
		repoMock := repo.mock()

		leases := &mock.LeaseStoreMock{
			AcquireFunc: func(ctx context.Context, resource types.LockResource, duration time.Duration) (*model.Lease, error) {
				return &model.Lease{Resource: resource, Token: "tok", ExpiresAt: time.Now().Add(duration)}, nil
			},
			RenewFunc: func(ctx context.Context, lease *model.Lease, duration time.Duration) (*model.Lease, error) {
				return nil, goerr.Wrap(types.ErrLockConflict, "expired and reclaimed")
			},
			ReleaseFunc: func(ctx context.Context, lease *model.Lease) error {
				return nil
			},
		}

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(leases),
		))

		result := gt.R1(uc.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, result.Status).Equal(types.RunStatusPartial)
		gt.V(t, result.Published).Equal(1)
		gt.V(t, result.Remaining).Equal(2)

		// Exactly the committed work is in the PR branch, no more.
		gt.A(t, repoMock.CreateCommitCalls()).Length(1)
		gt.A(t, repoMock.CreatePullRequestCalls()).Length(1)
		gt.A(t, leases.ReleaseCalls()).Length(1)
	})

	t.Run("malformed front matter skips one post, others succeed", func(t *testing.T) {
		repo := newFakeRepo(
			[]string{"a.md", "broken.md", "c.md"},
			map[string]string{
				"a.md":      postContent("A"),
				"broken.md": "no front matter here",
				"c.md":      postContent("C"),
			},
			nil,
		)
		repoMock := repo.mock()

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(memory.New()),
		))

		result := gt.R1(uc.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, result.Status).Equal(types.RunStatusCompleted)
		gt.V(t, result.Published).Equal(2)
		gt.V(t, result.Skipped).Equal(1)
		gt.A(t, repoMock.CreateCommitCalls()).Length(2)
	})

	t.Run("skipped posts keep the lease renewed", func(t *testing.T) {
		repo := newFakeRepo(
			[]string{"x.md", "y.md", "z.md", "good.md"},
			map[string]string{
				"x.md":    "no front matter",
				"y.md":    "still no front matter",
				"z.md":    "nope",
				"good.md": postContent("Good"),
			},
			nil,
		)
		repoMock := repo.mock()

		var renews int
		leases := &mock.LeaseStoreMock{
			AcquireFunc: func(ctx context.Context, resource types.LockResource, duration time.Duration) (*model.Lease, error) {
				return &model.Lease{Resource: resource, Token: "tok", ExpiresAt: time.Now().Add(duration)}, nil
			},
			RenewFunc: func(ctx context.Context, lease *model.Lease, duration time.Duration) (*model.Lease, error) {
				renews++
				return &model.Lease{Resource: lease.Resource, Token: lease.Token, ExpiresAt: time.Now().Add(duration)}, nil
			},
			ReleaseFunc: func(ctx context.Context, lease *model.Lease) error {
				return nil
			},
		}

		// Record how many renewals ran before the first commit landed.
		renewsAtFirstCommit := -1
		inner := repoMock.CreateCommitFunc
		repoMock.CreateCommitFunc = func(ctx context.Context, message string, tree types.TreeSHA, parent types.CommitSHA) (types.CommitSHA, error) {
			if renewsAtFirstCommit < 0 {
				renewsAtFirstCommit = renews
			}
			return inner(ctx, message, tree, parent)
		}

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(leases),
		), usecase.WithRenewEvery(1))

		result := gt.R1(uc.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, result.Published).Equal(1)
		gt.V(t, result.Skipped).Equal(3)
		gt.V(t, renewsAtFirstCommit).Equal(3)
	})

	t.Run("no missing cards publishes nothing", func(t *testing.T) {
		repo := newFakeRepo(
			[]string{"a.md"},
			map[string]string{"a.md": postContent("A")},
			map[string][]byte{"cards/a.md.png": []byte("existing")},
		)
		repoMock := repo.mock()

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(memory.New()),
		))

		result := gt.R1(uc.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, result.Status).Equal(types.RunStatusCompleted)
		gt.V(t, result.Published).Equal(0)
		gt.A(t, repoMock.CreateBranchCalls()).Length(0)
		gt.A(t, repoMock.CreatePullRequestCalls()).Length(0)
	})

	t.Run("lease is released even when pull request creation fails", func(t *testing.T) {
		repo := newFakeRepo([]string{"a.md"}, map[string]string{"a.md": postContent("A")}, nil)
		repoMock := repo.mock()
		repoMock.CreatePullRequestFunc = func(ctx context.Context, input *interfaces.CreatePullRequestInput) (string, error) {
			return "", goerr.New("service unavailable")
		}

		leases := &mock.LeaseStoreMock{
			AcquireFunc: func(ctx context.Context, resource types.LockResource, duration time.Duration) (*model.Lease, error) {
				return &model.Lease{Resource: resource, Token: "tok", ExpiresAt: time.Now().Add(duration)}, nil
			},
			RenewFunc: func(ctx context.Context, lease *model.Lease, duration time.Duration) (*model.Lease, error) {
				return lease, nil
			},
			ReleaseFunc: func(ctx context.Context, lease *model.Lease) error {
				return nil
			},
		}

		uc := usecase.New(infra.New(
			infra.WithContentRepo(repoMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(leases),
		))

		_, err := uc.GenerateMissingCards(ctx)
		gt.Error(t, err)
		gt.A(t, leases.ReleaseCalls()).Length(1)
	})

	t.Run("two concurrent invocations: exactly one proceeds", func(t *testing.T) {
		repo := newFakeRepo([]string{"a.md"}, map[string]string{"a.md": postContent("A")}, nil)
		store := memory.New()

		started := make(chan struct{})
		unblock := make(chan struct{})
		var once sync.Once
		slowRenderer := &mock.CardRendererMock{
			RenderFunc: func(ctx context.Context, input *interfaces.RenderInput) ([]byte, error) {
				once.Do(func() { close(started) })
				<-unblock
				return []byte("img"), nil
			},
		}

		firstMock := repo.mock()
		first := usecase.New(infra.New(
			infra.WithContentRepo(firstMock),
			infra.WithRenderer(slowRenderer),
			infra.WithLeaseStore(store),
		))

		var wg sync.WaitGroup
		var firstResult *model.BatchResult
		var firstErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			firstResult, firstErr = first.GenerateMissingCards(ctx)
		}()

		// Wait until the first run holds the lock and is mid-publish, then
		// trigger the overlapping run.
		<-started
		secondMock := repo.mock()
		second := usecase.New(infra.New(
			infra.WithContentRepo(secondMock),
			infra.WithRenderer(newRenderer()),
			infra.WithLeaseStore(store),
		))
		secondResult := gt.R1(second.GenerateMissingCards(ctx)).NoError(t)
		gt.V(t, secondResult.Status).Equal(types.RunStatusSkipped)
		gt.A(t, secondMock.CreateCommitCalls()).Length(0)
		gt.A(t, secondMock.CreateBranchCalls()).Length(0)

		close(unblock)
		wg.Wait()
		gt.NoError(t, firstErr)
		gt.V(t, firstResult.Status).Equal(types.RunStatusCompleted)
		gt.A(t, firstMock.CreateCommitCalls()).Length(1)
	})
}
