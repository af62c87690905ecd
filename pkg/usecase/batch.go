package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
)

const pullRequestTitle = "Add generated social cards"

// GenerateMissingCards runs one batch publishing cycle: take the lock, scan
// for posts without cards, publish the missing cards onto one branch, open a
// pull request if anything was committed, release the lock. A lock conflict
// is a normal outcome and returns a skipped result, not an error.
func (x *UseCase) GenerateMissingCards(ctx context.Context) (*model.BatchResult, error) {
	lease, err := x.clients.LeaseStore().Acquire(ctx, x.lockResource, x.leaseDuration)
	if err != nil {
		if errors.Is(err, types.ErrLockConflict) {
			logging.From(ctx).Info("another run holds the lock, skipping",
				slog.Any("resource", x.lockResource),
			)
			return &model.BatchResult{Status: types.RunStatusSkipped}, nil
		}
		return nil, err
	}

	// Release on every exit path, including failures during scan, publish or
	// pull request creation. A failed release is logged only: the lease
	// self-expires.
	defer func() {
		if err := x.clients.LeaseStore().Release(ctx, lease); err != nil {
			logging.From(ctx).Warn("failed to release lease", slog.Any("error", err))
		}
	}()

	missing, err := x.scanWorkSet(ctx)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		return &model.BatchResult{Status: types.RunStatusCompleted}, nil
	}

	session, err := x.runPublishSession(ctx, lease, missing)
	if err != nil {
		return nil, err
	}

	result := &model.BatchResult{
		Status:    types.RunStatusCompleted,
		Published: session.published,
		Skipped:   session.skipped,
		Remaining: len(missing) - session.published - session.skipped,
	}
	if result.Remaining > 0 {
		result.Status = types.RunStatusPartial
	}

	if session.published > 0 {
		result.Branch = session.branch.Name

		prURL, err := x.clients.ContentRepo().CreatePullRequest(ctx, &interfaces.CreatePullRequestInput{
			Title: pullRequestTitle,
			Body:  pullRequestBody(session),
			Head:  session.branch.Name,
			Base:  session.base,
		})
		if err != nil {
			return nil, err
		}
		result.PullRequestURL = prURL
	}

	logging.From(ctx).Info("batch run finished",
		slog.Any("status", result.Status),
		slog.Int("published", result.Published),
		slog.Int("skipped", result.Skipped),
		slog.Int("remaining", result.Remaining),
	)

	return result, nil
}

// scanWorkSet lists both directories and diffs them. A missing cards
// directory is an empty listing, not an error: the first run of a fresh
// repository has no cards at all.
func (x *UseCase) scanWorkSet(ctx context.Context) ([]*model.RepoEntry, error) {
	repo := x.clients.ContentRepo()

	posts, err := repo.ListDirectory(ctx, x.postsDir)
	if err != nil {
		return nil, err
	}

	cards, err := repo.ListDirectory(ctx, x.cardsDir)
	if err != nil {
		return nil, err
	}

	missing := ScanMissingCards(posts, cards)
	logging.From(ctx).Info("scanned work set",
		slog.Int("posts", len(posts)),
		slog.Int("cards", len(cards)),
		slog.Int("missing", len(missing)),
	)

	return missing, nil
}

func pullRequestBody(session *publishSession) string {
	body := fmt.Sprintf("This PR adds %d generated social card(s) for posts that had none.\n", session.published)
	if session.leaseLost {
		body += "\nThe run stopped early because its lease expired; remaining posts will be picked up by the next run.\n"
	}
	body += "\nNote: aborted runs may leave stale branches with the same prefix; they are safe to delete.\n"
	return body
}
