package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
)

// publishSession accumulates one run's commits onto a single branch. Commits
// are strictly sequential: each tree is built on the previous commit's tree,
// so there is a hard data dependency between iterations.
type publishSession struct {
	lease  *model.Lease
	branch *model.PublishBranch
	base   types.BranchName

	published int
	skipped   int
	leaseLost bool
}

// runPublishSession processes the missing posts in listing order until the
// work set is exhausted, the item cap is reached, or the lease is lost. A
// failed remote write aborts the whole run; commits already on the branch
// are left as they are.
func (x *UseCase) runPublishSession(ctx context.Context, lease *model.Lease, missing []*model.RepoEntry) (*publishSession, error) {
	session := &publishSession{lease: lease}

	for _, post := range missing {
		ok, err := x.publishCard(ctx, session, post)
		if err != nil {
			return session, err
		}
		if ok {
			session.published++
			if session.published >= x.itemCap {
				logging.From(ctx).Info("item cap reached, leaving the rest for the next run",
					slog.Int("cap", x.itemCap),
				)
				break
			}
		} else {
			session.skipped++
		}

		// Skipped posts count toward the cadence too. A streak of malformed
		// posts must not let the lease run out before the next commit.
		if (session.published+session.skipped)%x.renewEvery == 0 {
			renewed, err := x.clients.LeaseStore().Renew(ctx, session.lease, x.leaseDuration)
			if err != nil {
				if errors.Is(err, types.ErrLockConflict) {
					// The lease is gone and another run may already hold it.
					// Stop writing; keep what is committed.
					logging.From(ctx).Warn("lease lost during publish, stopping early",
						slog.Int("published", session.published),
					)
					session.leaseLost = true
					break
				}
				return session, err
			}
			session.lease = renewed
		}
	}

	return session, nil
}

// publishCard generates and commits one card. It returns false when the post
// yields nothing to publish (missing content or malformed front matter);
// such posts are skipped without aborting the run.
func (x *UseCase) publishCard(ctx context.Context, session *publishSession, post *model.RepoEntry) (bool, error) {
	content, err := x.clients.ContentRepo().GetRawContent(ctx, post.Path)
	if err != nil {
		if errors.Is(err, types.ErrContentNotFound) {
			logging.From(ctx).Warn("post has no content, skipping", slog.String("path", post.Path))
			return false, nil
		}
		return false, err
	}
	if len(content) == 0 {
		logging.From(ctx).Warn("post is empty, skipping", slog.String("path", post.Path))
		return false, nil
	}

	fm, err := model.ParseFrontMatter(content)
	if err != nil {
		if errors.Is(err, types.ErrInvalidGitHubData) {
			logging.From(ctx).Warn("malformed front matter, skipping",
				slog.String("path", post.Path),
				slog.Any("error", err),
			)
			return false, nil
		}
		return false, err
	}

	image, err := x.clients.Renderer().Render(ctx, &interfaces.RenderInput{
		Title:     fm.Title,
		Author:    fm.Author,
		DateLabel: fm.Date,
	})
	if err != nil {
		return false, err
	}

	if session.branch == nil {
		if err := x.createPublishBranch(ctx, session); err != nil {
			return false, err
		}
	}

	if err := x.commitCard(ctx, session, post, image); err != nil {
		return false, err
	}

	return true, nil
}

// createPublishBranch forks the default branch tip under a unique name. The
// random suffix keeps a run from colliding with a leftover branch of a prior
// aborted run.
func (x *UseCase) createPublishBranch(ctx context.Context, session *publishSession) error {
	tip, err := x.clients.ContentRepo().GetDefaultBranch(ctx)
	if err != nil {
		return err
	}

	name := types.BranchName(x.branchPrefix + uuid.NewString()[:8])
	if err := x.clients.ContentRepo().CreateBranch(ctx, name, tip.Commit); err != nil {
		return err
	}

	session.base = tip.Name
	session.branch = &model.PublishBranch{
		Name:      name,
		TipCommit: tip.Commit,
		TipTree:   tip.Tree,
	}

	return nil
}

// commitCard appends one blob→tree→commit→ref-update chain to the publish
// branch and advances its tip.
func (x *UseCase) commitCard(ctx context.Context, session *publishSession, post *model.RepoEntry, image []byte) error {
	repo := x.clients.ContentRepo()

	blob, err := repo.CreateBlob(ctx, image)
	if err != nil {
		return err
	}

	cardPath := path.Join(x.cardsDir, model.CardNameFor(post.Name))
	tree, err := repo.CreateTree(ctx, session.branch.TipTree, cardPath, blob)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Add social card for %s", post.Name)
	commit, err := repo.CreateCommit(ctx, message, tree, session.branch.TipCommit)
	if err != nil {
		return err
	}

	if err := repo.UpdateBranchRef(ctx, session.branch.Name, commit); err != nil {
		return err
	}

	session.branch.TipCommit = commit
	session.branch.TipTree = tree

	logging.From(ctx).Info("committed card",
		slog.String("post", post.Name),
		slog.String("cardPath", cardPath),
		slog.Any("commit", commit),
	)

	return nil
}
