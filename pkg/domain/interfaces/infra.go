package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ContentRepo CardRenderer

import (
	"context"

	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
)

// ContentRepo is the read/write surface of the content repository. Reads are
// plain content calls; writes go through the git object model so a batch run
// can stack multiple commits onto one branch.
type ContentRepo interface {
	ListDirectory(ctx context.Context, path string) ([]*model.RepoEntry, error)

	// GetRawContent returns the raw bytes of a file. A missing path yields
	// types.ErrContentNotFound.
	GetRawContent(ctx context.Context, path string) ([]byte, error)

	GetDefaultBranch(ctx context.Context) (*model.BranchTip, error)

	CreateBlob(ctx context.Context, data []byte) (types.BlobSHA, error)
	CreateTree(ctx context.Context, baseTree types.TreeSHA, entryPath string, blob types.BlobSHA) (types.TreeSHA, error)
	CreateCommit(ctx context.Context, message string, tree types.TreeSHA, parent types.CommitSHA) (types.CommitSHA, error)
	CreateBranch(ctx context.Context, name types.BranchName, from types.CommitSHA) error
	UpdateBranchRef(ctx context.Context, name types.BranchName, commit types.CommitSHA) error

	// CreateFile commits a single file directly to the default branch. Used
	// by the on-demand path only; batch publishing goes through the object
	// graph above.
	CreateFile(ctx context.Context, path, message string, data []byte) error

	CreatePullRequest(ctx context.Context, input *CreatePullRequestInput) (string, error)
}

type CreatePullRequestInput struct {
	Title string
	Body  string
	Head  types.BranchName
	Base  types.BranchName
}

// CardRenderer produces fixed-size social card image bytes. Implementations
// must be deterministic: identical input yields byte-identical output, which
// is what makes concurrent on-demand writes for the same post safe.
type CardRenderer interface {
	Render(ctx context.Context, input *RenderInput) ([]byte, error)
}

type RenderInput struct {
	Title     string
	Author    string
	DateLabel string
}
