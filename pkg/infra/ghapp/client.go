package ghapp

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
)

// Client talks to one content repository through a GitHub App installation.
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
	owner     string
	repo      string
}

var _ interfaces.ContentRepo = (*Client)(nil)

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, owner, repo string) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}
	if owner == "" || repo == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository owner/name is empty")
	}

	client := &Client{
		appID:     appID,
		installID: installID,
		pem:       pem,
		owner:     owner,
		repo:      repo,
	}

	return client, nil
}

func (x *Client) buildGithubClient() (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(x.installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github client")
	}

	return github.NewClient(&http.Client{Transport: itr}), nil
}

func (x *Client) ListDirectory(ctx context.Context, path string) ([]*model.RepoEntry, error) {
	client, err := x.buildGithubClient()
	if err != nil {
		return nil, err
	}

	_, dir, resp, err := client.Repositories.GetContents(ctx, x.owner, x.repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to list directory", goerr.V("path", path))
	}

	entries := make([]*model.RepoEntry, 0, len(dir))
	for _, item := range dir {
		if item.GetType() != "file" {
			continue
		}
		entries = append(entries, &model.RepoEntry{
			Name: item.GetName(),
			Path: item.GetPath(),
		})
	}

	logging.From(ctx).Debug("Listed directory",
		slog.String("path", path),
		slog.Int("count", len(entries)),
	)

	return entries, nil
}

func (x *Client) GetRawContent(ctx context.Context, path string) ([]byte, error) {
	client, err := x.buildGithubClient()
	if err != nil {
		return nil, err
	}

	file, _, resp, err := client.Repositories.GetContents(ctx, x.owner, x.repo, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrContentNotFound, "no content at path", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to get content", goerr.V("path", path))
	}
	if file == nil {
		return nil, goerr.Wrap(types.ErrContentNotFound, "path is not a file", goerr.V("path", path))
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode content", goerr.V("path", path))
	}

	return []byte(content), nil
}

func (x *Client) GetDefaultBranch(ctx context.Context) (*model.BranchTip, error) {
	client, err := x.buildGithubClient()
	if err != nil {
		return nil, err
	}

	repo, _, err := client.Repositories.Get(ctx, x.owner, x.repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository")
	}
	branchName := repo.GetDefaultBranch()

	ref, _, err := client.Git.GetRef(ctx, x.owner, x.repo, "refs/heads/"+branchName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get default branch ref", goerr.V("branch", branchName))
	}

	commit, _, err := client.Git.GetCommit(ctx, x.owner, x.repo, ref.GetObject().GetSHA())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tip commit", goerr.V("sha", ref.GetObject().GetSHA()))
	}

	return &model.BranchTip{
		Name:   types.BranchName(branchName),
		Commit: types.CommitSHA(commit.GetSHA()),
		Tree:   types.TreeSHA(commit.GetTree().GetSHA()),
	}, nil
}

func (x *Client) CreateBlob(ctx context.Context, data []byte) (types.BlobSHA, error) {
	client, err := x.buildGithubClient()
	if err != nil {
		return "", err
	}

	blob, _, err := client.Git.CreateBlob(ctx, x.owner, x.repo, &github.Blob{
		Content:  github.String(base64.StdEncoding.EncodeToString(data)),
		Encoding: github.String("base64"),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create blob", goerr.V("size", len(data)))
	}

	return types.BlobSHA(blob.GetSHA()), nil
}

func (x *Client) CreateTree(ctx context.Context, baseTree types.TreeSHA, entryPath string, blob types.BlobSHA) (types.TreeSHA, error) {
	client, err := x.buildGithubClient()
	if err != nil {
		return "", err
	}

	tree, _, err := client.Git.CreateTree(ctx, x.owner, x.repo, string(baseTree), []*github.TreeEntry{
		{
			Path: github.String(entryPath),
			Mode: github.String("100644"),
			Type: github.String("blob"),
			SHA:  github.String(string(blob)),
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create tree",
			goerr.V("baseTree", baseTree),
			goerr.V("entryPath", entryPath),
		)
	}

	return types.TreeSHA(tree.GetSHA()), nil
}

func (x *Client) CreateCommit(ctx context.Context, message string, tree types.TreeSHA, parent types.CommitSHA) (types.CommitSHA, error) {
	client, err := x.buildGithubClient()
	if err != nil {
		return "", err
	}

	commit, _, err := client.Git.CreateCommit(ctx, x.owner, x.repo, &github.Commit{
		Message: github.String(message),
		Tree:    &github.Tree{SHA: github.String(string(tree))},
		Parents: []*github.Commit{{SHA: github.String(string(parent))}},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create commit",
			goerr.V("tree", tree),
			goerr.V("parent", parent),
		)
	}

	return types.CommitSHA(commit.GetSHA()), nil
}

func (x *Client) CreateBranch(ctx context.Context, name types.BranchName, from types.CommitSHA) error {
	client, err := x.buildGithubClient()
	if err != nil {
		return err
	}

	_, _, err = client.Git.CreateRef(ctx, x.owner, x.repo, &github.Reference{
		Ref:    github.String("refs/heads/" + string(name)),
		Object: &github.GitObject{SHA: github.String(string(from))},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create branch",
			goerr.V("branch", name),
			goerr.V("from", from),
		)
	}

	logging.From(ctx).Info("Created publish branch",
		slog.Any("branch", name),
		slog.Any("from", from),
	)

	return nil
}

func (x *Client) UpdateBranchRef(ctx context.Context, name types.BranchName, commit types.CommitSHA) error {
	client, err := x.buildGithubClient()
	if err != nil {
		return err
	}

	_, _, err = client.Git.UpdateRef(ctx, x.owner, x.repo, &github.Reference{
		Ref:    github.String("refs/heads/" + string(name)),
		Object: &github.GitObject{SHA: github.String(string(commit))},
	}, false)
	if err != nil {
		return goerr.Wrap(err, "failed to update branch ref",
			goerr.V("branch", name),
			goerr.V("commit", commit),
		)
	}

	return nil
}

func isAlreadyExists(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) &&
		ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusUnprocessableEntity
}

func (x *Client) CreateFile(ctx context.Context, path, message string, data []byte) error {
	client, err := x.buildGithubClient()
	if err != nil {
		return err
	}

	_, _, err = client.Repositories.CreateFile(ctx, x.owner, x.repo, path, &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: data,
	})
	if err != nil {
		// Creating without a blob SHA fails with 422 when the file is
		// already there. A concurrent writer got in first, and the file
		// existing is all the caller needs.
		if isAlreadyExists(err) {
			logging.From(ctx).Info("file already exists, skipping write", slog.String("path", path))
			return nil
		}
		return goerr.Wrap(err, "failed to create file", goerr.V("path", path))
	}

	return nil
}

func (x *Client) CreatePullRequest(ctx context.Context, input *interfaces.CreatePullRequestInput) (string, error) {
	client, err := x.buildGithubClient()
	if err != nil {
		return "", err
	}

	pr, _, err := client.PullRequests.Create(ctx, x.owner, x.repo, &github.NewPullRequest{
		Title: github.String(input.Title),
		Body:  github.String(input.Body),
		Head:  github.String(string(input.Head)),
		Base:  github.String(string(input.Base)),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create pull request",
			goerr.V("head", input.Head),
			goerr.V("base", input.Base),
		)
	}

	logging.From(ctx).Info("Created pull request",
		slog.String("url", pr.GetHTMLURL()),
		slog.Any("head", input.Head),
	)

	return pr.GetHTMLURL(), nil
}
