package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/mock"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
)

// fakeRepo backs a ContentRepoMock with in-memory repository state so tests
// can exercise the full blob→tree→commit→ref chain without a network.
type fakeRepo struct {
	mu sync.Mutex

	postOrder []string
	posts     map[string]string // filename -> raw content
	cards     map[string][]byte // card path -> data

	seq      int
	tips     map[types.BranchName]types.CommitSHA
	treeOf   map[types.CommitSHA]types.TreeSHA
	branches []types.BranchName
}

func newFakeRepo(postOrder []string, posts map[string]string, cards map[string][]byte) *fakeRepo {
	if cards == nil {
		cards = map[string][]byte{}
	}
	f := &fakeRepo{
		postOrder: postOrder,
		posts:     posts,
		cards:     cards,
		tips:      map[types.BranchName]types.CommitSHA{"main": "commit-0"},
		treeOf:    map[types.CommitSHA]types.TreeSHA{"commit-0": "tree-0"},
	}
	return f
}

func (f *fakeRepo) next(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeRepo) mock() *mock.ContentRepoMock {
	return &mock.ContentRepoMock{
		ListDirectoryFunc: func(ctx context.Context, dir string) ([]*model.RepoEntry, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			switch dir {
			case "_posts":
				var out []*model.RepoEntry
				for _, name := range f.postOrder {
					out = append(out, &model.RepoEntry{Name: name, Path: "_posts/" + name})
				}
				return out, nil
			case "cards":
				var out []*model.RepoEntry
				for cardPath := range f.cards {
					out = append(out, &model.RepoEntry{
						Name: strings.TrimPrefix(cardPath, "cards/"),
						Path: cardPath,
					})
				}
				return out, nil
			}
			return nil, nil
		},
		GetRawContentFunc: func(ctx context.Context, path string) ([]byte, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if data, ok := f.cards[path]; ok {
				return data, nil
			}
			if content, ok := f.posts[strings.TrimPrefix(path, "_posts/")]; ok {
				return []byte(content), nil
			}
			return nil, goerr.Wrap(types.ErrContentNotFound, "no content", goerr.V("path", path))
		},
		GetDefaultBranchFunc: func(ctx context.Context) (*model.BranchTip, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			tip := f.tips["main"]
			return &model.BranchTip{Name: "main", Commit: tip, Tree: f.treeOf[tip]}, nil
		},
		CreateBlobFunc: func(ctx context.Context, data []byte) (types.BlobSHA, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return types.BlobSHA(f.next("blob")), nil
		},
		CreateTreeFunc: func(ctx context.Context, baseTree types.TreeSHA, entryPath string, blob types.BlobSHA) (types.TreeSHA, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return types.TreeSHA(f.next("tree")), nil
		},
		CreateCommitFunc: func(ctx context.Context, message string, tree types.TreeSHA, parent types.CommitSHA) (types.CommitSHA, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			sha := types.CommitSHA(f.next("commit"))
			f.treeOf[sha] = tree
			return sha, nil
		},
		CreateBranchFunc: func(ctx context.Context, name types.BranchName, from types.CommitSHA) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.branches = append(f.branches, name)
			f.tips[name] = from
			return nil
		},
		UpdateBranchRefFunc: func(ctx context.Context, name types.BranchName, commit types.CommitSHA) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.tips[name] = commit
			return nil
		},
		CreateFileFunc: func(ctx context.Context, path string, message string, data []byte) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.cards[path] = data
			return nil
		},
		CreatePullRequestFunc: func(ctx context.Context, input *interfaces.CreatePullRequestInput) (string, error) {
			return "https://github.com/example/blog/pull/1", nil
		},
	}
}

func newRenderer() *mock.CardRendererMock {
	return &mock.CardRendererMock{
		RenderFunc: func(ctx context.Context, input *interfaces.RenderInput) ([]byte, error) {
			return []byte("img:" + input.Title), nil
		},
	}
}

func postContent(title string) string {
	return fmt.Sprintf("---\ntitle: %s\n---\nbody text\n", title)
}
