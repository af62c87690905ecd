package model

import (
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
)

// CardSuffix is appended to a post filename to derive its card filename.
// A post `2020-01-01-test.md` maps to the card `2020-01-01-test.md.png`.
const CardSuffix = ".png"

// RepoEntry is one entry of a content repository directory listing.
type RepoEntry struct {
	Name string
	Path string
}

// CardNameFor returns the card filename corresponding to a post filename.
func CardNameFor(postName string) string {
	return postName + CardSuffix
}

// PostRecord is the raw content of a single post, fetched per missing post
// and discarded once its card is generated.
type PostRecord struct {
	Path    string
	Content []byte
}

// ValidatePostPath checks that a requested post path is confined to the
// posts directory. Traversal sequences are rejected segment by segment
// rather than by substring match so that legitimate names containing dots
// still pass.
func ValidatePostPath(postPath, postsDir string) error {
	if postPath == "" {
		return goerr.Wrap(types.ErrInvalidPath, "empty path")
	}

	normalized := strings.ReplaceAll(postPath, "\\", "/")
	for _, part := range strings.Split(normalized, "/") {
		if part == ".." {
			return goerr.Wrap(types.ErrInvalidPath, "path traversal", goerr.V("path", postPath))
		}
	}

	cleaned := path.Clean(normalized)
	if cleaned != postsDir && !strings.HasPrefix(cleaned, postsDir+"/") {
		return goerr.Wrap(types.ErrInvalidPath, "path is outside the posts directory",
			goerr.V("path", postPath),
			goerr.V("postsDir", postsDir),
		)
	}

	return nil
}
