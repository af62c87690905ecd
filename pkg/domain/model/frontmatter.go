package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// frontMatterDelimiter separates the metadata block from the post body.
const frontMatterDelimiter = "---"

// FrontMatter is the metadata block at the head of a post. All fields are
// optional; a missing title renders as an empty string rather than failing.
type FrontMatter struct {
	Title  string   `yaml:"title"`
	Author string   `yaml:"author"`
	Tags   []string `yaml:"tags"`
	Date   string   `yaml:"date"`
}

// ParseFrontMatter splits raw post content on the front-matter delimiter and
// deserializes the metadata segment. Unrecognized keys are ignored. Content
// without at least an opening and closing delimiter is malformed and yields
// ErrInvalidGitHubData so the caller can skip the post.
func ParseFrontMatter(content []byte) (*FrontMatter, error) {
	text := strings.TrimPrefix(string(content), "\uFEFF")

	parts := strings.SplitN(text, frontMatterDelimiter, 3)
	if len(parts) < 3 {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "front matter delimiter not found")
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "failed to parse front matter", goerr.V("error", err))
	}

	return &fm, nil
}
