package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/cardgen/pkg/domain/interfaces"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/domain/types"
	"github.com/m-mizutani/cardgen/pkg/utils/logging"
)

// LookupOrGenerateCard returns the redirect location of the card for one
// post, generating it first when absent. No lock is taken: writes go to
// distinct content-addressed paths, and two concurrent calls for the same
// post write byte-identical data, so the last writer winning is harmless.
func (x *UseCase) LookupOrGenerateCard(ctx context.Context, postPath string) (string, error) {
	if err := model.ValidatePostPath(postPath, x.postsDir); err != nil {
		return "", err
	}
	if x.cardBaseURL == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "card base URL is not configured")
	}

	cardPath := path.Join(x.cardsDir, model.CardNameFor(path.Base(postPath)))
	location := strings.TrimSuffix(x.cardBaseURL, "/") + "/" + cardPath

	// Existing card wins: the endpoint is idempotent and cheap on repeats.
	if _, err := x.clients.ContentRepo().GetRawContent(ctx, cardPath); err == nil {
		return location, nil
	} else if !errors.Is(err, types.ErrContentNotFound) {
		return "", err
	}

	content, err := x.clients.ContentRepo().GetRawContent(ctx, postPath)
	if err != nil {
		return "", err
	}

	fm, err := model.ParseFrontMatter(content)
	if err != nil {
		return "", err
	}

	image, err := x.clients.Renderer().Render(ctx, &interfaces.RenderInput{
		Title:     fm.Title,
		Author:    fm.Author,
		DateLabel: fm.Date,
	})
	if err != nil {
		return "", err
	}

	message := fmt.Sprintf("Add social card for %s", path.Base(postPath))
	if err := x.clients.ContentRepo().CreateFile(ctx, cardPath, message, image); err != nil {
		return "", err
	}

	logging.From(ctx).Info("generated card on demand",
		slog.String("post", postPath),
		slog.String("cardPath", cardPath),
	)

	return location, nil
}
