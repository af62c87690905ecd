package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/cardgen/pkg/domain/model"
)

type UseCase interface {
	// GenerateMissingCards runs one batch publishing cycle under the lock.
	GenerateMissingCards(ctx context.Context) (*model.BatchResult, error)

	// LookupOrGenerateCard returns the redirect location of the card for the
	// given post, generating and uploading it first when absent.
	LookupOrGenerateCard(ctx context.Context, postPath string) (string, error)
}
