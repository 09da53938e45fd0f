package reviews

import (
	"context"

	"percept-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Aggregate fans out one fetch per configured source, scores the
	// results and composes the full per-product response. Source-level
	// failures degrade into response entries; only a malformed input
	// returns an error.
	Aggregate(ctx context.Context, input AggregateInput) (model.ProductReviewsResponse, error)
}
