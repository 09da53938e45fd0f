package repository

import (
	"context"

	"percept-srv/internal/model"
	"percept-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	// UpsertProduct returns the product with the given name, creating
	// it if it does not exist yet.
	UpsertProduct(ctx context.Context, name string) (model.Product, error)

	// GetProductByName returns ErrNotFound for unknown products.
	GetProductByName(ctx context.Context, name string) (model.Product, error)

	CreateSnapshot(ctx context.Context, opt CreateSnapshotOption) (model.SentimentSnapshot, error)

	// ListSnapshots returns one page of a product's snapshots, newest
	// first, plus the total count.
	ListSnapshots(ctx context.Context, productID string, page paginator.PaginateQuery) ([]model.SentimentSnapshot, int64, error)

	// LatestSnapshot returns ErrNotFound when the product has no scans.
	LatestSnapshot(ctx context.Context, productID string) (model.SentimentSnapshot, error)
}
