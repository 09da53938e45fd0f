package history

import (
	"context"

	"percept-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RecordScan persists the sentiment outcome of one completed scan,
	// creating the product on first sight.
	RecordScan(ctx context.Context, input RecordScanInput) (model.SentimentSnapshot, error)

	// ListSnapshots returns a product's scan history, newest first.
	ListSnapshots(ctx context.Context, input ListSnapshotsInput) (ListSnapshotsOutput, error)

	// LatestSnapshot returns a product's most recent scan result.
	LatestSnapshot(ctx context.Context, productName string) (model.SentimentSnapshot, error)
}
