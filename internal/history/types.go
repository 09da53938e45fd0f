package history

import (
	"percept-srv/internal/model"
	"percept-srv/pkg/paginator"
)

type RecordScanInput struct {
	ProductName string
	Sentiment   model.SentimentData
	// Sources lists the source keys that contributed reviews, in
	// canonical order.
	Sources []string
}

type ListSnapshotsInput struct {
	ProductName   string
	PaginateQuery paginator.PaginateQuery
}

type ListSnapshotsOutput struct {
	Product   model.Product
	Snapshots []model.SentimentSnapshot
	Paginator paginator.Paginator
}
