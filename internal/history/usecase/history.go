package usecase

import (
	"context"
	"errors"

	"percept-srv/internal/history"
	"percept-srv/internal/history/repository"
	"percept-srv/internal/model"
	"percept-srv/pkg/paginator"
)

func (uc *implUseCase) RecordScan(ctx context.Context, input history.RecordScanInput) (model.SentimentSnapshot, error) {
	if input.ProductName == "" {
		return model.SentimentSnapshot{}, history.ErrProductNameRequired
	}

	product, err := uc.repo.UpsertProduct(ctx, input.ProductName)
	if err != nil {
		uc.l.Errorf(ctx, "history.usecase.RecordScan: UpsertProduct failed: %v", err)
		return model.SentimentSnapshot{}, err
	}

	snap, err := uc.repo.CreateSnapshot(ctx, repository.CreateSnapshotOption{
		ProductID: product.ID,
		Sentiment: input.Sentiment,
		Sources:   input.Sources,
	})
	if err != nil {
		uc.l.Errorf(ctx, "history.usecase.RecordScan: CreateSnapshot failed: %v", err)
		return model.SentimentSnapshot{}, err
	}
	return snap, nil
}

func (uc *implUseCase) ListSnapshots(ctx context.Context, input history.ListSnapshotsInput) (history.ListSnapshotsOutput, error) {
	if input.ProductName == "" {
		return history.ListSnapshotsOutput{}, history.ErrProductNameRequired
	}

	input.PaginateQuery.Adjust()

	product, err := uc.repo.GetProductByName(ctx, input.ProductName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return history.ListSnapshotsOutput{}, history.ErrProductNotFound
		}
		uc.l.Errorf(ctx, "history.usecase.ListSnapshots: GetProductByName failed: %v", err)
		return history.ListSnapshotsOutput{}, err
	}

	snapshots, total, err := uc.repo.ListSnapshots(ctx, product.ID, input.PaginateQuery)
	if err != nil {
		uc.l.Errorf(ctx, "history.usecase.ListSnapshots: ListSnapshots failed: %v", err)
		return history.ListSnapshotsOutput{}, err
	}

	return history.ListSnapshotsOutput{
		Product:   product,
		Snapshots: snapshots,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(snapshots)),
			PerPage:     input.PaginateQuery.Limit,
			CurrentPage: input.PaginateQuery.Page,
		},
	}, nil
}

func (uc *implUseCase) LatestSnapshot(ctx context.Context, productName string) (model.SentimentSnapshot, error) {
	if productName == "" {
		return model.SentimentSnapshot{}, history.ErrProductNameRequired
	}

	product, err := uc.repo.GetProductByName(ctx, productName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.SentimentSnapshot{}, history.ErrProductNotFound
		}
		uc.l.Errorf(ctx, "history.usecase.LatestSnapshot: GetProductByName failed: %v", err)
		return model.SentimentSnapshot{}, err
	}

	snap, err := uc.repo.LatestSnapshot(ctx, product.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.SentimentSnapshot{}, history.ErrSnapshotNotFound
		}
		uc.l.Errorf(ctx, "history.usecase.LatestSnapshot: LatestSnapshot failed: %v", err)
		return model.SentimentSnapshot{}, err
	}
	return snap, nil
}
