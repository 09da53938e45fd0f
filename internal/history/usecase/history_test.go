package usecase

import (
	"context"
	"errors"
	"testing"

	"percept-srv/internal/history"
	"percept-srv/internal/history/repository"
	"percept-srv/internal/model"
	"percept-srv/pkg/log"
	"percept-srv/pkg/paginator"
)

type fakeRepository struct {
	products  map[string]model.Product
	snapshots map[string][]model.SentimentSnapshot // productID -> newest first
	nextID    int
	failWith  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		products:  make(map[string]model.Product),
		snapshots: make(map[string][]model.SentimentSnapshot),
	}
}

func (r *fakeRepository) UpsertProduct(ctx context.Context, name string) (model.Product, error) {
	if r.failWith != nil {
		return model.Product{}, r.failWith
	}
	if p, ok := r.products[name]; ok {
		return p, nil
	}
	r.nextID++
	p := model.Product{ID: string(rune('a' + r.nextID - 1)), Name: name}
	r.products[name] = p
	return p, nil
}

func (r *fakeRepository) GetProductByName(ctx context.Context, name string) (model.Product, error) {
	if r.failWith != nil {
		return model.Product{}, r.failWith
	}
	p, ok := r.products[name]
	if !ok {
		return model.Product{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *fakeRepository) CreateSnapshot(ctx context.Context, opt repository.CreateSnapshotOption) (model.SentimentSnapshot, error) {
	if r.failWith != nil {
		return model.SentimentSnapshot{}, r.failWith
	}
	r.nextID++
	snap := model.SentimentSnapshot{
		ID:            string(rune('a' + r.nextID - 1)),
		ProductID:     opt.ProductID,
		Overall:       opt.Sentiment.Overall,
		Positive:      opt.Sentiment.Breakdown.Positive,
		Negative:      opt.Sentiment.Breakdown.Negative,
		Neutral:       opt.Sentiment.Breakdown.Neutral,
		AverageScore:  opt.Sentiment.AverageScore,
		TotalAnalyzed: opt.Sentiment.TotalAnalyzed,
		Sources:       opt.Sources,
	}
	r.snapshots[opt.ProductID] = append([]model.SentimentSnapshot{snap}, r.snapshots[opt.ProductID]...)
	return snap, nil
}

func (r *fakeRepository) ListSnapshots(ctx context.Context, productID string, page paginator.PaginateQuery) ([]model.SentimentSnapshot, int64, error) {
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	all := r.snapshots[productID]
	offset := page.Offset()
	if offset >= int64(len(all)) {
		return []model.SentimentSnapshot{}, int64(len(all)), nil
	}
	end := offset + page.Limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end], int64(len(all)), nil
}

func (r *fakeRepository) LatestSnapshot(ctx context.Context, productID string) (model.SentimentSnapshot, error) {
	if r.failWith != nil {
		return model.SentimentSnapshot{}, r.failWith
	}
	all := r.snapshots[productID]
	if len(all) == 0 {
		return model.SentimentSnapshot{}, repository.ErrNotFound
	}
	return all[0], nil
}

func newHistoryUseCase(repo repository.Repository) history.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
	return New(l, repo)
}

func sentimentFixture(total int) model.SentimentData {
	return model.SentimentData{
		Overall:       model.SentimentPositive,
		Breakdown:     model.SentimentBreakdown{Positive: total},
		Percentages:   model.SentimentPercentages{Positive: 100},
		AverageScore:  0.5,
		TotalAnalyzed: total,
		Keywords:      []model.Keyword{},
	}
}

func TestRecordScan(t *testing.T) {
	ctx := context.Background()

	t.Run("empty product name is rejected", func(t *testing.T) {
		uc := newHistoryUseCase(newFakeRepository())

		_, err := uc.RecordScan(ctx, history.RecordScanInput{})
		if !errors.Is(err, history.ErrProductNameRequired) {
			t.Fatalf("got %v, want ErrProductNameRequired", err)
		}
	})

	t.Run("creates product and snapshot", func(t *testing.T) {
		repo := newFakeRepository()
		uc := newHistoryUseCase(repo)

		snap, err := uc.RecordScan(ctx, history.RecordScanInput{
			ProductName: "notion",
			Sentiment:   sentimentFixture(10),
			Sources:     []string{"youtube", "reddit"},
		})
		if err != nil {
			t.Fatalf("RecordScan: %v", err)
		}
		if snap.TotalAnalyzed != 10 {
			t.Errorf("TotalAnalyzed = %d, want 10", snap.TotalAnalyzed)
		}
		if _, ok := repo.products["notion"]; !ok {
			t.Error("product was not created")
		}
		if got := len(repo.snapshots[snap.ProductID]); got != 1 {
			t.Errorf("stored snapshots = %d, want 1", got)
		}
	})

	t.Run("second scan reuses the product", func(t *testing.T) {
		repo := newFakeRepository()
		uc := newHistoryUseCase(repo)

		first, err := uc.RecordScan(ctx, history.RecordScanInput{ProductName: "notion", Sentiment: sentimentFixture(3)})
		if err != nil {
			t.Fatalf("first RecordScan: %v", err)
		}
		second, err := uc.RecordScan(ctx, history.RecordScanInput{ProductName: "notion", Sentiment: sentimentFixture(5)})
		if err != nil {
			t.Fatalf("second RecordScan: %v", err)
		}
		if first.ProductID != second.ProductID {
			t.Errorf("ProductID differs across scans: %q vs %q", first.ProductID, second.ProductID)
		}
		if got := len(repo.snapshots[first.ProductID]); got != 2 {
			t.Errorf("stored snapshots = %d, want 2", got)
		}
	})

	t.Run("repository errors propagate", func(t *testing.T) {
		repo := newFakeRepository()
		repo.failWith = errors.New("db down")
		uc := newHistoryUseCase(repo)

		_, err := uc.RecordScan(ctx, history.RecordScanInput{ProductName: "notion", Sentiment: sentimentFixture(1)})
		if err == nil {
			t.Fatal("got nil error, want repository error")
		}
	})
}

func TestListSnapshots(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product maps to ErrProductNotFound", func(t *testing.T) {
		uc := newHistoryUseCase(newFakeRepository())

		_, err := uc.ListSnapshots(ctx, history.ListSnapshotsInput{ProductName: "ghost"})
		if !errors.Is(err, history.ErrProductNotFound) {
			t.Fatalf("got %v, want ErrProductNotFound", err)
		}
	})

	t.Run("pages newest first with totals", func(t *testing.T) {
		repo := newFakeRepository()
		uc := newHistoryUseCase(repo)

		for i := 0; i < 3; i++ {
			if _, err := uc.RecordScan(ctx, history.RecordScanInput{ProductName: "notion", Sentiment: sentimentFixture(i + 1)}); err != nil {
				t.Fatalf("RecordScan: %v", err)
			}
		}

		output, err := uc.ListSnapshots(ctx, history.ListSnapshotsInput{
			ProductName:   "notion",
			PaginateQuery: paginator.PaginateQuery{Page: 1, Limit: 2},
		})
		if err != nil {
			t.Fatalf("ListSnapshots: %v", err)
		}
		if output.Product.Name != "notion" {
			t.Errorf("Product.Name = %q, want %q", output.Product.Name, "notion")
		}
		if len(output.Snapshots) != 2 {
			t.Fatalf("len(Snapshots) = %d, want 2", len(output.Snapshots))
		}
		// Newest scan analyzed 3 reviews.
		if output.Snapshots[0].TotalAnalyzed != 3 {
			t.Errorf("Snapshots[0].TotalAnalyzed = %d, want 3", output.Snapshots[0].TotalAnalyzed)
		}
		if output.Paginator.Total != 3 {
			t.Errorf("Paginator.Total = %d, want 3", output.Paginator.Total)
		}
		if output.Paginator.Count != 2 {
			t.Errorf("Paginator.Count = %d, want 2", output.Paginator.Count)
		}
	})

	t.Run("invalid pagination falls back to defaults", func(t *testing.T) {
		repo := newFakeRepository()
		uc := newHistoryUseCase(repo)

		if _, err := uc.RecordScan(ctx, history.RecordScanInput{ProductName: "notion", Sentiment: sentimentFixture(1)}); err != nil {
			t.Fatalf("RecordScan: %v", err)
		}

		output, err := uc.ListSnapshots(ctx, history.ListSnapshotsInput{
			ProductName:   "notion",
			PaginateQuery: paginator.PaginateQuery{Page: -1, Limit: -5},
		})
		if err != nil {
			t.Fatalf("ListSnapshots: %v", err)
		}
		if output.Paginator.CurrentPage != paginator.DefaultPage {
			t.Errorf("CurrentPage = %d, want %d", output.Paginator.CurrentPage, paginator.DefaultPage)
		}
		if output.Paginator.PerPage != paginator.DefaultLimit {
			t.Errorf("PerPage = %d, want %d", output.Paginator.PerPage, paginator.DefaultLimit)
		}
	})
}

func TestLatestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product maps to ErrProductNotFound", func(t *testing.T) {
		uc := newHistoryUseCase(newFakeRepository())

		_, err := uc.LatestSnapshot(ctx, "ghost")
		if !errors.Is(err, history.ErrProductNotFound) {
			t.Fatalf("got %v, want ErrProductNotFound", err)
		}
	})

	t.Run("product without scans maps to ErrSnapshotNotFound", func(t *testing.T) {
		repo := newFakeRepository()
		uc := newHistoryUseCase(repo)

		if _, err := repo.UpsertProduct(ctx, "notion"); err != nil {
			t.Fatalf("UpsertProduct: %v", err)
		}

		_, err := uc.LatestSnapshot(ctx, "notion")
		if !errors.Is(err, history.ErrSnapshotNotFound) {
			t.Fatalf("got %v, want ErrSnapshotNotFound", err)
		}
	})

	t.Run("returns the most recent scan", func(t *testing.T) {
		repo := newFakeRepository()
		uc := newHistoryUseCase(repo)

		if _, err := uc.RecordScan(ctx, history.RecordScanInput{ProductName: "notion", Sentiment: sentimentFixture(1)}); err != nil {
			t.Fatalf("RecordScan: %v", err)
		}
		if _, err := uc.RecordScan(ctx, history.RecordScanInput{ProductName: "notion", Sentiment: sentimentFixture(7)}); err != nil {
			t.Fatalf("RecordScan: %v", err)
		}

		snap, err := uc.LatestSnapshot(ctx, "notion")
		if err != nil {
			t.Fatalf("LatestSnapshot: %v", err)
		}
		if snap.TotalAnalyzed != 7 {
			t.Errorf("TotalAnalyzed = %d, want 7", snap.TotalAnalyzed)
		}
	})
}
