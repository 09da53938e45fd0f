package usecase

import (
	"context"
	"errors"
	"math"
	"sync"

	"percept-srv/internal/fetcher"
	"percept-srv/internal/model"
	"percept-srv/internal/reviews"
	"percept-srv/internal/reviews/repository"
)

// fetchTask pairs a source with the identifier configured for it.
type fetchTask struct {
	source     fetcher.Source
	identifier string
}

func (uc *implUseCase) Aggregate(ctx context.Context, input reviews.AggregateInput) (model.ProductReviewsResponse, error) {
	if input.ProductName == "" {
		return model.ProductReviewsResponse{}, reviews.ErrProductNameRequired
	}

	resp := model.ProductReviewsResponse{
		ProductName: input.ProductName,
		Sources:     []model.SourceReviews{},
		Errors:      []model.SourceError{},
	}

	var tasks []fetchTask
	for _, src := range uc.sources {
		if identifier := input.Sources.Identifier(src.Key()); identifier != "" {
			tasks = append(tasks, fetchTask{source: src, identifier: identifier})
		}
	}
	if len(tasks) == 0 {
		return resp, nil
	}

	// Fan out one fetch per configured source. Every task resolves to a
	// SourceReviews value, success or failure; results are re-ordered by
	// task index so completion order never leaks into the response.
	results := make([]model.SourceReviews, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task fetchTask) {
			defer wg.Done()
			results[i] = uc.fetchSource(ctx, task)
		}(i, task)
	}
	wg.Wait()

	var combined []model.Review
	for _, result := range results {
		if result.Error != "" {
			resp.Errors = append(resp.Errors, model.SourceError{
				Platform: result.Platform,
				Error:    result.Error,
			})
			continue
		}
		resp.Sources = append(resp.Sources, result)
		combined = append(combined, result.Reviews...)
	}

	if len(resp.Sources) > 0 {
		cs := uc.sentimentUC.Analyze(combined)
		resp.CombinedSentiment = &cs

		uc.recordScan(ctx, input.ProductName, resp)
	}

	uc.publishScanCompleted(ctx, input.ProductName, resp)

	return resp, nil
}

// fetchSource resolves one source: cache lookup, bounded fetch,
// normalization and per-source sentiment.
func (uc *implUseCase) fetchSource(ctx context.Context, task fetchTask) model.SourceReviews {
	sourceKey := task.source.Key()
	platform := task.source.Platform()

	if uc.cacheRepo != nil && uc.cfg.CacheTTL > 0 {
		cached, err := uc.cacheRepo.GetSourceReviews(ctx, sourceKey, task.identifier)
		if err == nil {
			return cached
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "reviews.usecase.fetchSource: cache lookup failed for %s: %v", sourceKey, err)
		}
	}

	fetchCtx := ctx
	if uc.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, uc.cfg.FetchTimeout)
		defer cancel()
	}

	out, err := task.source.Fetch(fetchCtx, task.identifier, uc.cfg.ReviewCount)
	if err != nil {
		fe := fetcher.AsError(err)
		uc.l.Warnf(ctx, "reviews.usecase.fetchSource: %s fetch failed (%s): %s", sourceKey, fe.Kind, fe.Message)
		return model.SourceReviews{
			Platform:   platform,
			Identifier: task.identifier,
			Reviews:    []model.Review{},
			Error:      fe.Message,
		}
	}

	normalized := make([]model.Review, 0, len(out.Raw))
	for _, raw := range out.Raw {
		normalized = append(normalized, fetcher.Normalize(platform, raw))
	}

	result := model.SourceReviews{
		Platform:      platform,
		Identifier:    task.identifier,
		AverageRating: averageRating(normalized),
		TotalReviews:  len(normalized),
		Reviews:       normalized,
	}
	if out.AverageRating != nil {
		result.AverageRating = *out.AverageRating
	}
	if out.TotalReviews != nil {
		result.TotalReviews = *out.TotalReviews
	}

	sd := uc.sentimentUC.Analyze(normalized)
	result.Sentiment = &sd

	if uc.cacheRepo != nil && uc.cfg.CacheTTL > 0 {
		if err := uc.cacheRepo.SaveSourceReviews(ctx, sourceKey, task.identifier, result, uc.cfg.CacheTTL); err != nil {
			uc.l.Warnf(ctx, "reviews.usecase.fetchSource: cache save failed for %s: %v", sourceKey, err)
		}
	}
	return result
}

// averageRating is the mean of present ratings, rounded to 2 decimals.
// Zero when no review carries a rating.
func averageRating(rs []model.Review) float64 {
	var sum float64
	var n int
	for _, r := range rs {
		if r.Rating != nil {
			sum += *r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*100) / 100
}
