package usecase

import (
	"context"
	"encoding/json"
	"time"

	"percept-srv/internal/history"
	"percept-srv/internal/model"
	"percept-srv/internal/reviews"
)

// recordScan persists the combined sentiment as a history snapshot.
// Best effort: a history failure never degrades the scan response.
func (uc *implUseCase) recordScan(ctx context.Context, productName string, resp model.ProductReviewsResponse) {
	if uc.historyUC == nil || resp.CombinedSentiment == nil {
		return
	}

	if _, err := uc.historyUC.RecordScan(ctx, history.RecordScanInput{
		ProductName: productName,
		Sentiment:   *resp.CombinedSentiment,
		Sources:     succeededSourceKeys(resp),
	}); err != nil {
		uc.l.Warnf(ctx, "reviews.usecase.recordScan: RecordScan failed: %v", err)
	}
}

// publishScanCompleted emits the scan event to the stream. Best effort.
func (uc *implUseCase) publishScanCompleted(ctx context.Context, productName string, resp model.ProductReviewsResponse) {
	if uc.producer == nil {
		return
	}

	event := reviews.ScanCompletedEvent{
		Type:          reviews.EventTypeScanCompleted,
		ProductName:   productName,
		Sources:       succeededSourceKeys(resp),
		FailedSources: failedSourceKeys(resp),
		OccurredAt:    time.Now().UTC(),
	}
	if resp.CombinedSentiment != nil {
		event.Overall = resp.CombinedSentiment.Overall
		event.TotalAnalyzed = resp.CombinedSentiment.TotalAnalyzed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "reviews.usecase.publishScanCompleted: Failed to marshal event: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(productName), payload); err != nil {
		uc.l.Warnf(ctx, "reviews.usecase.publishScanCompleted: Publish failed: %v", err)
	}
}

func succeededSourceKeys(resp model.ProductReviewsResponse) []string {
	keys := make([]string, 0, len(resp.Sources))
	for _, src := range resp.Sources {
		keys = append(keys, sourceKeyOf(src.Platform))
	}
	return keys
}

func failedSourceKeys(resp model.ProductReviewsResponse) []string {
	keys := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		keys = append(keys, sourceKeyOf(e.Platform))
	}
	return keys
}

func sourceKeyOf(platform string) string {
	switch platform {
	case model.PlatformYouTube:
		return model.SourceYouTube
	case model.PlatformProductHunt:
		return model.SourceProductHunt
	case model.PlatformGooglePlay:
		return model.SourceGooglePlay
	case model.PlatformIOSAppStore:
		return model.SourceIOSAppStore
	case model.PlatformReddit:
		return model.SourceReddit
	}
	return platform
}
