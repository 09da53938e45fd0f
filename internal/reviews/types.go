package reviews

import (
	"time"

	"percept-srv/internal/model"
)

// SourceConfig carries the per-platform identifiers of one scan request.
// An empty identifier means that platform is not part of the scan.
type SourceConfig struct {
	YouTubeVideo       string
	ProductHuntProduct string
	GooglePlayApp      string
	IOSApp             string
	RedditSubreddit    string
}

// Identifier returns the identifier configured for a source key.
func (sc SourceConfig) Identifier(sourceKey string) string {
	switch sourceKey {
	case model.SourceYouTube:
		return sc.YouTubeVideo
	case model.SourceProductHunt:
		return sc.ProductHuntProduct
	case model.SourceGooglePlay:
		return sc.GooglePlayApp
	case model.SourceIOSAppStore:
		return sc.IOSApp
	case model.SourceReddit:
		return sc.RedditSubreddit
	}
	return ""
}

type AggregateInput struct {
	ProductName string
	Sources     SourceConfig
}

// EventTypeScanCompleted tags the event published after each scan.
const EventTypeScanCompleted = "scan.completed"

// ScanCompletedEvent is emitted to the event stream once an aggregation
// finishes, regardless of how many sources succeeded.
type ScanCompletedEvent struct {
	Type          string    `json:"type"`
	ProductName   string    `json:"product_name"`
	Sources       []string  `json:"sources"`
	FailedSources []string  `json:"failed_sources"`
	Overall       string    `json:"overall,omitempty"`
	TotalAnalyzed int       `json:"total_analyzed"`
	OccurredAt    time.Time `json:"occurred_at"`
}
