package model

// Platform display names, used as the platform discriminator in responses.
const (
	PlatformYouTube     = "YouTube"
	PlatformProductHunt = "Product Hunt"
	PlatformGooglePlay  = "Google Play Store"
	PlatformIOSAppStore = "iOS App Store"
	PlatformReddit      = "Reddit"
)

// Source keys identify platforms in cache keys and events.
const (
	SourceYouTube     = "youtube"
	SourceProductHunt = "product_hunt"
	SourceGooglePlay  = "google_play"
	SourceIOSAppStore = "ios"
	SourceReddit      = "reddit"
)

// SourceKeys lists every source key in canonical order. Per-source
// results always follow this order regardless of fetch completion order.
var SourceKeys = []string{
	SourceYouTube,
	SourceProductHunt,
	SourceGooglePlay,
	SourceIOSAppStore,
	SourceReddit,
}

// PlatformName maps a source key to its display name.
func PlatformName(sourceKey string) string {
	switch sourceKey {
	case SourceYouTube:
		return PlatformYouTube
	case SourceProductHunt:
		return PlatformProductHunt
	case SourceGooglePlay:
		return PlatformGooglePlay
	case SourceIOSAppStore:
		return PlatformIOSAppStore
	case SourceReddit:
		return PlatformReddit
	}
	return sourceKey
}

// Review is a single normalized user review or comment from any platform.
// Rating and Likes are pointers because not every platform provides them:
// a nil field is omitted from JSON rather than serialized as zero.
type Review struct {
	ID       string   `json:"id"`
	User     string   `json:"user"`
	Rating   *float64 `json:"rating,omitempty"`
	Comment  string   `json:"comment"`
	Date     string   `json:"date"`
	Platform string   `json:"platform"`
	Likes    *int     `json:"likes,omitempty"`
}

// SourceReviews is the per-platform slice of an aggregation result.
// Sentiment is present only when the fetch succeeded; Error only when
// it failed. AverageRating is 0 when no review carries a rating.
type SourceReviews struct {
	Platform      string         `json:"platform"`
	Identifier    string         `json:"identifier"`
	AverageRating float64        `json:"average_rating"`
	TotalReviews  int            `json:"total_reviews"`
	Reviews       []Review       `json:"reviews"`
	Sentiment     *SentimentData `json:"sentiment,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// SourceError pairs a failed platform with its human-readable message.
type SourceError struct {
	Platform string `json:"platform"`
	Error    string `json:"error"`
}

// ProductReviewsResponse is the full aggregate for one scan request.
// CombinedSentiment is absent when no source succeeded.
type ProductReviewsResponse struct {
	ProductName       string          `json:"product_name"`
	Sources           []SourceReviews `json:"sources"`
	CombinedSentiment *SentimentData  `json:"combined_sentiment,omitempty"`
	Errors            []SourceError   `json:"errors"`
}
