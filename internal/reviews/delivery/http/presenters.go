package http

import (
	"percept-srv/internal/model"
	"percept-srv/internal/reviews"
)

// displayKeywordLimit caps keyword lists in the response. The analyzer
// ranks the full list; the display layer truncates.
const displayKeywordLimit = 10

// =====================================================
// Request DTOs
// =====================================================

type reviewsReq struct {
	ProductName string     `json:"product_name" binding:"required"`
	Sources     sourcesReq `json:"sources"`
}

type sourcesReq struct {
	YouTubeVideo       string `json:"youtube_video"`
	ProductHuntProduct string `json:"product_hunt_product"`
	GooglePlayApp      string `json:"google_play_app"`
	IOSApp             string `json:"ios_app"`
	RedditSubreddit    string `json:"reddit_subreddit"`
}

func (r reviewsReq) toInput() reviews.AggregateInput {
	return reviews.AggregateInput{
		ProductName: r.ProductName,
		Sources: reviews.SourceConfig{
			YouTubeVideo:       r.Sources.YouTubeVideo,
			ProductHuntProduct: r.Sources.ProductHuntProduct,
			GooglePlayApp:      r.Sources.GooglePlayApp,
			IOSApp:             r.Sources.IOSApp,
			RedditSubreddit:    r.Sources.RedditSubreddit,
		},
	}
}

// =====================================================
// Response mapping
// =====================================================

// newAggregateResp trims keyword lists for display without touching the
// rest of the aggregate, which already matches the wire contract.
func (h *handler) newAggregateResp(output model.ProductReviewsResponse) model.ProductReviewsResponse {
	for i := range output.Sources {
		output.Sources[i].Sentiment = truncateKeywords(output.Sources[i].Sentiment)
	}
	output.CombinedSentiment = truncateKeywords(output.CombinedSentiment)
	return output
}

func truncateKeywords(sd *model.SentimentData) *model.SentimentData {
	if sd == nil || len(sd.Keywords) <= displayKeywordLimit {
		return sd
	}
	trimmed := *sd
	trimmed.Keywords = trimmed.Keywords[:displayKeywordLimit]
	return &trimmed
}
