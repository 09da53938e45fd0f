package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"percept-srv/internal/model"
	pkgHTTP "percept-srv/pkg/http"
	"percept-srv/pkg/log"
)

const (
	youtubeVideosURL         = "https://www.googleapis.com/youtube/v3/videos"
	youtubeCommentThreadsURL = "https://www.googleapis.com/youtube/v3/commentThreads"
	// youtubeMaxPerPage is the API's maxResults ceiling.
	youtubeMaxPerPage = 100
)

type youtube struct {
	l      log.Logger
	client pkgHTTP.IClient
	apiKey string
}

// NewYouTube builds the YouTube fetcher. Comments come from the Data API
// v3, which requires an API key; without one every fetch resolves to a
// NotConfigured error.
func NewYouTube(l log.Logger, client pkgHTTP.IClient, apiKey string) Source {
	return &youtube{
		l:      l,
		client: client,
		apiKey: apiKey,
	}
}

func (s *youtube) Key() string      { return model.SourceYouTube }
func (s *youtube) Platform() string { return model.PlatformYouTube }

type youtubeVideosResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

type youtubeCommentThreadsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID      string `json:"id"`
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					AuthorDisplayName string `json:"authorDisplayName"`
					TextDisplay       string `json:"textDisplay"`
					LikeCount         int    `json:"likeCount"`
					PublishedAt       string `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

type youtubeErrorResponse struct {
	Error struct {
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *youtube) Fetch(ctx context.Context, identifier string, count int) (Output, error) {
	if s.apiKey == "" {
		return Output{}, newError(KindNotConfigured,
			"YOUTUBE_API_KEY not configured. Get one from https://console.cloud.google.com/apis/library/youtube.googleapis.com")
	}

	if err := s.validateVideo(ctx, identifier); err != nil {
		return Output{}, err
	}

	var (
		raws      []RawReview
		pageToken string
	)
	for len(raws) < count {
		page, next, err := s.fetchCommentPage(ctx, identifier, count-len(raws), pageToken)
		if err != nil {
			return Output{}, err
		}
		raws = append(raws, page...)
		if next == "" {
			break
		}
		pageToken = next
	}

	return Output{Raw: raws}, nil
}

func (s *youtube) validateVideo(ctx context.Context, identifier string) error {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", identifier)
	q.Set("key", s.apiKey)

	body, status, err := s.client.Get(ctx, youtubeVideosURL+"?"+q.Encode(), nil)
	if err != nil {
		return wrapTransport(s.Platform(), err)
	}
	if status != http.StatusOK {
		return s.apiError(identifier, body, status)
	}

	var videos youtubeVideosResponse
	if err := json.Unmarshal(body, &videos); err != nil {
		return newError(KindUpstream, "YouTube returned an unexpected response")
	}
	if len(videos.Items) == 0 {
		return newError(KindNotFound, "Video '%s' not found on YouTube", identifier)
	}
	return nil
}

func (s *youtube) fetchCommentPage(ctx context.Context, videoID string, remaining int, pageToken string) ([]RawReview, string, error) {
	if remaining > youtubeMaxPerPage {
		remaining = youtubeMaxPerPage
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("videoId", videoID)
	q.Set("maxResults", strconv.Itoa(remaining))
	q.Set("textFormat", "plainText")
	q.Set("order", "time")
	q.Set("key", s.apiKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	body, status, err := s.client.Get(ctx, youtubeCommentThreadsURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, "", wrapTransport(s.Platform(), err)
	}
	if status != http.StatusOK {
		return nil, "", s.apiError(videoID, body, status)
	}

	var threads youtubeCommentThreadsResponse
	if err := json.Unmarshal(body, &threads); err != nil {
		return nil, "", newError(KindUpstream, "YouTube returned an unexpected response")
	}

	raws := make([]RawReview, 0, len(threads.Items))
	for _, item := range threads.Items {
		snippet := item.Snippet.TopLevelComment.Snippet
		likes := snippet.LikeCount
		raw := RawReview{
			ID:      item.ID,
			User:    snippet.AuthorDisplayName,
			Comment: snippet.TextDisplay,
			Likes:   &likes,
		}
		if len(snippet.PublishedAt) >= 10 {
			raw.Date = snippet.PublishedAt[:10]
		}
		raws = append(raws, raw)
	}
	return raws, threads.NextPageToken, nil
}

// apiError maps a Data API error body to a typed failure with the same
// user-facing messages the platform's quirks deserve.
func (s *youtube) apiError(identifier string, body []byte, status int) *Error {
	var apiErr youtubeErrorResponse
	_ = json.Unmarshal(body, &apiErr)

	reason := ""
	if len(apiErr.Error.Errors) > 0 {
		reason = apiErr.Error.Errors[0].Reason
	}

	switch {
	case strings.Contains(reason, "commentsDisabled"):
		return newError(KindUpstream, "Comments are disabled for this video")
	case strings.Contains(reason, "quotaExceeded") || status == http.StatusTooManyRequests:
		return newError(KindRateLimited, "YouTube API quota exceeded. Try again tomorrow.")
	case strings.Contains(reason, "videoNotFound") || status == http.StatusNotFound:
		return newError(KindNotFound, "Video '%s' not found on YouTube", identifier)
	}

	if apiErr.Error.Message != "" {
		return newError(KindUpstream, "%s", apiErr.Error.Message)
	}
	return newError(KindUpstream, "YouTube returned status %d", status)
}
