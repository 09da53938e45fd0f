package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"percept-srv/internal/model"
	pkgHTTP "percept-srv/pkg/http"
	"percept-srv/pkg/log"
)

const (
	redditBaseURL = "https://www.reddit.com"
	// redditHotPosts is how many hot posts to walk when the identifier
	// names a subreddit rather than a single post.
	redditHotPosts = 10
	// redditCommentsPerPost caps comments taken from each walked post.
	redditCommentsPerPost = 10
)

type reddit struct {
	l         log.Logger
	client    pkgHTTP.IClient
	userAgent string
}

// NewReddit builds the Reddit fetcher on the public JSON endpoints. A
// descriptive User-Agent is mandatory or Reddit throttles aggressively.
func NewReddit(l log.Logger, client pkgHTTP.IClient, userAgent string) Source {
	return &reddit{
		l:         l,
		client:    client,
		userAgent: userAgent,
	}
}

func (s *reddit) Key() string      { return model.SourceReddit }
func (s *reddit) Platform() string { return model.PlatformReddit }

type redditThing struct {
	Kind string `json:"kind"`
	Data struct {
		ID         string  `json:"id"`
		Author     string  `json:"author"`
		Body       string  `json:"body"`
		Score      int     `json:"score"`
		CreatedUTC float64 `json:"created_utc"`
		Permalink  string  `json:"permalink"`
	} `json:"data"`
}

type redditListing struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	Data    struct {
		Children []redditThing `json:"children"`
	} `json:"data"`
}

func (s *reddit) Fetch(ctx context.Context, identifier string, count int) (Output, error) {
	// A path-like identifier points at a single post; a bare name is a
	// subreddit whose hot posts get walked for comments.
	if strings.HasPrefix(identifier, "r/") || strings.Contains(identifier, "/") {
		raws, err := s.fetchPostComments(ctx, "/"+strings.TrimPrefix(identifier, "/"), count, identifier)
		if err != nil {
			return Output{}, err
		}
		return Output{Raw: raws}, nil
	}
	return s.fetchSubreddit(ctx, identifier, count)
}

func (s *reddit) fetchSubreddit(ctx context.Context, identifier string, count int) (Output, error) {
	url := fmt.Sprintf("%s/r/%s/hot.json?limit=25", redditBaseURL, identifier)
	body, err := s.get(ctx, url, identifier)
	if err != nil {
		return Output{}, err
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return Output{}, newError(KindUpstream, "Reddit returned an unexpected response")
	}
	if listing.Error != 0 {
		msg := listing.Message
		if msg == "" {
			msg = "Not found"
		}
		return Output{}, newError(KindUpstream, "Reddit returned error: %s", msg)
	}
	if len(listing.Data.Children) == 0 {
		return Output{}, newError(KindNotFound, "Subreddit 'r/%s' not found or empty", identifier)
	}

	var raws []RawReview
	posts := listing.Data.Children
	if len(posts) > redditHotPosts {
		posts = posts[:redditHotPosts]
	}
	for _, post := range posts {
		if post.Data.Permalink == "" {
			continue
		}

		comments, err := s.fetchPostComments(ctx, post.Data.Permalink, redditCommentsPerPost, identifier)
		if err != nil {
			// One unreadable post should not sink the whole subreddit.
			s.l.Warnf(ctx, "fetcher.reddit.fetchSubreddit.fetchPostComments: %v", err)
			continue
		}

		for _, c := range comments {
			raws = append(raws, c)
			if len(raws) >= count {
				return Output{Raw: raws}, nil
			}
		}
	}

	return Output{Raw: raws}, nil
}

func (s *reddit) fetchPostComments(ctx context.Context, permalink string, count int, identifier string) ([]RawReview, error) {
	url := fmt.Sprintf("%s%s.json?limit=%d", redditBaseURL, strings.TrimSuffix(permalink, "/"), count)
	body, err := s.get(ctx, url, identifier)
	if err != nil {
		return nil, err
	}

	// A post endpoint returns a two-element array: the post listing,
	// then the comment tree.
	var pages []redditListing
	if err := json.Unmarshal(body, &pages); err != nil || len(pages) < 2 {
		return nil, newError(KindUpstream, "Reddit returned an unexpected response")
	}

	var raws []RawReview
	for _, item := range pages[1].Data.Children {
		if item.Kind != "t1" || item.Data.Body == "" {
			continue
		}
		score := item.Data.Score
		raw := RawReview{
			ID:      item.Data.ID,
			User:    item.Data.Author,
			Comment: item.Data.Body,
			Likes:   &score,
		}
		if item.Data.CreatedUTC > 0 {
			raw.Date = time.Unix(int64(item.Data.CreatedUTC), 0).UTC().Format("2006-01-02")
		}
		raws = append(raws, raw)
		if len(raws) >= count {
			break
		}
	}
	return raws, nil
}

func (s *reddit) get(ctx context.Context, url, identifier string) ([]byte, error) {
	headers := map[string]string{"User-Agent": s.userAgent}
	body, status, err := s.client.Get(ctx, url, headers)
	if err != nil {
		return nil, wrapTransport(s.Platform(), err)
	}

	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, newError(KindNotFound, "Subreddit or post '%s' not found", identifier)
	case http.StatusForbidden:
		return nil, newError(KindUpstream, "Subreddit is private or banned")
	case http.StatusTooManyRequests:
		return nil, newError(KindRateLimited, "Rate limited. Try again later.")
	}
	return nil, newError(KindUpstream, "Reddit returned status %d", status)
}
