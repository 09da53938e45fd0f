package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"percept-srv/internal/model"
	pkgHTTP "percept-srv/pkg/http"
	"percept-srv/pkg/log"
)

const (
	itunesLookupURL  = "https://itunes.apple.com/lookup?id=%s"
	itunesReviewsURL = "https://itunes.apple.com/%s/rss/customerreviews/page=%d/id=%s/sortby=mostrecent/json"
	// itunesMaxPages is the hard cap of the customer-reviews RSS feed.
	itunesMaxPages = 10
)

type appStore struct {
	l       log.Logger
	client  pkgHTTP.IClient
	country string
}

// NewAppStore builds the iOS App Store fetcher. It validates the app via
// the iTunes lookup API, then pages through the public reviews RSS feed.
func NewAppStore(l log.Logger, client pkgHTTP.IClient, country string) Source {
	return &appStore{
		l:       l,
		client:  client,
		country: country,
	}
}

func (s *appStore) Key() string      { return model.SourceIOSAppStore }
func (s *appStore) Platform() string { return model.PlatformIOSAppStore }

type itunesLookupResponse struct {
	ResultCount int `json:"resultCount"`
}

type itunesLabel struct {
	Label string `json:"label"`
}

type itunesEntry struct {
	ID     itunesLabel `json:"id"`
	Author struct {
		Name itunesLabel `json:"name"`
	} `json:"author"`
	Rating  itunesLabel `json:"im:rating"`
	Title   itunesLabel `json:"title"`
	Content itunesLabel `json:"content"`
	Updated itunesLabel `json:"updated"`
}

type itunesFeedResponse struct {
	Feed struct {
		Entry []itunesEntry `json:"entry"`
	} `json:"feed"`
}

func (s *appStore) Fetch(ctx context.Context, identifier string, count int) (Output, error) {
	if err := s.validateApp(ctx, identifier); err != nil {
		return Output{}, err
	}

	var raws []RawReview
	for page := 1; page <= itunesMaxPages && len(raws) < count; page++ {
		entries, err := s.fetchPage(ctx, identifier, page)
		if err != nil {
			// Later pages 404 once the feed runs out.
			if page > 1 {
				break
			}
			return Output{}, err
		}
		if len(entries) == 0 {
			break
		}

		for _, e := range entries {
			raws = append(raws, s.toRaw(e))
			if len(raws) >= count {
				break
			}
		}
	}

	return Output{Raw: raws}, nil
}

func (s *appStore) validateApp(ctx context.Context, identifier string) error {
	body, status, err := s.client.Get(ctx, fmt.Sprintf(itunesLookupURL, identifier), nil)
	if err != nil {
		return wrapTransport(s.Platform(), err)
	}
	if status != http.StatusOK {
		return newError(KindUpstream, "iTunes lookup returned status %d", status)
	}

	var lookup itunesLookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil || lookup.ResultCount == 0 {
		return newError(KindNotFound, "App with ID '%s' not found on iOS App Store", identifier)
	}
	return nil
}

func (s *appStore) fetchPage(ctx context.Context, identifier string, page int) ([]itunesEntry, error) {
	url := fmt.Sprintf(itunesReviewsURL, s.country, page, identifier)
	body, status, err := s.client.Get(ctx, url, nil)
	if err != nil {
		return nil, wrapTransport(s.Platform(), err)
	}
	if status != http.StatusOK {
		return nil, newError(KindUpstream, "App Store reviews feed returned status %d", status)
	}

	var feed itunesFeedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, newError(KindUpstream, "App Store returned an unexpected response")
	}
	return feed.Feed.Entry, nil
}

func (s *appStore) toRaw(e itunesEntry) RawReview {
	raw := RawReview{
		ID:      e.ID.Label,
		User:    e.Author.Name.Label,
		Comment: e.Content.Label,
	}
	if e.Title.Label != "" {
		raw.Comment = e.Title.Label + ": " + e.Content.Label
	}
	if rating, err := strconv.ParseFloat(e.Rating.Label, 64); err == nil {
		raw.Rating = &rating
	}
	if len(e.Updated.Label) >= 10 {
		raw.Date = e.Updated.Label[:10]
	}
	return raw
}
