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
	playBatchExecuteURL = "https://play.google.com/_/PlayStoreUi/data/batchexecute"
	// playReviewsRPCID is the batchexecute RPC serving paginated reviews.
	playReviewsRPCID = "UsvDTd"
	// playSortNewest matches the store UI "newest first" ordering.
	playSortNewest = 2
	// playMaxPerRequest is the largest page the RPC serves in one call.
	playMaxPerRequest = 150
)

type googlePlay struct {
	l        log.Logger
	client   pkgHTTP.IClient
	language string
	country  string
}

// NewGooglePlay builds the Google Play Store fetcher. Reviews come from
// the store's internal batchexecute RPC, so no credential is needed.
func NewGooglePlay(l log.Logger, client pkgHTTP.IClient, language, country string) Source {
	return &googlePlay{
		l:        l,
		client:   client,
		language: language,
		country:  country,
	}
}

func (s *googlePlay) Key() string      { return model.SourceGooglePlay }
func (s *googlePlay) Platform() string { return model.PlatformGooglePlay }

func (s *googlePlay) Fetch(ctx context.Context, identifier string, count int) (Output, error) {
	if count > playMaxPerRequest {
		count = playMaxPerRequest
	}

	url := fmt.Sprintf("%s?hl=%s&gl=%s", playBatchExecuteURL, s.language, s.country)
	form := map[string]string{
		"f.req": s.reviewsRequest(identifier, count),
	}
	headers := map[string]string{
		"Content-Type": "application/x-www-form-urlencoded;charset=UTF-8",
	}

	body, status, err := s.client.PostForm(ctx, url, form, headers)
	if err != nil {
		return Output{}, wrapTransport(s.Platform(), err)
	}
	switch {
	case status == http.StatusNotFound || status == http.StatusBadRequest:
		return Output{}, newError(KindNotFound, "App '%s' not found on Google Play Store", identifier)
	case status == http.StatusTooManyRequests:
		return Output{}, newError(KindRateLimited, "Rate limited. Try again later.")
	case status != http.StatusOK:
		return Output{}, newError(KindUpstream, "Google Play returned status %d", status)
	}

	raws, err := s.parseReviews(body)
	if err != nil {
		s.l.Warnf(ctx, "fetcher.googlePlay.Fetch.parseReviews: %v", err)
		return Output{}, newError(KindUpstream, "Google Play returned an unexpected response")
	}

	if len(raws) > count {
		raws = raws[:count]
	}
	return Output{Raw: raws}, nil
}

// reviewsRequest builds the f.req envelope for the reviews RPC. The
// inner request is itself JSON, double-encoded inside the envelope.
func (s *googlePlay) reviewsRequest(appID string, count int) string {
	inner := fmt.Sprintf(`[null,null,[2,%d,[%d,null,null],null,[]],[%q,7]]`, playSortNewest, count, appID)
	envelope := [][]any{{playReviewsRPCID, inner, nil, "generic"}}
	b, _ := json.Marshal([]any{envelope})
	return string(b)
}

// parseReviews unwraps the batchexecute envelope. The response body is
// an anti-XSSI prefix followed by a JSON array whose "wrb.fr" entry
// carries the review payload as an escaped JSON string.
func (s *googlePlay) parseReviews(body []byte) ([]RawReview, error) {
	text := strings.TrimPrefix(strings.TrimSpace(string(body)), ")]}'")
	idx := strings.Index(text, "[")
	if idx < 0 {
		return nil, fmt.Errorf("no JSON payload in response")
	}

	var envelope []json.RawMessage
	dec := json.NewDecoder(strings.NewReader(text[idx:]))
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	var payload string
	for _, part := range envelope {
		var frame []any
		if err := json.Unmarshal(part, &frame); err != nil {
			continue
		}
		if len(frame) >= 3 && frame[0] == "wrb.fr" {
			if p, ok := frame[2].(string); ok {
				payload = p
				break
			}
		}
	}
	if payload == "" {
		// No payload frame means the app has no reviews.
		return nil, nil
	}

	var data []any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	items, ok := data[0].([]any)
	if !ok {
		return nil, nil
	}

	raws := make([]RawReview, 0, len(items))
	for _, item := range items {
		fields, ok := item.([]any)
		if !ok {
			continue
		}
		raws = append(raws, s.parseReview(fields))
	}
	return raws, nil
}

// parseReview maps one positional review record. Field positions follow
// the store UI payload: 0 review ID, 1 author, 2 score, 4 content,
// 5 timestamp, 6 thumbs-up count.
func (s *googlePlay) parseReview(fields []any) RawReview {
	raw := RawReview{
		ID:      stringAt(fields, 0),
		Comment: stringAt(fields, 4),
	}

	if author, ok := indexAt(fields, 1).([]any); ok {
		raw.User = stringAt(author, 0)
	}
	if score, ok := indexAt(fields, 2).(float64); ok && score > 0 {
		raw.Rating = &score
	}
	if ts, ok := indexAt(fields, 5).([]any); ok {
		if sec, ok := indexAt(ts, 0).(float64); ok && sec > 0 {
			raw.Date = time.Unix(int64(sec), 0).UTC().Format("2006-01-02")
		}
	}
	if thumbs, ok := indexAt(fields, 6).(float64); ok {
		likes := int(thumbs)
		raw.Likes = &likes
	}
	return raw
}

func indexAt(fields []any, i int) any {
	if i < 0 || i >= len(fields) {
		return nil
	}
	return fields[i]
}

func stringAt(fields []any, i int) string {
	v, _ := indexAt(fields, i).(string)
	return v
}
