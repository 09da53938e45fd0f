package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"percept-srv/internal/model"
	"percept-srv/pkg/log"
)

// fakeClient routes requests by URL substring so one test can serve
// several endpoints. Routes are matched in order, most specific first.
type fakeClient struct {
	routes []fakeRoute
	err    error
}

type fakeRoute struct {
	fragment string
	body     string
	status   int
}

func (c *fakeClient) respond(url string) ([]byte, int, error) {
	if c.err != nil {
		return nil, 0, c.err
	}
	for _, r := range c.routes {
		if strings.Contains(url, r.fragment) {
			status := r.status
			if status == 0 {
				status = http.StatusOK
			}
			return []byte(r.body), status, nil
		}
	}
	return nil, http.StatusNotFound, nil
}

func (c *fakeClient) Get(_ context.Context, url string, _ map[string]string) ([]byte, int, error) {
	return c.respond(url)
}

func (c *fakeClient) Post(_ context.Context, url string, _ interface{}, _ map[string]string) ([]byte, int, error) {
	return c.respond(url)
}

func (c *fakeClient) PostForm(_ context.Context, url string, _ map[string]string, _ map[string]string) ([]byte, int, error) {
	return c.respond(url)
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestNormalize(t *testing.T) {
	t.Run("defaults anonymous user", func(t *testing.T) {
		got := Normalize(model.PlatformReddit, RawReview{ID: "abc", Comment: "fine"})
		if got.User != "Anonymous" {
			t.Errorf("User mismatch: got %s, want Anonymous", got.User)
		}
		if got.Platform != model.PlatformReddit {
			t.Errorf("Platform mismatch: got %s", got.Platform)
		}
	})

	t.Run("keeps valid rating and likes", func(t *testing.T) {
		got := Normalize(model.PlatformGooglePlay, RawReview{
			User:   "alice",
			Rating: floatPtr(4),
			Likes:  intPtr(0),
		})
		if got.Rating == nil || *got.Rating != 4 {
			t.Errorf("Rating mismatch: got %v, want 4", got.Rating)
		}
		if got.Likes == nil || *got.Likes != 0 {
			t.Errorf("Likes mismatch: got %v, want 0", got.Likes)
		}
	})

	t.Run("drops out of range rating", func(t *testing.T) {
		got := Normalize(model.PlatformGooglePlay, RawReview{Rating: floatPtr(0)})
		if got.Rating != nil {
			t.Errorf("Rating should be absent, got %v", *got.Rating)
		}
		got = Normalize(model.PlatformGooglePlay, RawReview{Rating: floatPtr(6)})
		if got.Rating != nil {
			t.Errorf("Rating should be absent, got %v", *got.Rating)
		}
	})
}

func TestAsError(t *testing.T) {
	t.Run("passes typed error through", func(t *testing.T) {
		src := newError(KindNotFound, "gone")
		got := AsError(src)
		if got.Kind != KindNotFound || got.Message != "gone" {
			t.Errorf("AsError mismatch: got %+v", got)
		}
	})

	t.Run("wraps unknown error as upstream", func(t *testing.T) {
		got := AsError(errors.New("boom"))
		if got.Kind != KindUpstream {
			t.Errorf("Kind mismatch: got %s, want %s", got.Kind, KindUpstream)
		}
	})
}

func TestYouTubeFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("missing api key is not configured", func(t *testing.T) {
		src := NewYouTube(testLogger(), &fakeClient{}, "")
		_, err := src.Fetch(ctx, "abc123", 10)
		fe := AsError(err)
		if fe.Kind != KindNotConfigured {
			t.Errorf("Kind mismatch: got %s, want %s", fe.Kind, KindNotConfigured)
		}
		if !strings.Contains(fe.Message, "YOUTUBE_API_KEY") {
			t.Errorf("message should name the missing key, got %q", fe.Message)
		}
	})

	t.Run("unknown video is not found", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "/videos", body: `{"items":[]}`},
		}}
		src := NewYouTube(testLogger(), client, "key")
		_, err := src.Fetch(ctx, "missing", 10)
		fe := AsError(err)
		if fe.Kind != KindNotFound {
			t.Errorf("Kind mismatch: got %s, want %s", fe.Kind, KindNotFound)
		}
	})

	t.Run("collects comments across pages", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "/videos", body: `{"items":[{"id":"abc123"}]}`},
			{fragment: "pageToken=next", body: `{"items":[{"id":"c2","snippet":{"topLevelComment":{"snippet":
				{"authorDisplayName":"bob","textDisplay":"second","likeCount":1,"publishedAt":"2024-02-02T00:00:00Z"}}}}]}`},
			{fragment: "/commentThreads", body: `{"nextPageToken":"next","items":[{"id":"c1","snippet":{"topLevelComment":{"snippet":
				{"authorDisplayName":"alice","textDisplay":"first","likeCount":3,"publishedAt":"2024-01-01T12:00:00Z"}}}}]}`},
		}}
		src := NewYouTube(testLogger(), client, "key")
		out, err := src.Fetch(ctx, "abc123", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Raw) != 2 {
			t.Fatalf("review count mismatch: got %d, want 2", len(out.Raw))
		}
		if out.Raw[0].User != "alice" || out.Raw[0].Date != "2024-01-01" {
			t.Errorf("first comment mismatch: %+v", out.Raw[0])
		}
		if out.Raw[1].Comment != "second" {
			t.Errorf("second comment mismatch: %+v", out.Raw[1])
		}
	})

	t.Run("quota exhaustion maps to rate limited", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "/videos",
				body:   `{"error":{"errors":[{"reason":"quotaExceeded"}],"message":"quota"}}`,
				status: http.StatusForbidden,
			},
		}}
		src := NewYouTube(testLogger(), client, "key")
		_, err := src.Fetch(ctx, "abc123", 10)
		fe := AsError(err)
		if fe.Kind != KindRateLimited {
			t.Errorf("Kind mismatch: got %s, want %s", fe.Kind, KindRateLimited)
		}
	})
}

func TestProductHuntFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token is not configured", func(t *testing.T) {
		src := NewProductHunt(testLogger(), &fakeClient{}, "")
		_, err := src.Fetch(ctx, "my-product", 10)
		if AsError(err).Kind != KindNotConfigured {
			t.Errorf("Kind mismatch: got %s, want %s", AsError(err).Kind, KindNotConfigured)
		}
	})

	t.Run("null post is not found", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "producthunt", body: `{"data":{"post":null}}`},
		}}
		src := NewProductHunt(testLogger(), client, "token")
		_, err := src.Fetch(ctx, "missing", 10)
		fe := AsError(err)
		if fe.Kind != KindNotFound {
			t.Errorf("Kind mismatch: got %s, want %s", fe.Kind, KindNotFound)
		}
		if !strings.Contains(fe.Message, "missing") {
			t.Errorf("message should name the identifier, got %q", fe.Message)
		}
	})

	t.Run("aggregate rating and total override", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "producthunt", body: `{"data":{"post":{
				"commentsCount":42,"reviewsRating":4.6,
				"comments":{"edges":[
					{"node":{"id":"n1","body":"nice","createdAt":"2024-03-01T10:00:00Z","votesCount":5,"user":{"name":"Sam","username":"sam"}}},
					{"node":{"id":"n2","body":"meh","createdAt":"2024-03-02T10:00:00Z","votesCount":0,"user":{"name":"","username":"ghost"}}}
				]}}}}`},
		}}
		src := NewProductHunt(testLogger(), client, "token")
		out, err := src.Fetch(ctx, "my-product", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AverageRating == nil || *out.AverageRating != 4.6 {
			t.Errorf("AverageRating mismatch: got %v, want 4.6", out.AverageRating)
		}
		if out.TotalReviews == nil || *out.TotalReviews != 42 {
			t.Errorf("TotalReviews mismatch: got %v, want 42", out.TotalReviews)
		}
		if len(out.Raw) != 2 {
			t.Fatalf("review count mismatch: got %d, want 2", len(out.Raw))
		}
		if out.Raw[1].User != "ghost" {
			t.Errorf("username fallback mismatch: got %s, want ghost", out.Raw[1].User)
		}
	})

	t.Run("unauthorized maps to upstream", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "producthunt", body: `{}`, status: http.StatusUnauthorized},
		}}
		src := NewProductHunt(testLogger(), client, "token")
		_, err := src.Fetch(ctx, "my-product", 10)
		fe := AsError(err)
		if fe.Kind != KindUpstream || fe.Message != "Invalid or expired API token" {
			t.Errorf("error mismatch: got %+v", fe)
		}
	})
}

func TestAppStoreFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown app is not found", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "lookup", body: `{"resultCount":0}`},
		}}
		src := NewAppStore(testLogger(), client, "us")
		_, err := src.Fetch(ctx, "12345", 10)
		fe := AsError(err)
		if fe.Kind != KindNotFound {
			t.Errorf("Kind mismatch: got %s, want %s", fe.Kind, KindNotFound)
		}
	})

	t.Run("joins title and content", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "lookup", body: `{"resultCount":1}`},
			{fragment: "page=1", body: `{"feed":{"entry":[
				{"id":{"label":"r1"},"author":{"name":{"label":"Reviewer"}},"im:rating":{"label":"5"},
				 "title":{"label":"Great"},"content":{"label":"Works well"},"updated":{"label":"2024-04-01T08:00:00-07:00"}},
				{"id":{"label":"r2"},"author":{"name":{"label":""}},"im:rating":{"label":"2"},
				 "title":{"label":""},"content":{"label":"Crashes"},"updated":{"label":"2024-04-02T08:00:00-07:00"}}
			]}}`},
			{fragment: "page=2", body: `{"feed":{}}`},
		}}
		src := NewAppStore(testLogger(), client, "us")
		out, err := src.Fetch(ctx, "12345", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Raw) != 2 {
			t.Fatalf("review count mismatch: got %d, want 2", len(out.Raw))
		}
		if out.Raw[0].Comment != "Great: Works well" {
			t.Errorf("comment join mismatch: got %q", out.Raw[0].Comment)
		}
		if out.Raw[1].Comment != "Crashes" {
			t.Errorf("comment mismatch: got %q", out.Raw[1].Comment)
		}
		if out.Raw[0].Rating == nil || *out.Raw[0].Rating != 5 {
			t.Errorf("rating mismatch: got %v", out.Raw[0].Rating)
		}
		if out.Raw[0].Date != "2024-04-01" {
			t.Errorf("date mismatch: got %s", out.Raw[0].Date)
		}
	})
}

func TestRedditFetch(t *testing.T) {
	ctx := context.Background()
	postJSON := `[
		{"kind":"Listing","data":{"children":[{"kind":"t3","data":{"id":"p1"}}]}},
		{"kind":"Listing","data":{"children":[
			{"kind":"t1","data":{"id":"c1","author":"u1","body":"love it","score":10,"created_utc":1704067200}},
			{"kind":"t1","data":{"id":"c2","author":"u2","body":"","score":1,"created_utc":1704067200}},
			{"kind":"more","data":{}}
		]}}
	]`

	t.Run("post identifier fetches its comments", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "r/golang/comments", body: postJSON},
		}}
		src := NewReddit(testLogger(), client, "PerceptionScanner/1.0")
		out, err := src.Fetch(ctx, "r/golang/comments/abc/title", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Raw) != 1 {
			t.Fatalf("review count mismatch: got %d, want 1", len(out.Raw))
		}
		if out.Raw[0].Comment != "love it" || out.Raw[0].Date != "2024-01-01" {
			t.Errorf("comment mismatch: %+v", out.Raw[0])
		}
	})

	t.Run("subreddit walks hot posts", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "hot.json", body: `{"data":{"children":[{"kind":"t3","data":{"id":"p1","permalink":"/r/golang/comments/abc/title/"}}]}}`,
			},
			{fragment: "/r/golang/comments/abc", body: postJSON},
		}}
		src := NewReddit(testLogger(), client, "PerceptionScanner/1.0")
		out, err := src.Fetch(ctx, "golang", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Raw) != 1 {
			t.Fatalf("review count mismatch: got %d, want 1", len(out.Raw))
		}
	})

	t.Run("empty subreddit is not found", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "hot.json", body: `{"data":{"children":[]}}`},
		}}
		src := NewReddit(testLogger(), client, "PerceptionScanner/1.0")
		_, err := src.Fetch(ctx, "ghosttown", 10)
		fe := AsError(err)
		if fe.Kind != KindNotFound {
			t.Errorf("Kind mismatch: got %s, want %s", fe.Kind, KindNotFound)
		}
	})

	t.Run("forbidden maps to private or banned", func(t *testing.T) {
		client := &fakeClient{routes: []fakeRoute{
			{fragment: "hot.json", body: ``, status: http.StatusForbidden},
		}}
		src := NewReddit(testLogger(), client, "PerceptionScanner/1.0")
		_, err := src.Fetch(ctx, "hidden", 10)
		fe := AsError(err)
		if fe.Message != "Subreddit is private or banned" {
			t.Errorf("message mismatch: got %q", fe.Message)
		}
	})
}

func TestGooglePlayParseReviews(t *testing.T) {
	src := NewGooglePlay(testLogger(), &fakeClient{}, "en", "us").(*googlePlay)

	t.Run("parses wrapped payload", func(t *testing.T) {
		payload := `[[["gp:review1",["PlayUser",[null]],5,null,"Solid app",[1704067200],12]],null]`
		envelope := `)]}'` + "\n\n" + `[["wrb.fr","UsvDTd",` + quoteJSON(payload) + `,null,null,null,"generic"]]`

		raws, err := src.parseReviews([]byte(envelope))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(raws) != 1 {
			t.Fatalf("review count mismatch: got %d, want 1", len(raws))
		}
		got := raws[0]
		if got.ID != "gp:review1" || got.User != "PlayUser" || got.Comment != "Solid app" {
			t.Errorf("review mismatch: %+v", got)
		}
		if got.Rating == nil || *got.Rating != 5 {
			t.Errorf("rating mismatch: got %v", got.Rating)
		}
		if got.Likes == nil || *got.Likes != 12 {
			t.Errorf("likes mismatch: got %v", got.Likes)
		}
		if got.Date != "2024-01-01" {
			t.Errorf("date mismatch: got %s", got.Date)
		}
	})

	t.Run("missing payload frame means no reviews", func(t *testing.T) {
		raws, err := src.parseReviews([]byte(`)]}'` + "\n" + `[["di",123]]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(raws) != 0 {
			t.Errorf("expected no reviews, got %d", len(raws))
		}
	})
}

func quoteJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
