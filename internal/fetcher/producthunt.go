package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"percept-srv/internal/model"
	pkgHTTP "percept-srv/pkg/http"
	"percept-srv/pkg/log"
)

const (
	productHuntAPIURL = "https://api.producthunt.com/v2/api/graphql"
	// productHuntMaxComments is the GraphQL first: argument ceiling.
	productHuntMaxComments = 100
)

type productHunt struct {
	l        log.Logger
	client   pkgHTTP.IClient
	apiToken string
}

// NewProductHunt builds the Product Hunt fetcher. The v2 GraphQL API
// exposes comments plus an aggregate reviewsRating; individual comments
// carry no rating of their own.
func NewProductHunt(l log.Logger, client pkgHTTP.IClient, apiToken string) Source {
	return &productHunt{
		l:        l,
		client:   client,
		apiToken: apiToken,
	}
}

func (s *productHunt) Key() string      { return model.SourceProductHunt }
func (s *productHunt) Platform() string { return model.PlatformProductHunt }

type productHuntResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Data struct {
		Post *struct {
			CommentsCount int      `json:"commentsCount"`
			ReviewsRating *float64 `json:"reviewsRating"`
			Comments      struct {
				Edges []struct {
					Node struct {
						ID         string `json:"id"`
						Body       string `json:"body"`
						CreatedAt  string `json:"createdAt"`
						VotesCount int    `json:"votesCount"`
						User       struct {
							Name     string `json:"name"`
							Username string `json:"username"`
						} `json:"user"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"comments"`
		} `json:"post"`
	} `json:"data"`
}

func (s *productHunt) Fetch(ctx context.Context, identifier string, count int) (Output, error) {
	if s.apiToken == "" {
		return Output{}, newError(KindNotConfigured,
			"PRODUCT_HUNT_API_TOKEN not configured. Get one from https://api.producthunt.com/v2/docs")
	}

	if count > productHuntMaxComments {
		count = productHuntMaxComments
	}

	query := fmt.Sprintf(`query {
		post(slug: %q) {
			commentsCount
			reviewsRating
			comments(first: %d) {
				edges {
					node {
						id
						body
						createdAt
						votesCount
						user { name username }
					}
				}
			}
		}
	}`, identifier, count)

	headers := map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer " + s.apiToken,
	}

	body, status, err := s.client.Post(ctx, productHuntAPIURL, map[string]string{"query": query}, headers)
	if err != nil {
		return Output{}, wrapTransport(s.Platform(), err)
	}
	switch status {
	case http.StatusUnauthorized:
		return Output{}, newError(KindUpstream, "Invalid or expired API token")
	case http.StatusTooManyRequests:
		return Output{}, newError(KindRateLimited, "Rate limit exceeded. Try again later.")
	}
	if status != http.StatusOK {
		return Output{}, newError(KindUpstream, "Product Hunt returned status %d", status)
	}

	var resp productHuntResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Output{}, newError(KindUpstream, "Product Hunt returned an unexpected response")
	}
	if len(resp.Errors) > 0 {
		return Output{}, newError(KindUpstream, "%s", resp.Errors[0].Message)
	}
	post := resp.Data.Post
	if post == nil {
		return Output{}, newError(KindNotFound, "Product '%s' not found on Product Hunt", identifier)
	}

	raws := make([]RawReview, 0, len(post.Comments.Edges))
	for _, edge := range post.Comments.Edges {
		node := edge.Node
		user := node.User.Name
		if user == "" {
			user = node.User.Username
		}
		votes := node.VotesCount
		raw := RawReview{
			ID:      node.ID,
			User:    user,
			Comment: node.Body,
			Likes:   &votes,
		}
		if len(node.CreatedAt) >= 10 {
			raw.Date = node.CreatedAt[:10]
		}
		raws = append(raws, raw)
	}

	out := Output{Raw: raws}
	if post.ReviewsRating != nil {
		out.AverageRating = post.ReviewsRating
	}
	total := post.CommentsCount
	if total > 0 {
		out.TotalReviews = &total
	}
	return out, nil
}
