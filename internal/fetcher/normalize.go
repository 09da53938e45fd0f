package fetcher

import (
	"percept-srv/internal/model"
)

// anonymousUser is the placeholder for platforms that omit the author.
const anonymousUser = "Anonymous"

// Normalize converts a raw platform review into the canonical form.
// It is total: malformed input degrades to defaults, never to an error.
// Ratings outside [1,5] are treated as absent rather than clamped.
func Normalize(platform string, raw RawReview) model.Review {
	r := model.Review{
		ID:       raw.ID,
		User:     raw.User,
		Comment:  raw.Comment,
		Date:     raw.Date,
		Platform: platform,
	}

	if r.User == "" {
		r.User = anonymousUser
	}

	if raw.Rating != nil && *raw.Rating >= 1 && *raw.Rating <= 5 {
		rating := *raw.Rating
		r.Rating = &rating
	}

	if raw.Likes != nil && *raw.Likes >= 0 {
		likes := *raw.Likes
		r.Likes = &likes
	}

	return r
}
