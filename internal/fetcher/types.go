package fetcher

// RawReview is a review as a platform fetcher produced it, before
// normalization. Optional fields stay nil when the platform does not
// supply them.
type RawReview struct {
	ID      string
	User    string
	Rating  *float64
	Comment string
	Date    string
	Likes   *int
}

// Output is a successful fetch result.
type Output struct {
	Raw []RawReview

	// AverageRating, when set, overrides the computed mean of per-review
	// ratings. Used by platforms that only expose an aggregate rating.
	AverageRating *float64

	// TotalReviews, when set, overrides len(Raw). Used by platforms that
	// report a total larger than the fetched page.
	TotalReviews *int
}
