package model

import "time"

// Product is a scanned product tracked in the history store.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SentimentSnapshot records the sentiment result of one completed scan.
type SentimentSnapshot struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`

	Overall       string  `json:"overall"`
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	Neutral       int     `json:"neutral"`
	AverageScore  float64 `json:"average_score"`
	TotalAnalyzed int     `json:"total_analyzed"`

	// Sources that contributed reviews to this scan, in canonical order.
	Sources []string `json:"sources"`

	CreatedAt time.Time `json:"created_at"`
}
