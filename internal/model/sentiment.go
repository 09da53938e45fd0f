package model

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// SentimentBreakdown counts reviews per sentiment label.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SentimentPercentages holds whole-percent shares per label. The three
// values always sum to exactly 100 when any review was analyzed.
type SentimentPercentages struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Keyword is a frequently mentioned word annotated with the aggregate
// sentiment of the texts it appears in.
type Keyword struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// SentimentData is the result of analyzing a set of reviews.
type SentimentData struct {
	Overall       string               `json:"overall"`
	Breakdown     SentimentBreakdown   `json:"breakdown"`
	Percentages   SentimentPercentages `json:"percentages"`
	AverageScore  float64              `json:"average_score"`
	TotalAnalyzed int                  `json:"total_analyzed"`
	Keywords      []Keyword            `json:"keywords"`
}
