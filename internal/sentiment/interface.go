package sentiment

import (
	"percept-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze scores a set of reviews. Pure and CPU-bound: no I/O, no
	// shared mutable state, deterministic for a given input sequence.
	Analyze(reviews []model.Review) model.SentimentData
}
