package repository

import (
	"percept-srv/internal/model"
)

type CreateSnapshotOption struct {
	ProductID string
	Sentiment model.SentimentData
	Sources   []string
}
