package usecase

import (
	"github.com/jonreiter/govader"

	"percept-srv/internal/sentiment"
	"percept-srv/pkg/log"
)

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	l        log.Logger
	analyzer *govader.SentimentIntensityAnalyzer
}

// New - Factory function
func New(l log.Logger) sentiment.UseCase {
	return &implUseCase{
		l:        l,
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}
