package usecase

import (
	"math"

	"percept-srv/internal/model"
	"percept-srv/internal/sentiment"
)

// Analyze scores every non-empty comment, classifies each into
// positive/negative/neutral, and derives the aggregate result.
func (uc *implUseCase) Analyze(reviews []model.Review) model.SentimentData {
	var (
		texts     []string
		compounds []float64
	)
	for _, r := range reviews {
		if r.Comment == "" {
			continue
		}
		texts = append(texts, r.Comment)
		compounds = append(compounds, uc.score(r.Comment))
	}

	if len(compounds) == 0 {
		return model.SentimentData{
			Overall:  model.SentimentNeutral,
			Keywords: []model.Keyword{},
		}
	}

	var breakdown model.SentimentBreakdown
	total := 0.0
	for _, c := range compounds {
		total += c
		switch labelOf(c) {
		case model.SentimentPositive:
			breakdown.Positive++
		case model.SentimentNegative:
			breakdown.Negative++
		default:
			breakdown.Neutral++
		}
	}

	return model.SentimentData{
		Overall:       overallOf(breakdown),
		Breakdown:     breakdown,
		Percentages:   percentagesOf(breakdown, len(compounds)),
		AverageScore:  round3(total / float64(len(compounds))),
		TotalAnalyzed: len(compounds),
		Keywords:      uc.extractKeywords(texts),
	}
}

// score runs the valence lexicon over a single text. Empty text scores 0.
func (uc *implUseCase) score(text string) float64 {
	if text == "" {
		return 0
	}
	return uc.analyzer.PolarityScores(text).Compound
}

func labelOf(compound float64) string {
	switch {
	case compound >= sentiment.PositiveThreshold:
		return model.SentimentPositive
	case compound <= sentiment.NegativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// overallOf picks the label holding a strict plurality of reviews.
// Any exact tie resolves to neutral.
func overallOf(b model.SentimentBreakdown) string {
	switch {
	case b.Positive > b.Negative && b.Positive > b.Neutral:
		return model.SentimentPositive
	case b.Negative > b.Positive && b.Negative > b.Neutral:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// percentagesOf converts counts to whole percents. Each share rounds to
// the nearest integer, then the largest count absorbs the residual so
// the three values sum to exactly 100.
func percentagesOf(b model.SentimentBreakdown, total int) model.SentimentPercentages {
	if total == 0 {
		return model.SentimentPercentages{}
	}

	pos := int(math.Round(float64(b.Positive) * 100 / float64(total)))
	neg := int(math.Round(float64(b.Negative) * 100 / float64(total)))
	neu := int(math.Round(float64(b.Neutral) * 100 / float64(total)))

	residual := 100 - pos - neg - neu
	if residual != 0 {
		switch {
		case b.Positive >= b.Negative && b.Positive >= b.Neutral:
			pos += residual
		case b.Negative >= b.Positive && b.Negative >= b.Neutral:
			neg += residual
		default:
			neu += residual
		}
	}

	return model.SentimentPercentages{
		Positive: pos,
		Negative: neg,
		Neutral:  neu,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
