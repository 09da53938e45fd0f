package usecase

import (
	"reflect"
	"strings"
	"testing"

	"percept-srv/internal/model"
	"percept-srv/internal/sentiment"
	"percept-srv/pkg/log"
)

func newTestUseCase() *implUseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
	return New(l).(*implUseCase)
}

func review(comment string) model.Review {
	return model.Review{
		ID:       "1",
		User:     "tester",
		Comment:  comment,
		Platform: model.PlatformGooglePlay,
	}
}

func TestAnalyze(t *testing.T) {
	uc := newTestUseCase()

	t.Run("empty input yields degenerate neutral result", func(t *testing.T) {
		got := uc.Analyze(nil)

		if got.Overall != model.SentimentNeutral {
			t.Errorf("Overall mismatch: got %s, want %s", got.Overall, model.SentimentNeutral)
		}
		if got.TotalAnalyzed != 0 {
			t.Errorf("TotalAnalyzed mismatch: got %d, want 0", got.TotalAnalyzed)
		}
		if got.AverageScore != 0 {
			t.Errorf("AverageScore mismatch: got %f, want 0", got.AverageScore)
		}
		if got.Breakdown != (model.SentimentBreakdown{}) {
			t.Errorf("Breakdown should be all zero, got %+v", got.Breakdown)
		}
		if got.Percentages != (model.SentimentPercentages{}) {
			t.Errorf("Percentages should be all zero, got %+v", got.Percentages)
		}
		if got.Keywords == nil || len(got.Keywords) != 0 {
			t.Errorf("Keywords should be empty non-nil, got %v", got.Keywords)
		}
	})

	t.Run("empty comments are skipped", func(t *testing.T) {
		got := uc.Analyze([]model.Review{review(""), review("")})

		if got.TotalAnalyzed != 0 {
			t.Errorf("TotalAnalyzed mismatch: got %d, want 0", got.TotalAnalyzed)
		}
		if got.Overall != model.SentimentNeutral {
			t.Errorf("Overall mismatch: got %s, want %s", got.Overall, model.SentimentNeutral)
		}
	})

	t.Run("positive text classifies positive", func(t *testing.T) {
		got := uc.Analyze([]model.Review{review("Absolutely love this app, works great!")})

		if got.Breakdown.Positive != 1 {
			t.Errorf("Breakdown.Positive mismatch: got %d, want 1", got.Breakdown.Positive)
		}
		if got.AverageScore < 0.05 {
			t.Errorf("AverageScore should be >= 0.05, got %f", got.AverageScore)
		}
		if got.Overall != model.SentimentPositive {
			t.Errorf("Overall mismatch: got %s, want %s", got.Overall, model.SentimentPositive)
		}
	})

	t.Run("negative text classifies negative", func(t *testing.T) {
		got := uc.Analyze([]model.Review{review("Terrible, awful experience. I hate it.")})

		if got.Breakdown.Negative != 1 {
			t.Errorf("Breakdown.Negative mismatch: got %d, want 1", got.Breakdown.Negative)
		}
		if got.AverageScore > -0.05 {
			t.Errorf("AverageScore should be <= -0.05, got %f", got.AverageScore)
		}
	})

	t.Run("breakdown sums to total analyzed", func(t *testing.T) {
		got := uc.Analyze([]model.Review{
			review("Absolutely love this app, works great!"),
			review("Terrible, awful experience. I hate it."),
			review("The sky is blue."),
			review("Pretty good overall, happy with it."),
			review(""),
		})

		sum := got.Breakdown.Positive + got.Breakdown.Negative + got.Breakdown.Neutral
		if sum != got.TotalAnalyzed {
			t.Errorf("breakdown sum mismatch: got %d, want %d", sum, got.TotalAnalyzed)
		}
		if got.TotalAnalyzed != 4 {
			t.Errorf("TotalAnalyzed mismatch: got %d, want 4", got.TotalAnalyzed)
		}
	})

	t.Run("percentages sum to exactly 100", func(t *testing.T) {
		got := uc.Analyze([]model.Review{
			review("Absolutely love this app, works great!"),
			review("Terrible, awful experience. I hate it."),
			review("The sky is blue."),
		})

		sum := got.Percentages.Positive + got.Percentages.Negative + got.Percentages.Neutral
		if sum != 100 {
			t.Errorf("percentages sum mismatch: got %d, want 100", sum)
		}
	})

	t.Run("keyword ranking is deterministic", func(t *testing.T) {
		reviews := []model.Review{
			review("Great interface, great performance, smooth experience."),
			review("Smooth interface but performance drops sometimes."),
			review("Performance matters more than interface polish."),
		}

		first := uc.Analyze(reviews)
		second := uc.Analyze(reviews)

		if !reflect.DeepEqual(first.Keywords, second.Keywords) {
			t.Errorf("keyword ordering not deterministic:\nfirst:  %+v\nsecond: %+v", first.Keywords, second.Keywords)
		}
	})
}

func TestOverallOf(t *testing.T) {
	tests := []struct {
		name      string
		breakdown model.SentimentBreakdown
		want      string
	}{
		{"positive plurality", model.SentimentBreakdown{Positive: 3, Negative: 1, Neutral: 1}, model.SentimentPositive},
		{"negative plurality", model.SentimentBreakdown{Positive: 1, Negative: 4, Neutral: 2}, model.SentimentNegative},
		{"neutral plurality", model.SentimentBreakdown{Positive: 1, Negative: 1, Neutral: 3}, model.SentimentNeutral},
		{"positive negative tie", model.SentimentBreakdown{Positive: 2, Negative: 2, Neutral: 1}, model.SentimentNeutral},
		{"three way tie", model.SentimentBreakdown{Positive: 2, Negative: 2, Neutral: 2}, model.SentimentNeutral},
		{"all zero", model.SentimentBreakdown{}, model.SentimentNeutral},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := overallOf(tc.breakdown); got != tc.want {
				t.Errorf("overallOf(%+v) = %s, want %s", tc.breakdown, got, tc.want)
			}
		})
	}
}

func TestPercentagesOf(t *testing.T) {
	tests := []struct {
		name      string
		breakdown model.SentimentBreakdown
		total     int
		want      model.SentimentPercentages
	}{
		{
			"zero total",
			model.SentimentBreakdown{},
			0,
			model.SentimentPercentages{},
		},
		{
			"even split absorbs residual into largest",
			model.SentimentBreakdown{Positive: 1, Negative: 1, Neutral: 1},
			3,
			model.SentimentPercentages{Positive: 34, Negative: 33, Neutral: 33},
		},
		{
			"exact shares untouched",
			model.SentimentBreakdown{Positive: 2, Negative: 1, Neutral: 1},
			4,
			model.SentimentPercentages{Positive: 50, Negative: 25, Neutral: 25},
		},
		{
			"single category",
			model.SentimentBreakdown{Positive: 5},
			5,
			model.SentimentPercentages{Positive: 100},
		},
		{
			"rounding overshoot corrected",
			model.SentimentBreakdown{Positive: 1, Negative: 1, Neutral: 4},
			6,
			model.SentimentPercentages{Positive: 17, Negative: 17, Neutral: 66},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := percentagesOf(tc.breakdown, tc.total)
			if got != tc.want {
				t.Errorf("percentagesOf(%+v, %d) = %+v, want %+v", tc.breakdown, tc.total, got, tc.want)
			}
			if tc.total > 0 && got.Positive+got.Negative+got.Neutral != 100 {
				t.Errorf("percentages do not sum to 100: %+v", got)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	uc := newTestUseCase()

	t.Run("drops stopwords and singletons", func(t *testing.T) {
		got := uc.extractKeywords([]string{
			"the interface is fantastic",
			"fantastic interface design",
			"design feels unique",
		})

		for _, kw := range got {
			if _, stop := stopWords[kw.Word]; stop {
				t.Errorf("stopword %q survived extraction", kw.Word)
			}
			if kw.Count < 2 {
				t.Errorf("keyword %q has count %d, want >= 2", kw.Word, kw.Count)
			}
		}

		words := make(map[string]int)
		for _, kw := range got {
			words[kw.Word] = kw.Count
		}
		if words["interface"] != 2 || words["fantastic"] != 2 || words["design"] != 2 {
			t.Errorf("expected interface/fantastic/design each counted twice, got %v", words)
		}
		if _, ok := words["unique"]; ok {
			t.Error("singleton word 'unique' should not be a keyword")
		}
	})

	t.Run("tokens shorter than the minimum length are ignored", func(t *testing.T) {
		short := strings.Repeat("x", sentiment.MinTokenLength-1)
		long := strings.Repeat("y", sentiment.MinTokenLength)

		got := uc.extractKeywords([]string{
			short + " " + long,
			short + " " + long,
		})

		for _, kw := range got {
			if len(kw.Word) < sentiment.MinTokenLength {
				t.Errorf("keyword %q is shorter than %d characters", kw.Word, sentiment.MinTokenLength)
			}
		}
		if len(got) != 1 || got[0].Word != long {
			t.Errorf("expected only %q as keyword, got %+v", long, got)
		}
	})

	t.Run("orders by count then word", func(t *testing.T) {
		got := uc.extractKeywords([]string{
			"performance performance interface",
			"performance interface",
		})

		if len(got) != 2 {
			t.Fatalf("keyword count mismatch: got %d, want 2", len(got))
		}
		if got[0].Word != "performance" || got[1].Word != "interface" {
			t.Errorf("ordering mismatch: got [%s %s], want [performance interface]", got[0].Word, got[1].Word)
		}
		if got[0].Count != 3 || got[1].Count != 2 {
			t.Errorf("count mismatch: got [%d %d], want [3 2]", got[0].Count, got[1].Count)
		}
	})

	t.Run("short tokens ignored", func(t *testing.T) {
		got := uc.extractKeywords([]string{"ok ok ok go go"})
		if len(got) != 0 {
			t.Errorf("tokens under 3 chars should be ignored, got %v", got)
		}
	})
}
