package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"percept-srv/internal/model"
	"percept-srv/internal/sentiment"
)

// tokenRe matches alphabetic words of at least MinTokenLength characters.
var tokenRe = regexp.MustCompile(fmt.Sprintf(`\b[a-zA-Z]{%d,}\b`, sentiment.MinTokenLength))

// stopWords are discarded before counting. Includes generic English
// function words plus review-domain filler ("app", "use", "really").
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "shall": {},
	"can": {}, "need": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "what": {}, "which": {}, "who": {}, "whom": {},
	"whose": {}, "where": {}, "when": {}, "why": {}, "how": {}, "all": {},
	"each": {}, "every": {}, "both": {}, "few": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "no": {}, "nor": {},
	"not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {},
	"too": {}, "very": {}, "just": {}, "also": {}, "now": {}, "here": {},
	"there": {}, "then": {}, "once": {}, "if": {}, "my": {}, "your": {},
	"its": {}, "our": {}, "their": {}, "app": {}, "use": {}, "using": {},
	"used": {}, "really": {}, "much": {}, "get": {}, "got": {},
	"one": {}, "two": {}, "first": {}, "new": {}, "even": {},
	"still": {}, "well": {}, "way": {}, "many": {},
}

// extractKeywords counts non-stopword tokens across all texts and ranks
// the ones appearing at least MinKeywordCount times. Each keyword is
// annotated with the sentiment of the texts it occurs in (averaged
// compound score). Ordering is count descending, word ascending, so the
// result is deterministic for a given input sequence.
func (uc *implUseCase) extractKeywords(texts []string) []model.Keyword {
	counts := make(map[string]int)
	scoreSums := make(map[string]float64)
	scoreNs := make(map[string]int)

	for _, text := range texts {
		if text == "" {
			continue
		}

		words := tokenRe.FindAllString(strings.ToLower(text), -1)
		compound := uc.score(text)

		for _, word := range words {
			if _, skip := stopWords[word]; skip {
				continue
			}
			counts[word]++
			scoreSums[word] += compound
			scoreNs[word]++
		}
	}

	keywords := make([]model.Keyword, 0, len(counts))
	for word, count := range counts {
		if count < sentiment.MinKeywordCount {
			continue
		}
		avg := scoreSums[word] / float64(scoreNs[word])
		keywords = append(keywords, model.Keyword{
			Word:      word,
			Count:     count,
			Sentiment: labelOf(avg),
			Score:     round3(avg),
		})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	return keywords
}
