package sentiment

// Classification thresholds on the compound score. These cutoffs are a
// compatibility contract with existing consumers and must not change.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Keyword extraction parameters.
const (
	MinTokenLength  = 3
	MinKeywordCount = 2
)
