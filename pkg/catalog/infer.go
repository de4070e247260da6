package catalog

import (
	"strings"

	"github.com/entrysight/entrysight/pkg/domain/types"
)

// Keyword lists for inferring scoring semantics from question and option
// prose. Inference only runs for externally loaded catalogs that omit the
// explicit polarity/order fields; the built-in catalog authors them directly.
var (
	negativeQuestionKeywords = []string{
		"violation",
		"dispute",
		"investigation",
		"breach",
		"sanction",
		"controversy",
		"fine",
	}

	ascendingFirstKeywords = []string{"not", "never", "0-", "poor", "hostile"}
	ascendingLastKeywords  = []string{"100%", "excellent", "expert"}
)

// InferFavorable guesses whether a "true" answer to a boolean question is
// favorable. Question text signalling an undesirable condition means "false"
// earns full points.
func InferFavorable(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range negativeQuestionKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// InferOrder guesses which end of a select question's option list is
// favorable by scanning the first and last option labels. A negative-looking
// first option or a superlative last option suggests the list ascends toward
// the favorable end; otherwise the first option is assumed favorable.
func InferOrder(options []string) types.OptionOrder {
	if len(options) == 0 {
		return types.OrderDescending
	}

	first := strings.ToLower(options[0])
	last := strings.ToLower(options[len(options)-1])

	for _, kw := range ascendingFirstKeywords {
		if strings.Contains(first, kw) {
			return types.OrderAscending
		}
	}
	for _, kw := range ascendingLastKeywords {
		if strings.Contains(last, kw) {
			return types.OrderAscending
		}
	}

	return types.OrderDescending
}
