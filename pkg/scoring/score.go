package scoring

import (
	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

// QuestionScore returns the points earned by one answer, in
// [0, q.MaxPoints()]. It is pure and total: malformed values degrade to zero
// points instead of failing, so a single bad answer can never abort a full
// assessment.
func QuestionScore(q *model.Question, a model.Answer) float64 {
	if a.Kind() != q.Type {
		return 0
	}

	maxPoints := q.MaxPoints()

	switch q.Type {
	case types.QuestionTypeRating:
		return clampRating(a.Rating()) / model.PointsPerWeight * maxPoints

	case types.QuestionTypeBoolean:
		if a.Bool() == q.Favorable {
			return maxPoints
		}
		return 0

	case types.QuestionTypeSelect:
		return selectScore(q, a.Text()) * maxPoints

	case types.QuestionTypeText:
		if len(a.Text()) > 0 {
			return maxPoints * 0.5
		}
		return 0

	default:
		return 0
	}
}

func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > model.PointsPerWeight {
		return model.PointsPerWeight
	}
	return v
}

// selectScore normalizes the chosen option's position to [0, 1] with the
// favorable end at 1. Unrecognized options earn nothing.
func selectScore(q *model.Question, choice string) float64 {
	index := -1
	for i, opt := range q.Options {
		if opt == choice {
			index = i
			break
		}
	}
	if index < 0 {
		return 0
	}
	if len(q.Options) < 2 {
		return 1
	}

	normalized := float64(index) / float64(len(q.Options)-1)
	if q.Order == types.OrderAscending {
		return normalized
	}
	return 1 - normalized
}
