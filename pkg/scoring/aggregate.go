package scoring

import (
	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

// Evaluate walks the catalog once, scores every question against the
// responses, and builds the subcategory, category and overall rollup. It is
// a pure function: the catalog and responses are never mutated and the
// returned result is a fresh value on every call.
func Evaluate(c *model.Catalog, responses model.Responses) *model.AssessmentResult {
	categoryScores := make([]model.CategoryScore, 0, len(c.Categories))

	var totalEarned, totalMax float64
	var answeredCount, totalCount int

	for i := range c.Categories {
		cat := &c.Categories[i]

		subcategoryScores := make([]model.SubcategoryScore, 0, len(cat.Subcategories))
		var categoryEarned, categoryMax float64

		for j := range cat.Subcategories {
			sub := &cat.Subcategories[j]

			var subEarned, subMax float64
			for k := range sub.Questions {
				q := &sub.Questions[k]
				totalCount++

				maxPoints := q.MaxPoints()
				subMax += maxPoints
				categoryMax += maxPoints
				totalMax += maxPoints

				answer, ok := responses[q.ID]
				if !ok {
					continue
				}
				answeredCount++

				earned := QuestionScore(q, answer)
				subEarned += earned
				categoryEarned += earned
				totalEarned += earned
			}

			subcategoryScores = append(subcategoryScores, model.SubcategoryScore{
				SubcategoryID:   sub.ID,
				SubcategoryName: sub.Name,
				Score:           subEarned,
				MaxScore:        subMax,
			})
		}

		categoryPercentage := percentage(categoryEarned, categoryMax)
		categoryScores = append(categoryScores, model.CategoryScore{
			CategoryID:        cat.ID,
			CategoryName:      cat.Name,
			Score:             categoryPercentage,
			MaxScore:          100,
			SubcategoryScores: subcategoryScores,
			RiskTier:          types.TierOf(categoryPercentage),
		})
	}

	overall := percentage(totalEarned, totalMax)

	var completion float64
	if totalCount > 0 {
		completion = float64(answeredCount) / float64(totalCount) * 100
	}

	result := &model.AssessmentResult{
		OverallScore:         overall,
		OverallRiskTier:      types.TierOf(overall),
		CategoryScores:       categoryScores,
		CompletionPercentage: completion,
	}
	result.Recommendations, result.Strengths, result.Concerns = generateInsights(categoryScores, overall)

	return result
}

// percentage converts earned/max into a 0-100 score, guarding against a
// zero maximum
func percentage(earned, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return earned / max * 100
}
