package scoring

import (
	"fmt"
	"math"

	"github.com/entrysight/entrysight/pkg/domain/model"
)

// Score bands for insight generation
const (
	strengthThreshold = 75.0
	concernThreshold  = 50.0
	weakestThreshold  = 60.0
)

// generateInsights derives recommendations, strengths and concerns from the
// per-category scores. Category-level entries are emitted in catalog order;
// the overall-band and weakest-category recommendations follow them.
func generateInsights(categoryScores []model.CategoryScore, overallScore float64) (recommendations, strengths, concerns []string) {
	recommendations = []string{}
	strengths = []string{}
	concerns = []string{}

	for _, cat := range categoryScores {
		switch {
		case cat.Score >= strengthThreshold:
			strengths = append(strengths,
				fmt.Sprintf("Strong performance in %s (%d%%)", cat.CategoryName, roundPct(cat.Score)))
		case cat.Score < concernThreshold:
			concerns = append(concerns,
				fmt.Sprintf("%s shows significant risk (%d%%)", cat.CategoryName, roundPct(cat.Score)))
			recommendations = append(recommendations,
				fmt.Sprintf("Prioritize improvements in %s before market entry", cat.CategoryName))
		}
	}

	switch {
	case overallScore >= strengthThreshold:
		recommendations = append(recommendations,
			"Your company shows strong readiness for US market entry",
			"Consider engaging with US legal counsel to finalize compliance strategies",
			"Prepare detailed documentation for potential regulatory inquiries",
		)
	case overallScore >= concernThreshold:
		recommendations = append(recommendations,
			"Moderate risk profile - address key concerns before proceeding",
			"Develop a comprehensive risk mitigation plan for identified weak areas",
			"Consider phased market entry to manage risks effectively",
		)
	default:
		recommendations = append(recommendations,
			"Significant risks identified - substantial preparation needed before US market entry",
			"Engage with specialized consultants to address critical risk categories",
			"Consider alternative market entry strategies or partnerships to mitigate risks",
		)
	}

	if weakest, ok := weakestCategory(categoryScores); ok && weakest.Score < weakestThreshold {
		recommendations = append(recommendations,
			fmt.Sprintf("Focus immediate attention on %s - your weakest risk category", weakest.CategoryName))
	}

	return recommendations, strengths, concerns
}

// weakestCategory returns the category with the minimum score, keeping the
// earliest one on ties
func weakestCategory(categoryScores []model.CategoryScore) (model.CategoryScore, bool) {
	if len(categoryScores) == 0 {
		return model.CategoryScore{}, false
	}
	weakest := categoryScores[0]
	for _, cat := range categoryScores[1:] {
		if cat.Score < weakest.Score {
			weakest = cat
		}
	}
	return weakest, true
}

func roundPct(score float64) int {
	return int(math.Round(score))
}
