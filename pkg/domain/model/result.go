package model

import (
	"github.com/entrysight/entrysight/pkg/domain/types"
)

// SubcategoryScore holds earned and maximum points for one subcategory
type SubcategoryScore struct {
	SubcategoryID   types.SubcategoryID `json:"subcategoryId"`
	SubcategoryName string              `json:"subcategoryName"`
	Score           float64             `json:"score"`
	MaxScore        float64             `json:"maxScore"`
}

// CategoryScore holds the 0-100 percentage and risk tier for one category
type CategoryScore struct {
	CategoryID        types.CategoryID   `json:"categoryId"`
	CategoryName      string             `json:"categoryName"`
	Score             float64            `json:"score"` // 0-100
	MaxScore          float64            `json:"maxScore"`
	SubcategoryScores []SubcategoryScore `json:"subcategoryScores"`
	RiskTier          types.RiskTier     `json:"riskLevel"`
}

// AssessmentResult is the complete output of one scoring invocation. It is a
// pure value, recomputed on every call and never mutated in place.
type AssessmentResult struct {
	OverallScore         float64         `json:"overallScore"` // 0-100
	OverallRiskTier      types.RiskTier  `json:"overallRiskLevel"`
	CategoryScores       []CategoryScore `json:"categoryScores"`
	CompletionPercentage float64         `json:"completionPercentage"`
	Recommendations      []string        `json:"recommendations"`
	Strengths            []string        `json:"strengths"`
	Concerns             []string        `json:"concerns"`
}
