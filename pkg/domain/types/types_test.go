package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/entrysight/entrysight/pkg/domain/types"
)

func TestIDValidation(t *testing.T) {
	t.Run("valid IDs", func(t *testing.T) {
		gt.NoError(t, types.CategoryID("data-security").Validate())
		gt.NoError(t, types.SubcategoryID("cfius-review").Validate())
		gt.NoError(t, types.QuestionID("cfius-1").Validate())
	})

	t.Run("empty IDs are rejected", func(t *testing.T) {
		gt.Value(t, types.CategoryID("").Validate()).NotNil()
		gt.Value(t, types.SubcategoryID("").Validate()).NotNil()
		gt.Value(t, types.QuestionID("").Validate()).NotNil()
	})

	t.Run("invalid formats are rejected", func(t *testing.T) {
		gt.Value(t, types.CategoryID("Data-Security").Validate()).NotNil()
		gt.Value(t, types.SubcategoryID("cfius_review").Validate()).NotNil()
		gt.Value(t, types.QuestionID("-cfius").Validate()).NotNil()
	})
}

func TestQuestionTypeValidate(t *testing.T) {
	gt.NoError(t, types.QuestionTypeRating.Validate())
	gt.NoError(t, types.QuestionTypeBoolean.Validate())
	gt.NoError(t, types.QuestionTypeSelect.Validate())
	gt.NoError(t, types.QuestionTypeText.Validate())
	gt.Value(t, types.QuestionType("slider").Validate()).NotNil()
}

func TestOptionOrderValidate(t *testing.T) {
	gt.NoError(t, types.OrderAscending.Validate())
	gt.NoError(t, types.OrderDescending.Validate())
	gt.Value(t, types.OptionOrder("random").Validate()).NotNil()
}
