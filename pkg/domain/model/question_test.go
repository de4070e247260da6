package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

func TestQuestionMaxPoints(t *testing.T) {
	q := model.Question{ID: "q-1", Text: "test", Type: types.QuestionTypeRating, Weight: 0.35}
	gt.Value(t, q.MaxPoints()).Equal(3.5)

	full := model.Question{ID: "q-2", Text: "test", Type: types.QuestionTypeRating, Weight: 1.0}
	gt.Value(t, full.MaxPoints()).Equal(10.0)
}

func TestQuestionValidate(t *testing.T) {
	valid := model.Question{
		ID:     "q-1",
		Text:   "How mature is your compliance program?",
		Type:   types.QuestionTypeRating,
		Weight: 0.5,
	}
	gt.NoError(t, valid.Validate())

	t.Run("weight bounds", func(t *testing.T) {
		q := valid
		q.Weight = 0
		gt.Value(t, q.Validate()).NotNil()
		q.Weight = -0.1
		gt.Value(t, q.Validate()).NotNil()
		q.Weight = 1.01
		gt.Value(t, q.Validate()).NotNil()
		q.Weight = 1.0
		gt.NoError(t, q.Validate())
	})

	t.Run("missing text", func(t *testing.T) {
		q := valid
		q.Text = ""
		gt.Value(t, q.Validate()).NotNil()
	})

	t.Run("select requires options and order", func(t *testing.T) {
		q := model.Question{
			ID:     "q-2",
			Text:   "Pick one",
			Type:   types.QuestionTypeSelect,
			Weight: 0.5,
		}
		gt.Value(t, q.Validate()).NotNil()

		q.Options = []string{"Only one"}
		gt.Value(t, q.Validate()).NotNil()

		q.Options = []string{"A", "B"}
		gt.Value(t, q.Validate()).NotNil() // order missing

		q.Order = types.OrderAscending
		gt.NoError(t, q.Validate())

		q.Options = []string{"A", "A"}
		gt.Value(t, q.Validate()).NotNil() // duplicate option
	})

	t.Run("options rejected for non-select", func(t *testing.T) {
		q := valid
		q.Options = []string{"A", "B"}
		gt.Value(t, q.Validate()).NotNil()
	})
}

func TestSubcategoryValidate(t *testing.T) {
	sub := model.Subcategory{
		ID:   "sub-1",
		Name: "Test Subcategory",
		Questions: []model.Question{
			{ID: "q-1", Text: "test", Type: types.QuestionTypeRating, Weight: 0.4},
			{ID: "q-2", Text: "test", Type: types.QuestionTypeText, Weight: 0.6},
		},
	}
	gt.NoError(t, sub.Validate())
	gt.Value(t, sub.MaxPoints()).Equal(10.0)

	empty := model.Subcategory{ID: "sub-2", Name: "Empty"}
	gt.Value(t, empty.Validate()).NotNil()
}

func TestCatalogValidate(t *testing.T) {
	c := &model.Catalog{Categories: []model.Category{
		{
			ID:   "cat-1",
			Name: "Category One",
			Subcategories: []model.Subcategory{
				{
					ID:   "sub-1",
					Name: "Sub One",
					Questions: []model.Question{
						{ID: "q-1", Text: "test", Type: types.QuestionTypeRating, Weight: 0.5},
					},
				},
			},
		},
	}}
	gt.NoError(t, c.Validate())
	gt.Value(t, c.TotalQuestions()).Equal(1)
	gt.Value(t, c.MaxPoints()).Equal(5.0)

	t.Run("duplicate question IDs across subcategories", func(t *testing.T) {
		dup := &model.Catalog{Categories: []model.Category{
			{
				ID:   "cat-1",
				Name: "Category One",
				Subcategories: []model.Subcategory{
					{ID: "sub-1", Name: "Sub One", Questions: []model.Question{
						{ID: "q-1", Text: "test", Type: types.QuestionTypeRating, Weight: 0.5},
					}},
					{ID: "sub-2", Name: "Sub Two", Questions: []model.Question{
						{ID: "q-1", Text: "test", Type: types.QuestionTypeRating, Weight: 0.5},
					}},
				},
			},
		}}
		gt.Value(t, dup.Validate()).NotNil()
	})

	t.Run("lookup helpers", func(t *testing.T) {
		q, ok := c.Question("q-1")
		gt.Bool(t, ok).True()
		gt.Value(t, q.ID).Equal(types.QuestionID("q-1"))

		_, ok = c.Question("missing")
		gt.Bool(t, ok).False()

		cat, ok := c.Category("cat-1")
		gt.Bool(t, ok).True()
		gt.Value(t, cat.Name).Equal("Category One")

		_, ok = c.Category("missing")
		gt.Bool(t, ok).False()
	})
}
