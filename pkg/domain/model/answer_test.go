package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

func TestDecodeAnswer(t *testing.T) {
	t.Run("rating accepts numbers", func(t *testing.T) {
		a, err := model.DecodeAnswer(types.QuestionTypeRating, 7.5)
		gt.NoError(t, err).Required()
		gt.Value(t, a.Kind()).Equal(types.QuestionTypeRating)
		gt.Value(t, a.Rating()).Equal(7.5)

		a, err = model.DecodeAnswer(types.QuestionTypeRating, 8)
		gt.NoError(t, err).Required()
		gt.Value(t, a.Rating()).Equal(8.0)

		a, err = model.DecodeAnswer(types.QuestionTypeRating, json.Number("6"))
		gt.NoError(t, err).Required()
		gt.Value(t, a.Rating()).Equal(6.0)
	})

	t.Run("rating rejects non-numbers", func(t *testing.T) {
		_, err := model.DecodeAnswer(types.QuestionTypeRating, "seven")
		gt.Value(t, err).NotNil()
		_, err = model.DecodeAnswer(types.QuestionTypeRating, true)
		gt.Value(t, err).NotNil()
	})

	t.Run("boolean", func(t *testing.T) {
		a, err := model.DecodeAnswer(types.QuestionTypeBoolean, true)
		gt.NoError(t, err).Required()
		gt.Bool(t, a.Bool()).True()

		_, err = model.DecodeAnswer(types.QuestionTypeBoolean, "yes")
		gt.Value(t, err).NotNil()
	})

	t.Run("select and text take strings", func(t *testing.T) {
		a, err := model.DecodeAnswer(types.QuestionTypeSelect, "Not familiar")
		gt.NoError(t, err).Required()
		gt.Value(t, a.Text()).Equal("Not familiar")

		a, err = model.DecodeAnswer(types.QuestionTypeText, "Japan")
		gt.NoError(t, err).Required()
		gt.Value(t, a.Text()).Equal("Japan")

		_, err = model.DecodeAnswer(types.QuestionTypeSelect, 2)
		gt.Value(t, err).NotNil()
	})

	t.Run("null rejected", func(t *testing.T) {
		_, err := model.DecodeAnswer(types.QuestionTypeText, nil)
		gt.Value(t, err).NotNil()
	})
}

func TestDecodeResponses(t *testing.T) {
	c := &model.Catalog{Categories: []model.Category{
		{
			ID:   "cat-1",
			Name: "Category One",
			Subcategories: []model.Subcategory{
				{ID: "sub-1", Name: "Sub One", Questions: []model.Question{
					{ID: "q-rating", Text: "rate", Type: types.QuestionTypeRating, Weight: 0.5},
					{ID: "q-bool", Text: "confirm", Type: types.QuestionTypeBoolean, Weight: 0.5, Favorable: true},
				}},
			},
		},
	}}

	t.Run("unknown keys are ignored", func(t *testing.T) {
		responses, err := c.DecodeResponses(map[string]any{
			"q-rating": 5.0,
			"q-ghost":  "whatever",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, len(responses)).Equal(1)
	})

	t.Run("null placeholders are skipped", func(t *testing.T) {
		responses, err := c.DecodeResponses(map[string]any{
			"q-rating": nil,
			"q-bool":   true,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, len(responses)).Equal(1)
		_, ok := responses["q-rating"]
		gt.Bool(t, ok).False()
	})

	t.Run("shape mismatch is rejected", func(t *testing.T) {
		_, err := c.DecodeResponses(map[string]any{"q-bool": "yes"})
		gt.Value(t, err).NotNil()
	})
}

func TestAnswerMarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		answer model.Answer
		want   string
	}{
		{"rating", model.NewRatingAnswer(7), "7"},
		{"boolean", model.NewBoolAnswer(false), "false"},
		{"choice", model.NewChoiceAnswer("US only"), `"US only"`},
		{"text", model.NewTextAnswer("Germany"), `"Germany"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.answer)
			gt.NoError(t, err).Required()
			gt.Value(t, string(data)).Equal(tt.want)
		})
	}
}

func TestAnswerRender(t *testing.T) {
	gt.Value(t, model.NewRatingAnswer(7.5).Render()).Equal("7.5")
	gt.Value(t, model.NewBoolAnswer(true).Render()).Equal("Yes")
	gt.Value(t, model.NewBoolAnswer(false).Render()).Equal("No")
	gt.Value(t, model.NewChoiceAnswer("Neutral").Render()).Equal("Neutral")
}
