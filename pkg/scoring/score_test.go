package scoring_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
	"github.com/entrysight/entrysight/pkg/scoring"
)

func ratingQuestion(weight float64) *model.Question {
	return &model.Question{
		ID:     "r-1",
		Text:   "Rate your compliance maturity",
		Type:   types.QuestionTypeRating,
		Weight: weight,
	}
}

func boolQuestion(favorable bool) *model.Question {
	return &model.Question{
		ID:        "b-1",
		Text:      "Do you maintain a compliance program?",
		Type:      types.QuestionTypeBoolean,
		Weight:    1.0,
		Favorable: favorable,
	}
}

func selectQuestion(order types.OptionOrder, options ...string) *model.Question {
	return &model.Question{
		ID:      "s-1",
		Text:    "How mature is your program?",
		Type:    types.QuestionTypeSelect,
		Options: options,
		Weight:  1.0,
		Order:   order,
	}
}

func textQuestion(weight float64) *model.Question {
	return &model.Question{
		ID:     "t-1",
		Text:   "Describe your market entry plan",
		Type:   types.QuestionTypeText,
		Weight: weight,
	}
}

func TestQuestionScoreRating(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		value  float64
		want   float64
	}{
		{"max value full weight", 1.0, 10, 10},
		{"min value", 1.0, 0, 0},
		{"midpoint", 1.0, 5, 5},
		{"weight scales linearly", 0.8, 5, 4},
		{"fractional weight", 0.5, 10, 5},
		{"above range clamps to max", 1.0, 15, 10},
		{"below range clamps to zero", 1.0, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ratingQuestion(tt.weight)
			got := scoring.QuestionScore(q, model.NewRatingAnswer(tt.value))
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestQuestionScoreBoolean(t *testing.T) {
	t.Run("favorable yes earns full points", func(t *testing.T) {
		q := boolQuestion(true)
		gt.Value(t, scoring.QuestionScore(q, model.NewBoolAnswer(true))).Equal(q.MaxPoints())
		gt.Value(t, scoring.QuestionScore(q, model.NewBoolAnswer(false))).Equal(0.0)
	})

	t.Run("unfavorable question inverts polarity", func(t *testing.T) {
		q := boolQuestion(false)
		gt.Value(t, scoring.QuestionScore(q, model.NewBoolAnswer(false))).Equal(q.MaxPoints())
		gt.Value(t, scoring.QuestionScore(q, model.NewBoolAnswer(true))).Equal(0.0)
	})
}

func TestQuestionScoreSelect(t *testing.T) {
	options := []string{"None", "Basic", "Standard", "Comprehensive"}

	t.Run("ascending rewards last option", func(t *testing.T) {
		q := selectQuestion(types.OrderAscending, options...)
		gt.Value(t, scoring.QuestionScore(q, model.NewChoiceAnswer("Comprehensive"))).Equal(10.0)
		gt.Value(t, scoring.QuestionScore(q, model.NewChoiceAnswer("None"))).Equal(0.0)
		// index 1 of 3 intervals
		gt.Number(t, scoring.QuestionScore(q, model.NewChoiceAnswer("Basic"))).
			Greater(3.3).Less(3.4)
	})

	t.Run("descending rewards first option", func(t *testing.T) {
		q := selectQuestion(types.OrderDescending, options...)
		gt.Value(t, scoring.QuestionScore(q, model.NewChoiceAnswer("None"))).Equal(10.0)
		gt.Value(t, scoring.QuestionScore(q, model.NewChoiceAnswer("Comprehensive"))).Equal(0.0)
	})

	t.Run("unknown option earns nothing", func(t *testing.T) {
		q := selectQuestion(types.OrderAscending, options...)
		gt.Value(t, scoring.QuestionScore(q, model.NewChoiceAnswer("Deluxe"))).Equal(0.0)
	})

	t.Run("single option is always full credit", func(t *testing.T) {
		q := selectQuestion(types.OrderAscending, "Only")
		gt.Value(t, scoring.QuestionScore(q, model.NewChoiceAnswer("Only"))).Equal(10.0)
	})
}

func TestQuestionScoreText(t *testing.T) {
	q := textQuestion(1.0)

	t.Run("any content earns half credit", func(t *testing.T) {
		gt.Value(t, scoring.QuestionScore(q, model.NewTextAnswer("We plan to open a Delaware entity."))).Equal(5.0)
	})

	t.Run("empty text earns nothing", func(t *testing.T) {
		gt.Value(t, scoring.QuestionScore(q, model.NewTextAnswer(""))).Equal(0.0)
	})

	t.Run("weight scales the ceiling", func(t *testing.T) {
		heavy := textQuestion(0.6)
		gt.Value(t, scoring.QuestionScore(heavy, model.NewTextAnswer("x"))).Equal(3.0)
	})
}

func TestQuestionScoreKindMismatch(t *testing.T) {
	tests := []struct {
		name     string
		question *model.Question
		answer   model.Answer
	}{
		{"bool answer to rating question", ratingQuestion(1.0), model.NewBoolAnswer(true)},
		{"rating answer to boolean question", boolQuestion(true), model.NewRatingAnswer(10)},
		{"text answer to select question", selectQuestion(types.OrderAscending, "a", "b"), model.NewTextAnswer("a")},
		{"choice answer to text question", textQuestion(1.0), model.NewChoiceAnswer("a")},
		{"zero answer", ratingQuestion(1.0), model.Answer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, scoring.QuestionScore(tt.question, tt.answer)).Equal(0.0)
		})
	}
}
