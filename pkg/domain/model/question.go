package model

import (
	"github.com/entrysight/entrysight/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PointsPerWeight is the maximum point contribution of a question with
// weight 1.0. A question's maximum score is PointsPerWeight * Weight.
const PointsPerWeight = 10.0

// Question is an immutable definition of a single assessment question
type Question struct {
	ID       types.QuestionID
	Text     string
	Type     types.QuestionType
	Options  []string // select questions only
	Weight   float64  // in (0, 1]
	Required bool

	// Favorable is the boolean answer that earns full points. Only
	// meaningful for boolean questions.
	Favorable bool

	// Order declares which end of Options is favorable. Only meaningful
	// for select questions.
	Order types.OptionOrder
}

// MaxPoints returns the maximum point contribution of the question
func (q *Question) MaxPoints() float64 {
	return PointsPerWeight * q.Weight
}

// Validate checks if the Question definition is well-formed
func (q *Question) Validate() error {
	if err := q.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid question ID")
	}
	if q.Text == "" {
		return goerr.New("question text is required", goerr.V("id", q.ID))
	}
	if err := q.Type.Validate(); err != nil {
		return goerr.Wrap(err, "invalid question type", goerr.V("id", q.ID))
	}
	if q.Weight <= 0 || q.Weight > 1 {
		return goerr.New("question weight must be in (0, 1]", goerr.V("id", q.ID), goerr.V("weight", q.Weight))
	}

	switch q.Type {
	case types.QuestionTypeSelect:
		if len(q.Options) < 2 {
			return goerr.New("select question requires at least two options", goerr.V("id", q.ID))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt == "" {
				return goerr.New("select option cannot be empty", goerr.V("id", q.ID))
			}
			if seen[opt] {
				return goerr.New("duplicate select option", goerr.V("id", q.ID), goerr.V("option", opt))
			}
			seen[opt] = true
		}
		if err := q.Order.Validate(); err != nil {
			return goerr.Wrap(err, "invalid option order", goerr.V("id", q.ID))
		}
	default:
		if len(q.Options) > 0 {
			return goerr.New("options are only allowed for select questions", goerr.V("id", q.ID), goerr.V("type", q.Type))
		}
	}

	return nil
}

// Subcategory groups related questions within a category
type Subcategory struct {
	ID          types.SubcategoryID
	Name        string
	Description string
	Questions   []Question
}

// MaxPoints returns the sum of the subcategory's question maxima
func (s *Subcategory) MaxPoints() float64 {
	var total float64
	for i := range s.Questions {
		total += s.Questions[i].MaxPoints()
	}
	return total
}

// Validate checks if the Subcategory is well-formed
func (s *Subcategory) Validate() error {
	if err := s.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid subcategory ID")
	}
	if s.Name == "" {
		return goerr.New("subcategory name is required", goerr.V("id", s.ID))
	}
	if len(s.Questions) == 0 {
		return goerr.New("subcategory has no questions", goerr.V("id", s.ID))
	}
	for i := range s.Questions {
		if err := s.Questions[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid question", goerr.V("subcategory", s.ID))
		}
	}
	return nil
}

// Category is a top-level risk dimension
type Category struct {
	ID            types.CategoryID
	Name          string
	Description   string
	Subcategories []Subcategory
}

// Validate checks if the Category is well-formed
func (c *Category) Validate() error {
	if err := c.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid category ID")
	}
	if c.Name == "" {
		return goerr.New("category name is required", goerr.V("id", c.ID))
	}
	if len(c.Subcategories) == 0 {
		return goerr.New("category has no subcategories", goerr.V("id", c.ID))
	}
	for i := range c.Subcategories {
		if err := c.Subcategories[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid subcategory", goerr.V("category", c.ID))
		}
	}
	return nil
}
