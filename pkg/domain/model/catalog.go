package model

import (
	"github.com/entrysight/entrysight/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Catalog is the full ordered set of assessment categories. It is built once
// at startup and never mutated afterwards, so concurrent scoring calls can
// share it safely.
type Catalog struct {
	Categories []Category
}

// Validate checks catalog integrity: well-formed entries and globally unique
// category, subcategory and question IDs
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return goerr.New("catalog has no categories")
	}

	categoryIDs := make(map[types.CategoryID]bool)
	subcategoryIDs := make(map[types.SubcategoryID]bool)
	questionIDs := make(map[types.QuestionID]bool)

	for i := range c.Categories {
		cat := &c.Categories[i]
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid category")
		}
		if categoryIDs[cat.ID] {
			return goerr.New("duplicate category ID", goerr.V("id", cat.ID))
		}
		categoryIDs[cat.ID] = true

		for j := range cat.Subcategories {
			sub := &cat.Subcategories[j]
			if subcategoryIDs[sub.ID] {
				return goerr.New("duplicate subcategory ID", goerr.V("id", sub.ID))
			}
			subcategoryIDs[sub.ID] = true

			for k := range sub.Questions {
				q := &sub.Questions[k]
				if questionIDs[q.ID] {
					return goerr.New("duplicate question ID", goerr.V("id", q.ID))
				}
				questionIDs[q.ID] = true
			}
		}
	}

	return nil
}

// TotalQuestions returns the number of questions across all categories
func (c *Catalog) TotalQuestions() int {
	var n int
	for i := range c.Categories {
		for j := range c.Categories[i].Subcategories {
			n += len(c.Categories[i].Subcategories[j].Questions)
		}
	}
	return n
}

// MaxPoints returns the maximum achievable points across all questions
func (c *Catalog) MaxPoints() float64 {
	var total float64
	for i := range c.Categories {
		for j := range c.Categories[i].Subcategories {
			total += c.Categories[i].Subcategories[j].MaxPoints()
		}
	}
	return total
}

// Question looks up a question definition by ID
func (c *Catalog) Question(id types.QuestionID) (*Question, bool) {
	for i := range c.Categories {
		for j := range c.Categories[i].Subcategories {
			sub := &c.Categories[i].Subcategories[j]
			for k := range sub.Questions {
				if sub.Questions[k].ID == id {
					return &sub.Questions[k], true
				}
			}
		}
	}
	return nil, false
}

// Category looks up a category by ID
func (c *Catalog) Category(id types.CategoryID) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i], true
		}
	}
	return nil, false
}
