package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CategoryID represents a unique identifier for a risk category
type CategoryID string

// Validate checks if the CategoryID is valid
func (c CategoryID) Validate() error {
	if c == "" {
		return goerr.New("category ID cannot be empty")
	}
	if !idPattern.MatchString(string(c)) {
		return goerr.New("category ID must be lowercase alphanumeric with hyphens", goerr.V("id", c))
	}
	return nil
}

// String returns the string representation of CategoryID
func (c CategoryID) String() string {
	return string(c)
}

// SubcategoryID represents a unique identifier for a subcategory within a category
type SubcategoryID string

// Validate checks if the SubcategoryID is valid
func (s SubcategoryID) Validate() error {
	if s == "" {
		return goerr.New("subcategory ID cannot be empty")
	}
	if !idPattern.MatchString(string(s)) {
		return goerr.New("subcategory ID must be lowercase alphanumeric with hyphens", goerr.V("id", s))
	}
	return nil
}

// String returns the string representation of SubcategoryID
func (s SubcategoryID) String() string {
	return string(s)
}

// QuestionID represents a unique identifier for a question
type QuestionID string

// Validate checks if the QuestionID is valid
func (q QuestionID) Validate() error {
	if q == "" {
		return goerr.New("question ID cannot be empty")
	}
	if !idPattern.MatchString(string(q)) {
		return goerr.New("question ID must be lowercase alphanumeric with hyphens", goerr.V("id", q))
	}
	return nil
}

// String returns the string representation of QuestionID
func (q QuestionID) String() string {
	return string(q)
}
