package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// QuestionType represents the answer format of a question
type QuestionType string

const (
	// QuestionTypeRating is a numeric rating from 0 to 10
	QuestionTypeRating QuestionType = "rating"
	// QuestionTypeBoolean is a yes/no question
	QuestionTypeBoolean QuestionType = "boolean"
	// QuestionTypeSelect is a single choice from a fixed option list
	QuestionTypeSelect QuestionType = "select"
	// QuestionTypeText is a free-form text answer
	QuestionTypeText QuestionType = "text"
)

// Validate checks if the QuestionType is a known type
func (t QuestionType) Validate() error {
	switch t {
	case QuestionTypeRating, QuestionTypeBoolean, QuestionTypeSelect, QuestionTypeText:
		return nil
	default:
		return goerr.New("unknown question type", goerr.V("type", t))
	}
}

// String returns the string representation of QuestionType
func (t QuestionType) String() string {
	return string(t)
}
