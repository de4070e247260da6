package model

import (
	"encoding/json"
	"strconv"

	"github.com/entrysight/entrysight/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Answer is a tagged variant holding one response value. The kind
// discriminator matches the owning question's declared type, so the scorer's
// per-type branches are exhaustive.
type Answer struct {
	kind    types.QuestionType
	rating  float64
	boolean bool
	text    string // select choice or free text
}

// NewRatingAnswer creates a rating answer. The value is kept as given;
// clamping to [0, 10] happens at scoring time.
func NewRatingAnswer(v float64) Answer {
	return Answer{kind: types.QuestionTypeRating, rating: v}
}

// NewBoolAnswer creates a boolean answer
func NewBoolAnswer(v bool) Answer {
	return Answer{kind: types.QuestionTypeBoolean, boolean: v}
}

// NewChoiceAnswer creates a single-select answer holding an option label
func NewChoiceAnswer(option string) Answer {
	return Answer{kind: types.QuestionTypeSelect, text: option}
}

// NewTextAnswer creates a free-text answer
func NewTextAnswer(text string) Answer {
	return Answer{kind: types.QuestionTypeText, text: text}
}

// Kind returns the answer's type discriminator
func (a Answer) Kind() types.QuestionType {
	return a.kind
}

// Rating returns the numeric value of a rating answer
func (a Answer) Rating() float64 {
	return a.rating
}

// Bool returns the value of a boolean answer
func (a Answer) Bool() bool {
	return a.boolean
}

// Text returns the choice label or free text of a select/text answer
func (a Answer) Text() string {
	return a.text
}

// MarshalJSON encodes the answer as its bare value, matching the wire shape
// of the original response map (number, boolean or string)
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case types.QuestionTypeRating:
		return json.Marshal(a.rating)
	case types.QuestionTypeBoolean:
		return json.Marshal(a.boolean)
	default:
		return json.Marshal(a.text)
	}
}

// Render returns a human readable rendering of the answer for reports
func (a Answer) Render() string {
	switch a.kind {
	case types.QuestionTypeRating:
		return strconv.FormatFloat(a.rating, 'f', -1, 64)
	case types.QuestionTypeBoolean:
		if a.boolean {
			return "Yes"
		}
		return "No"
	default:
		return a.text
	}
}

// Responses maps question IDs to answers. Unanswered questions are simply
// absent from the map.
type Responses map[types.QuestionID]Answer

// DecodeAnswer converts a raw JSON-decoded value into a typed Answer for a
// question of the given type. Shape mismatches are rejected here so that
// everything past the ingestion boundary is statically typed.
func DecodeAnswer(qt types.QuestionType, raw any) (Answer, error) {
	if raw == nil {
		return Answer{}, goerr.New("answer value is null")
	}

	switch qt {
	case types.QuestionTypeRating:
		switch v := raw.(type) {
		case float64:
			return NewRatingAnswer(v), nil
		case int:
			return NewRatingAnswer(float64(v)), nil
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return Answer{}, goerr.Wrap(err, "rating answer is not numeric", goerr.V("value", v))
			}
			return NewRatingAnswer(f), nil
		default:
			return Answer{}, goerr.New("rating answer must be a number", goerr.V("value", raw))
		}

	case types.QuestionTypeBoolean:
		v, ok := raw.(bool)
		if !ok {
			return Answer{}, goerr.New("boolean answer must be true or false", goerr.V("value", raw))
		}
		return NewBoolAnswer(v), nil

	case types.QuestionTypeSelect:
		v, ok := raw.(string)
		if !ok {
			return Answer{}, goerr.New("select answer must be an option label", goerr.V("value", raw))
		}
		return NewChoiceAnswer(v), nil

	case types.QuestionTypeText:
		v, ok := raw.(string)
		if !ok {
			return Answer{}, goerr.New("text answer must be a string", goerr.V("value", raw))
		}
		return NewTextAnswer(v), nil

	default:
		return Answer{}, goerr.New("unknown question type", goerr.V("type", qt))
	}
}

// DecodeResponses converts a raw question-id to value map into typed
// Responses, checking each value against the question's declared type. Keys
// that match no catalog question are ignored.
func (c *Catalog) DecodeResponses(raw map[string]any) (Responses, error) {
	responses := make(Responses, len(raw))
	for key, value := range raw {
		q, ok := c.Question(types.QuestionID(key))
		if !ok {
			continue
		}
		if value == nil {
			// Tolerate null placeholders in loosely produced input
			continue
		}
		answer, err := DecodeAnswer(q.Type, value)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid answer", goerr.V("question_id", key))
		}
		responses[q.ID] = answer
	}
	return responses, nil
}
