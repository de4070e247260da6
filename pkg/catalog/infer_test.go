package catalog_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/entrysight/entrysight/pkg/catalog"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

func TestInferFavorable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain positive question", "Does your company hold US patents or trademarks?", true},
		{"violation keyword", "Has your company ever been investigated or sanctioned for export violations?", false},
		{"breach keyword", "Has your company experienced any data breaches in the past 5 years?", false},
		{"dispute keyword", "Has your company ever been involved in IP litigation or disputes?", false},
		{"fine keyword", "Has your company faced environmental violations or fines?", false},
		{"case insensitive", "Any SANCTIONS against you?", false},
		// "controversies" does not contain the singular keyword; the
		// inference misses it, which is why the built-in catalog
		// authors polarity explicitly
		{"plural controversy escapes the keyword scan", "Has your company faced controversies in the past 3 years?", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, catalog.InferFavorable(tt.text)).Equal(tt.want)
		})
	}
}

func TestInferOrder(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		want    types.OptionOrder
	}{
		{"negative first option", []string{"Not familiar", "Somewhat familiar", "Very familiar", "Expert level"}, types.OrderAscending},
		{"never first option", []string{"Never", "Rarely", "Often"}, types.OrderAscending},
		{"percentage range start", []string{"0-25%", "26-50%", "51-75%", "76-100%"}, types.OrderAscending},
		{"superlative last option", []string{"Beginner", "Intermediate", "Excellent"}, types.OrderAscending},
		{"plain list defaults to descending", []string{"Premium pricing", "Market rate", "Competitive discount", "Aggressive undercutting"}, types.OrderDescending},
		{"best-first list", []string{"Mostly positive", "Neutral", "Mixed", "Mostly negative", "No coverage"}, types.OrderDescending},
		{"empty options", nil, types.OrderDescending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, catalog.InferOrder(tt.options)).Equal(tt.want)
		})
	}
}
