package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/normalize"
)

func TestParsePrice_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"plain integer string", "42", 42},
		{"padded string", "  42 ", 42},
		{"plain float input", float64(42.5), 42.5},
		{"currency symbol and grouping", "$1,234.50", 1234.50},
		{"dot grouping comma decimal", "1.234,56", 1234.56},
		{"comma grouping dot decimal", "1,234.56", 1234.56},
		{"single comma is decimal", "100,00", 100},
		// Surprising but specified: a lone comma is always a decimal
		// point, so "twelve hundred" comes out as 1.2.
		{"single comma no dot", "1,200", 1.2},
		{"multiple commas are grouping", "1,2,300", 12300},
		{"mixed separators rightmost wins", "1.2.3,45", 123.45},
		{"extra dots keep the first", "12.34.56", 12.35},
		{"rounds half up on decimal digits", "19.995", 20},
		{"rounds half up on float input", float64(19.995), 20},
		{"rounds down below half", "19.9949", 19.99},
		{"negative passes through", "-5", -5},
		{"negative rounds away from zero", "-19.995", -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize.ParsePrice(tt.input)
			require.NoError(t, err)
			require.True(t, got.Present)
			assert.Equal(t, tt.want, got.Amount)
		})
	}
}

func TestParsePrice_Absent(t *testing.T) {
	for _, input := range []any{nil, "", "   "} {
		got, err := normalize.ParsePrice(input)
		require.NoError(t, err)
		assert.False(t, got.Present, "input %#v should be absent", input)
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, input := range []any{"abc", "$", "5-5", "-"} {
		_, err := normalize.ParsePrice(input)
		assert.ErrorIs(t, err, normalize.ErrInvalidPrice, "input %#v", input)
	}
}
