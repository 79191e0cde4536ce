package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/normalize"
)

func TestStringList_Absent(t *testing.T) {
	_, present := normalize.StringList(nil)
	assert.False(t, present)
}

func TestStringList_Sequences(t *testing.T) {
	got, present := normalize.StringList([]string{"a", "b"})
	require.True(t, present)
	assert.Equal(t, []string{"a", "b"}, got)

	// Pass-through: no trimming, no dedup, empty stays empty.
	got, present = normalize.StringList([]any{" a ", "a", ""})
	require.True(t, present)
	assert.Equal(t, []string{" a ", "a", ""}, got)

	got, present = normalize.StringList([]any{})
	require.True(t, present)
	assert.Equal(t, []string{}, got)

	// Non-string elements are stringified.
	got, present = normalize.StringList([]any{"a", float64(1)})
	require.True(t, present)
	assert.Equal(t, []string{"a", "1"}, got)
}

func TestStringList_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comma separated with spaces", "red, blue ,green", []string{"red", "blue", "green"}},
		{"json array", `["a","b"]`, []string{"a", "b"}},
		{"json array mixed types", `["a", 2]`, []string{"a", "2"}},
		{"malformed json falls back to comma split", "[invalid json", []string{"[invalid json"}},
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"empty elements dropped", ", ,,", []string{}},
		{"single value", "red", []string{"red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present := normalize.StringList(tt.input)
			require.True(t, present)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringList_Scalars(t *testing.T) {
	got, present := normalize.StringList(float64(7.5))
	require.True(t, present)
	assert.Equal(t, []string{"7.5"}, got)

	got, present = normalize.StringList(true)
	require.True(t, present)
	assert.Equal(t, []string{"true"}, got)
}
