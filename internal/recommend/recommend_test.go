package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/recommend"
)

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestRank_TagMatchesDominate(t *testing.T) {
	subject := models.Product{ID: "s", Tags: []string{"a", "b"}, Category: "X", Price: 100}
	candidates := []models.Product{
		{ID: "c3", Tags: []string{}, Category: "Y", Price: 100},
		{ID: "c2", Tags: []string{"a"}, Category: "X", Price: 100},
		{ID: "c1", Tags: []string{"a", "b"}, Category: "X", Price: 90},
	}

	got := recommend.Rank(subject, candidates, 5)
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids(got))
}

func TestRank_CategoryThenPrice(t *testing.T) {
	// With no shared tags, ranking degrades to category then price.
	subject := models.Product{ID: "s", Category: "X", Price: 100}
	candidates := []models.Product{
		{ID: "far", Category: "Y", Price: 500},
		{ID: "near", Category: "Y", Price: 110},
		{ID: "same-cat", Category: "X", Price: 400},
	}

	got := recommend.Rank(subject, candidates, 5)
	assert.Equal(t, []string{"same-cat", "near", "far"}, ids(got))
}

func TestRank_CategoryIsCaseSensitive(t *testing.T) {
	subject := models.Product{ID: "s", Category: "Shoes", Price: 100}
	candidates := []models.Product{
		{ID: "lower", Category: "shoes", Price: 100},
		{ID: "exact", Category: "Shoes", Price: 100},
	}

	got := recommend.Rank(subject, candidates, 5)
	assert.Equal(t, []string{"exact", "lower"}, ids(got))
}

func TestRank_DuplicateTagsDoNotInflate(t *testing.T) {
	subject := models.Product{ID: "s", Tags: []string{"a", "a", "b"}, Category: "X", Price: 100}
	candidates := []models.Product{
		{ID: "dup", Tags: []string{"a", "a", "a"}, Category: "X", Price: 100},
		{ID: "two", Tags: []string{"a", "b"}, Category: "X", Price: 100},
	}

	// "dup" overlaps on one distinct tag, "two" on two.
	got := recommend.Rank(subject, candidates, 5)
	assert.Equal(t, []string{"two", "dup"}, ids(got))
}

func TestRank_ExcludesSubject(t *testing.T) {
	subject := models.Product{ID: "s", Category: "X", Price: 100}
	candidates := []models.Product{
		{ID: "s", Category: "X", Price: 100},
		{ID: "other", Category: "X", Price: 100},
	}

	got := recommend.Rank(subject, candidates, 5)
	assert.Equal(t, []string{"other"}, ids(got))
}

func TestRank_TruncatesToLimit(t *testing.T) {
	subject := models.Product{ID: "s", Category: "X", Price: 100}
	var candidates []models.Product
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		candidates = append(candidates, models.Product{ID: id, Category: "X", Price: 100})
	}

	got := recommend.Rank(subject, candidates, 5)
	require.Len(t, got, 5)

	// Fewer candidates than the limit: all returned, no padding.
	got = recommend.Rank(subject, candidates[:2], 5)
	assert.Len(t, got, 2)
}

func TestRank_StableTies(t *testing.T) {
	subject := models.Product{ID: "s", Tags: []string{"a"}, Category: "X", Price: 100}
	candidates := []models.Product{
		{ID: "first", Tags: []string{"a"}, Category: "X", Price: 100},
		{ID: "second", Tags: []string{"a"}, Category: "X", Price: 100},
		{ID: "third", Tags: []string{"a"}, Category: "X", Price: 100},
	}

	// Fully tied candidates keep the store's iteration order.
	got := recommend.Rank(subject, candidates, 5)
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestRank_Deterministic(t *testing.T) {
	subject := models.Product{ID: "s", Tags: []string{"a", "b"}, Category: "X", Price: 50}
	candidates := []models.Product{
		{ID: "1", Tags: []string{"b"}, Category: "Y", Price: 55},
		{ID: "2", Tags: []string{"a", "b"}, Category: "X", Price: 80},
		{ID: "3", Tags: []string{}, Category: "X", Price: 50},
		{ID: "4", Tags: []string{"a"}, Category: "X", Price: 50},
	}

	first := recommend.Rank(subject, candidates, 5)
	second := recommend.Rank(subject, candidates, 5)
	assert.Equal(t, first, second)
}
