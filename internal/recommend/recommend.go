// Package recommend ranks catalog products by similarity to a subject
// product. The metric is deliberately cheap and explainable: shared tags
// first, then same category, then closest price. A full scan per request
// is fine for a small catalog and means results always reflect the
// current data.
package recommend

import (
	"math"
	"sort"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/models"
)

// DefaultLimit is the number of recommendations served by the API.
const DefaultLimit = 5

type scoredProduct struct {
	product      models.Product
	tagMatches   int
	sameCategory int
	priceDiff    float64
}

// Rank orders candidates by similarity to subject and truncates the
// result to limit (no truncation when limit <= 0). The subject itself is
// excluded. The sort is stable, so ties keep the store's natural
// iteration order and repeated calls over unchanged data return
// identical output.
func Rank(subject models.Product, candidates []models.Product, limit int) []models.Product {
	subjectTags := toSet(subject.Tags)

	scored := make([]scoredProduct, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == subject.ID {
			continue
		}
		sp := scoredProduct{
			product:    c,
			tagMatches: overlap(subjectTags, c.Tags),
			priceDiff:  math.Abs(c.Price - subject.Price),
		}
		if c.Category == subject.Category {
			sp.sameCategory = 1
		}
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.tagMatches != b.tagMatches {
			return a.tagMatches > b.tagMatches
		}
		if a.sameCategory != b.sameCategory {
			return a.sameCategory > b.sameCategory
		}
		return a.priceDiff < b.priceDiff
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]models.Product, len(scored))
	for i, sp := range scored {
		out[i] = sp.product
	}
	return out
}

func toSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// overlap counts the distinct tags shared with the subject; duplicates
// on either side never inflate the count.
func overlap(subject map[string]struct{}, tags []string) int {
	counted := make(map[string]struct{}, len(tags))
	n := 0
	for _, t := range tags {
		if _, dup := counted[t]; dup {
			continue
		}
		counted[t] = struct{}{}
		if _, ok := subject[t]; ok {
			n++
		}
	}
	return n
}
