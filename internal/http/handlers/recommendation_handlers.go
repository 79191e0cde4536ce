package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/recommend"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/repo"
)

// GetRecommendationsHandler godoc
// @Summary Recommend similar products
// @Description Returns up to 5 products ranked by shared tags, same category, and closest price. Recomputed from current data on every call.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id}/recommendations [get]
func GetRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	subject, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	candidates, err := productRepo.GetAllExcept(id)
	if err != nil {
		http.Error(w, "could not fetch recommendations", http.StatusInternalServerError)
		return
	}

	recs := recommend.Rank(subject, candidates, recommend.DefaultLimit)
	writeJSON(w, http.StatusOK, toProductResponses(recs))
}
