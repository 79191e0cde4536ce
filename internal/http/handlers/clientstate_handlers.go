package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/kvstore"
)

// The buckets mirror what the storefront UI keeps in browser storage.
var stateBuckets = map[string]struct{}{
	"favorites":       {},
	"drafts":          {},
	"recently-viewed": {},
}

// GetClientStateHandler godoc
// @Summary Load client UI state
// @Description Fetches an opaque JSON payload previously saved for this client. Buckets: favorites, drafts, recently-viewed.
// @Tags state
// @Produce json
// @Param clientID path string true "Client ID"
// @Param bucket path string true "State bucket"
// @Success 200 {object} object
// @Failure 404 {string} string "Not found"
// @Failure 503 {string} string "State storage not configured"
// @Router /api/state/{clientID}/{bucket} [get]
func GetClientStateHandler(w http.ResponseWriter, r *http.Request) {
	bucket, ok := stateBucket(w, r)
	if !ok {
		return
	}

	payload, err := stateStore.Load(r.Context(), chi.URLParam(r, "clientID"), bucket)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			http.Error(w, "no saved state", http.StatusNotFound)
			return
		}
		http.Error(w, "could not load state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(payload))
}

// PutClientStateHandler godoc
// @Summary Save client UI state
// @Description Stores an opaque JSON payload for this client. The payload format is owned by the UI; the server only requires valid JSON.
// @Tags state
// @Accept json
// @Param clientID path string true "Client ID"
// @Param bucket path string true "State bucket"
// @Success 204 "Saved"
// @Failure 400 {string} string "Invalid payload"
// @Failure 503 {string} string "State storage not configured"
// @Router /api/state/{clientID}/{bucket} [put]
func PutClientStateHandler(w http.ResponseWriter, r *http.Request) {
	bucket, ok := stateBucket(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}
	if !json.Valid(body) {
		http.Error(w, "payload must be valid JSON", http.StatusBadRequest)
		return
	}

	if err := stateStore.Save(r.Context(), chi.URLParam(r, "clientID"), bucket, string(body)); err != nil {
		http.Error(w, "could not save state", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func stateBucket(w http.ResponseWriter, r *http.Request) (string, bool) {
	if stateStore == nil {
		http.Error(w, "client state storage not configured", http.StatusServiceUnavailable)
		return "", false
	}
	bucket := chi.URLParam(r, "bucket")
	if _, ok := stateBuckets[bucket]; !ok {
		http.Error(w, "unknown state bucket", http.StatusNotFound)
		return "", false
	}
	return bucket, true
}
