package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	handler "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/handlers"
)

func getRecommendations(t *testing.T, r http.Handler, id string) []handler.ProductResponse {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/api/products/"+id+"/recommendations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}

func TestGetRecommendationsHandler_Ranking(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	subject, err := seedProduct(r, map[string]any{
		"name": "Subject", "price": 100, "category": "X", "tags": []string{"a", "b"},
	})
	if err != nil {
		t.Fatal(err)
	}

	seeds := []map[string]any{
		{"name": "NoMatch", "price": 100, "category": "Y", "tags": []string{}},
		{"name": "OneTag", "price": 100, "category": "X", "tags": []string{"a"}},
		{"name": "TwoTags", "price": 90, "category": "X", "tags": []string{"a", "b"}},
	}
	for _, s := range seeds {
		if _, err := seedProduct(r, s); err != nil {
			t.Fatal(err)
		}
	}

	recs := getRecommendations(t, r, subject.Id)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	wantOrder := []string{"TwoTags", "OneTag", "NoMatch"}
	for i, want := range wantOrder {
		if recs[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, recs[i].Name)
		}
	}

	for _, rec := range recs {
		if rec.Id == subject.Id {
			t.Error("subject appeared in its own recommendations")
		}
	}
}

func TestGetRecommendationsHandler_LimitsToFive(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	subject, err := seedProduct(r, map[string]any{"name": "Subject", "price": 100, "category": "X"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		if _, err := seedProduct(r, map[string]any{"name": name, "price": 100, "category": "X"}); err != nil {
			t.Fatal(err)
		}
	}

	recs := getRecommendations(t, r, subject.Id)
	if len(recs) != 5 {
		t.Errorf("expected 5 recommendations, got %d", len(recs))
	}
}

func TestGetRecommendationsHandler_Deterministic(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	subject, err := seedProduct(r, map[string]any{
		"name": "Subject", "price": 50, "category": "X", "tags": []string{"a"},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []map[string]any{
		{"name": "P1", "price": 55, "category": "X", "tags": []string{"a"}},
		{"name": "P2", "price": 45, "category": "Y", "tags": []string{"a"}},
		{"name": "P3", "price": 50, "category": "X"},
	} {
		if _, err := seedProduct(r, s); err != nil {
			t.Fatal(err)
		}
	}

	first := getRecommendations(t, r, subject.Id)
	second := getRecommendations(t, r, subject.Id)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical ordering across calls with unchanged catalog")
	}
}

func TestGetRecommendationsHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/api/products/does-not-exist/recommendations", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
