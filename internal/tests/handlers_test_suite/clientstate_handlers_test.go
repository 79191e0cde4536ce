package handlers_test_suite

import (
	"context"
	"io"
	"net/http"
	"sync"
	"testing"

	handler "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/handlers"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/kvstore"
)

// fakeStateStore is a map-backed stand-in for the Redis client-state
// store.
type fakeStateStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{data: map[string]string{}}
}

func (s *fakeStateStore) Load(_ context.Context, clientID, bucket string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.data[clientID+"/"+bucket]
	if !ok {
		return "", kvstore.ErrNotFound
	}
	return payload, nil
}

func (s *fakeStateStore) Save(_ context.Context, clientID, bucket, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[clientID+"/"+bucket] = payload
	return nil
}

func withStateStore(t *testing.T) {
	t.Helper()
	handler.SetClientStateStore(newFakeStateStore())
	t.Cleanup(func() { handler.SetClientStateStore(nil) })
}

func TestClientStateHandlers_StoreNotConfigured(t *testing.T) {
	r := newRouter()

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/state/client-1/favorites", nil},
		{http.MethodPut, "/api/state/client-1/favorites", []string{"p1"}},
	}
	for _, tc := range cases {
		w := doJSON(r, tc.method, tc.path, tc.body)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s: expected 503, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestClientStateHandlers_SaveAndLoad(t *testing.T) {
	withStateStore(t)
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/api/state/client-1/favorites", []string{"p1", "p2"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on save, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/state/client-1/favorites", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on load, got %d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	if got := string(body); got != "[\"p1\",\"p2\"]\n" {
		t.Errorf("payload changed in transit: %q", got)
	}

	// A different client's bucket stays empty.
	w = doJSON(r, http.MethodGet, "/api/state/client-2/favorites", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unsaved bucket, got %d", w.Code)
	}
}

func TestClientStateHandlers_InvalidInput(t *testing.T) {
	withStateStore(t)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/api/state/client-1/no-such-bucket", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown bucket: expected 404, got %d", w.Code)
	}

	w = doRaw(r, http.MethodPut, "/api/state/client-1/drafts", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON payload: expected 400, got %d", w.Code)
	}
}
