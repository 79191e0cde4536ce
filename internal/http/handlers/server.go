package handlers

import (
	"context"

	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/repo"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/uploads"
)

// ClientStateStore persists opaque per-client UI state payloads. Load
// reports kvstore.ErrNotFound when the bucket was never saved.
type ClientStateStore interface {
	Load(ctx context.Context, clientID, bucket string) (string, error)
	Save(ctx context.Context, clientID, bucket, payload string) error
}

var (
	productRepo repo.ProductRepository
	stateStore  ClientStateStore
	uploadStore *uploads.Store
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

// SetClientStateStore wires the client-state store, Redis-backed in
// production. May be left unset; the state endpoints then answer 503.
func SetClientStateStore(s ClientStateStore) {
	stateStore = s
}

func SetUploadStore(s *uploads.Store) {
	uploadStore = s
}

// UploadDir exposes the uploads directory for static serving; empty when
// no upload store is configured.
func UploadDir() string {
	if uploadStore == nil {
		return ""
	}
	return uploadStore.Dir()
}
