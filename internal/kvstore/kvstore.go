// Package kvstore persists per-client UI state (favorites, drafts,
// recently viewed) as opaque JSON payloads in Redis. The payloads carry
// no server-side invariants; clients own the format, the server only
// offers explicit load/save calls so state survives across browsers.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a client has never saved the requested
// bucket.
var ErrNotFound = errors.New("client state not found")

// TTL is how long unused client state is kept around.
const TTL = 30 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func stateKey(clientID, bucket string) string {
	return fmt.Sprintf("clientstate:%s:%s", clientID, bucket)
}

// Load fetches the saved payload for one client bucket.
func (s *Store) Load(ctx context.Context, clientID, bucket string) (string, error) {
	payload, err := s.rdb.Get(ctx, stateKey(clientID, bucket)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return payload, err
}

// Save stores the payload, refreshing the TTL.
func (s *Store) Save(ctx context.Context, clientID, bucket, payload string) error {
	return s.rdb.Set(ctx, stateKey(clientID, bucket), payload, TTL).Err()
}
