// Package store implements the MindBase record store: a flat key/value
// namespace where each key holds one JSON-encoded value. It is the sole
// persistence primitive -- repositories, the session manager, and the
// backup codec all read and write through it.
//
// The store offers no transactionality across keys and no locking. A
// MindBase deployment is a single-profile companion with one writer; the
// read-modify-write pattern used by the collection repositories would be a
// lost-update race under concurrent writers.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Key roles for the five top-level records. The configured prefix is
// prepended by the store, so callers pass these bare names everywhere,
// including in backup documents.
const (
	KeyUsers       = "users"        // ordered list of users
	KeyCurrentUser = "current_user" // single user id string, or absent
	KeyChats       = "chats"        // map: user id -> ordered chat messages
	KeyJournals    = "journals"     // map: user id -> ordered entries, newest first
	KeyResults     = "results"      // map: user id -> ordered screening results
)

// Store is the record store contract: read a key into a destination, write
// a key wholesale, or delete it. Values are arbitrary JSON-serializable data.
type Store interface {
	// Read decodes the value at key into dest. Returns false when the key
	// has never been written OR when the stored text fails to decode --
	// malformed data is treated as absence, never as a fatal error.
	Read(ctx context.Context, key string, dest any) (bool, error)

	// Write JSON-encodes value and stores it at key, replacing any
	// previous value.
	Write(ctx context.Context, key string, value any) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// redisStore implements Store on a local Redis instance. Each record store
// key maps to the Redis key "<prefix>:<key>".
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a record store backed by the given Redis client.
// All keys are namespaced under prefix.
func NewRedisStore(client *redis.Client, prefix string) Store {
	return &redisStore{client: client, prefix: prefix}
}

// Read fetches and decodes the value at key. A missing key and a value
// that no longer parses both come back as (false, nil): decode failures
// self-heal on the next write, but are logged so corruption isn't
// silently invisible.
func (s *redisStore) Read(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading record %q: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("discarding malformed record store value",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false, nil
	}

	return true, nil
}

// Write encodes value and stores it at key with no TTL.
func (s *redisStore) Write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", key, err)
	}

	if err := s.client.Set(ctx, s.redisKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("writing record %q: %w", key, err)
	}

	return nil
}

// Delete removes the key.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("deleting record %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) redisKey(key string) string {
	return s.prefix + ":" + key
}
