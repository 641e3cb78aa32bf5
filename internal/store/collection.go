package store

import (
	"context"
	"fmt"
)

// Record is implemented by entities kept in per-user collections.
type Record interface {
	// RecordID returns the stable unique identifier of the record.
	RecordID() string
}

// SavePolicy selects where Save places a record within a user's list. The
// two entity families in MindBase differ only in this policy, so it is an
// explicit parameter instead of per-entity special-casing.
type SavePolicy int

const (
	// AppendChronological appends new records at the tail of the list.
	// Used for chat messages and screening results: the end is newest,
	// and callers are responsible for monotonic timestamps.
	AppendChronological SavePolicy = iota

	// UpsertNewestFirst replaces a record with a matching id in place;
	// otherwise it inserts at the head so index 0 is newest. Used for
	// journal entries. An update never moves the record to the front.
	UpsertNewestFirst
)

// Collection is a per-user ordered collection of records of type T, stored
// under a single record store key as a mapping from user id to list. An id
// absent from the mapping is equivalent to an empty list.
//
// Every operation reads the whole mapping, mutates a copy, and writes the
// whole mapping back -- O(total records under the key) per call, which is
// fine for the per-user, local data volumes MindBase holds.
type Collection[T Record] struct {
	store  Store
	key    string
	policy SavePolicy
}

// NewCollection creates a collection over the given store key with the
// given save policy.
func NewCollection[T Record](s Store, key string, policy SavePolicy) *Collection[T] {
	return &Collection[T]{store: s, key: key, policy: policy}
}

// List returns the stored list for userID, or an empty list when the user
// has no records yet. Absence is never an error.
func (c *Collection[T]) List(ctx context.Context, userID string) ([]T, error) {
	all, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return all[userID], nil
}

// Save stores rec in userID's list according to the collection's policy.
func (c *Collection[T]) Save(ctx context.Context, userID string, rec T) error {
	all, err := c.readAll(ctx)
	if err != nil {
		return err
	}

	list := all[userID]

	switch c.policy {
	case UpsertNewestFirst:
		replaced := false
		for i := range list {
			if list[i].RecordID() == rec.RecordID() {
				list[i] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			list = append([]T{rec}, list...)
		}
	default:
		list = append(list, rec)
	}

	all[userID] = list
	return c.store.Write(ctx, c.key, all)
}

// readAll loads the full user-to-list mapping, treating an absent or
// malformed key as an empty mapping.
func (c *Collection[T]) readAll(ctx context.Context) (map[string][]T, error) {
	all := make(map[string][]T)
	if _, err := c.store.Read(ctx, c.key, &all); err != nil {
		return nil, fmt.Errorf("loading collection %q: %w", c.key, err)
	}
	if all == nil {
		all = make(map[string][]T)
	}
	return all, nil
}
