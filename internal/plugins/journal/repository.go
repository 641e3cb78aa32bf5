package journal

import (
	"context"

	"github.com/mindbase/mindbase/internal/store"
)

// EntryRepository defines the data access contract for journal entries.
type EntryRepository interface {
	// List returns the user's entries newest first, empty when the user
	// has never journaled.
	List(ctx context.Context, userID string) ([]Entry, error)
	// Save upserts: an entry with a known id is replaced in place, a new
	// id is inserted at the head. An update never moves the entry.
	Save(ctx context.Context, userID string, entry Entry) error
}

// entryRepository implements EntryRepository on a per-user collection.
type entryRepository struct {
	coll *store.Collection[Entry]
}

// NewEntryRepository creates a journal entry repository over the record store.
func NewEntryRepository(s store.Store) EntryRepository {
	return &entryRepository{
		coll: store.NewCollection[Entry](s, store.KeyJournals, store.UpsertNewestFirst),
	}
}

func (r *entryRepository) List(ctx context.Context, userID string) ([]Entry, error) {
	return r.coll.List(ctx, userID)
}

func (r *entryRepository) Save(ctx context.Context, userID string, entry Entry) error {
	return r.coll.Save(ctx, userID, entry)
}
