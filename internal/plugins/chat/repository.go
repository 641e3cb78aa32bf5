package chat

import (
	"context"

	"github.com/mindbase/mindbase/internal/store"
)

// MessageRepository defines the data access contract for chat history.
type MessageRepository interface {
	// List returns the user's messages in chronological order, empty when
	// the user has never chatted.
	List(ctx context.Context, userID string) ([]Message, error)
	// Save appends the message at the tail of the user's list.
	Save(ctx context.Context, userID string, msg Message) error
}

// messageRepository implements MessageRepository on a per-user collection.
type messageRepository struct {
	coll *store.Collection[Message]
}

// NewMessageRepository creates a chat message repository over the record store.
func NewMessageRepository(s store.Store) MessageRepository {
	return &messageRepository{
		coll: store.NewCollection[Message](s, store.KeyChats, store.AppendChronological),
	}
}

func (r *messageRepository) List(ctx context.Context, userID string) ([]Message, error) {
	return r.coll.List(ctx, userID)
}

func (r *messageRepository) Save(ctx context.Context, userID string, msg Message) error {
	return r.coll.Save(ctx, userID, msg)
}
