package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mindbase/mindbase/internal/apperror"
	"github.com/mindbase/mindbase/internal/store"
)

// Document is the portable backup format. The data fields hold the raw
// store values so a backup round-trips byte-for-byte regardless of which
// entity versions wrote them. Only the timestamp is mandatory.
type Document struct {
	Users       json.RawMessage `json:"users"`
	CurrentUser json.RawMessage `json:"currentUser"`
	Chats       json.RawMessage `json:"chats"`
	Journals    json.RawMessage `json:"journals"`
	Results     json.RawMessage `json:"results"`
	Timestamp   string          `json:"timestamp"`
}

// Codec creates and restores backup documents against the record store.
type Codec interface {
	// Create snapshots the full record store into a pretty-printed document.
	Create(ctx context.Context) ([]byte, error)
	// Restore merges a document into the store. Each data field overwrites
	// its store key only when present; absent fields leave the existing
	// state untouched. An unparsable document or a missing timestamp
	// rejects the whole restore without mutating anything.
	Restore(ctx context.Context, data []byte) error
}

type codec struct {
	store store.Store
}

// NewCodec creates a backup codec over the record store.
func NewCodec(s store.Store) Codec {
	return &codec{store: s}
}

// storeKeys maps each document field to its record store key.
var storeKeys = []string{
	store.KeyUsers,
	store.KeyCurrentUser,
	store.KeyChats,
	store.KeyJournals,
	store.KeyResults,
}

func (c *codec) Create(ctx context.Context) ([]byte, error) {
	doc := Document{Timestamp: time.Now().UTC().Format(time.RFC3339)}

	fields := []*json.RawMessage{
		&doc.Users, &doc.CurrentUser, &doc.Chats, &doc.Journals, &doc.Results,
	}
	for i, key := range storeKeys {
		// An absent key stays nil and serializes as null, so a restore
		// of this document will skip it.
		if _, err := c.store.Read(ctx, key, fields[i]); err != nil {
			return nil, apperror.NewInternal(fmt.Errorf("reading %s: %w", key, err))
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("encoding backup: %w", err))
	}
	return out, nil
}

func (c *codec) Restore(ctx context.Context, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperror.NewInvalidBackup("backup file is not valid JSON")
	}
	if doc.Timestamp == "" {
		return apperror.NewInvalidBackup("backup file has no timestamp")
	}

	fields := []json.RawMessage{
		doc.Users, doc.CurrentUser, doc.Chats, doc.Journals, doc.Results,
	}
	for i, key := range storeKeys {
		if !fieldPresent(fields[i]) {
			continue
		}
		if err := c.store.Write(ctx, key, fields[i]); err != nil {
			return apperror.NewInternal(fmt.Errorf("restoring %s: %w", key, err))
		}
	}
	return nil
}

// fieldPresent reports whether a raw field carries data. A field that was
// absent from the document, or explicitly null, is skipped on restore.
func fieldPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}
