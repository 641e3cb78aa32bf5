package store

import (
	"context"
	"testing"
)

// note is a minimal Record for collection tests.
type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func (n note) RecordID() string { return n.ID }

func TestList_EmptyForUnknownUser(t *testing.T) {
	s, _ := newTestStore(t)
	c := NewCollection[note](s, KeyJournals, UpsertNewestFirst)

	list, err := c.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %v", list)
	}
}

func TestSave_AppendPreservesChronologicalOrder(t *testing.T) {
	s, _ := newTestStore(t)
	c := NewCollection[note](s, KeyChats, AppendChronological)
	ctx := context.Background()

	for _, id := range []string{"m1", "m2", "m3"} {
		if err := c.Save(ctx, "u1", note{ID: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	list, err := c.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	assertOrder(t, list, "m1", "m2", "m3")
}

func TestSave_UpsertInsertsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	c := NewCollection[note](s, KeyJournals, UpsertNewestFirst)
	ctx := context.Background()

	for _, id := range []string{"j1", "j2"} {
		if err := c.Save(ctx, "u1", note{ID: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	list, err := c.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	assertOrder(t, list, "j2", "j1")
}

func TestSave_UpsertReplacesInPlace(t *testing.T) {
	s, _ := newTestStore(t)
	c := NewCollection[note](s, KeyJournals, UpsertNewestFirst)
	ctx := context.Background()

	c.Save(ctx, "u1", note{ID: "j1", Body: "first"})
	c.Save(ctx, "u1", note{ID: "j2", Body: "second"})

	// Re-saving j1 must replace its content without moving it to the front.
	if err := c.Save(ctx, "u1", note{ID: "j1", Body: "edited"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	list, err := c.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	assertOrder(t, list, "j2", "j1")
	if list[1].Body != "edited" {
		t.Errorf("expected replaced content, got %q", list[1].Body)
	}
}

func TestSave_UsersAreIsolated(t *testing.T) {
	s, _ := newTestStore(t)
	c := NewCollection[note](s, KeyChats, AppendChronological)
	ctx := context.Background()

	c.Save(ctx, "u1", note{ID: "a"})
	c.Save(ctx, "u2", note{ID: "b"})

	l1, _ := c.List(ctx, "u1")
	l2, _ := c.List(ctx, "u2")
	assertOrder(t, l1, "a")
	assertOrder(t, l2, "b")
}

func TestCollection_MalformedMappingStartsEmpty(t *testing.T) {
	s, mr := newTestStore(t)
	c := NewCollection[note](s, KeyChats, AppendChronological)
	ctx := context.Background()

	mr.Set("mindbase:chats", "][")

	// A corrupted mapping reads as empty and heals on the next save.
	list, err := c.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list over corrupted key: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %v", list)
	}

	if err := c.Save(ctx, "u1", note{ID: "m1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	list, _ = c.List(ctx, "u1")
	assertOrder(t, list, "m1")
}

// assertOrder fails unless the list's record ids match want exactly.
func assertOrder(t *testing.T, list []note, want ...string) {
	t.Helper()
	if len(list) != len(want) {
		t.Fatalf("expected %d records, got %d (%v)", len(want), len(list), list)
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, list[i].ID)
		}
	}
}
