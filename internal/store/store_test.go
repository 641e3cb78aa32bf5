package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// newTestStore spins up a miniredis instance and returns a record store
// backed by it. The instance is torn down with the test.
func newTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, "mindbase"), mr
}

func TestRead_AbsentKey(t *testing.T) {
	s, _ := newTestStore(t)

	var out []string
	found, err := s.Read(context.Background(), "never_written", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected absent key to report not found")
	}
	if out != nil {
		t.Errorf("expected dest untouched, got %v", out)
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := map[string][]string{"u1": {"a", "b"}}
	if err := s.Write(ctx, KeyChats, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := make(map[string][]string)
	found, err := s.Read(ctx, KeyChats, &out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !found {
		t.Fatal("expected key to be found")
	}
	if len(out["u1"]) != 2 || out["u1"][0] != "a" || out["u1"][1] != "b" {
		t.Errorf("round trip mismatch: %v", out)
	}
}

func TestRead_MalformedValueIsAbsent(t *testing.T) {
	s, mr := newTestStore(t)

	// Corrupt the stored value behind the store's back.
	mr.Set("mindbase:users", "{not json")

	var out []string
	found, err := s.Read(context.Background(), KeyUsers, &out)
	if err != nil {
		t.Fatalf("decode failure must not surface as an error, got: %v", err)
	}
	if found {
		t.Error("expected malformed value to be treated as absent")
	}
}

func TestRead_WrongShapeIsAbsent(t *testing.T) {
	s, mr := newTestStore(t)

	// Valid JSON, wrong shape for the destination.
	mr.Set("mindbase:users", `"just a string"`)

	var out []string
	found, err := s.Read(context.Background(), KeyUsers, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected shape mismatch to be treated as absent")
	}
}

func TestWrite_SelfHealsAfterCorruption(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set("mindbase:users", "{not json")

	if err := s.Write(ctx, KeyUsers, []string{"fixed"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out []string
	found, err := s.Read(ctx, KeyUsers, &out)
	if err != nil || !found {
		t.Fatalf("expected healed value, found=%v err=%v", found, err)
	}
	if len(out) != 1 || out[0] != "fixed" {
		t.Errorf("unexpected value after rewrite: %v", out)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Write(ctx, KeyCurrentUser, "u1"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Delete(ctx, KeyCurrentUser); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Second delete of an absent key must also succeed.
	if err := s.Delete(ctx, KeyCurrentUser); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}

	var out string
	found, err := s.Read(ctx, KeyCurrentUser, &out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if found {
		t.Error("expected key to be gone after delete")
	}
}

func TestStore_KeysAreNamespaced(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	if err := s.Write(ctx, KeyResults, map[string]int{"u1": 3}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !mr.Exists("mindbase:results") {
		t.Error("expected value under the prefixed redis key")
	}
}
