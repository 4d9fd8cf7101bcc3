package store

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []string{"alpha", "beta"}
	if err := s.Set(ctx, "things", in); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var out []string
	found, err := s.Get(ctx, "things", &out)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found {
		t.Fatal("expected key to be found")
	}
	if len(out) != 2 || out[0] != "alpha" || out[1] != "beta" {
		t.Errorf("expected %v, got %v", in, out)
	}
}

func TestMemoryStoreAbsentKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var out []string
	found, err := s.Get(ctx, "missing", &out)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found {
		t.Error("expected absent key to report found=false")
	}
}

func TestMemoryStoreMalformedBlobTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.mu.Lock()
	s.data["broken"] = []byte("{not json")
	s.mu.Unlock()

	var out map[string]string
	found, err := s.Get(ctx, "broken", &out)
	if err != nil {
		t.Fatalf("malformed blob must not error, got: %v", err)
	}
	if found {
		t.Error("expected malformed blob to report found=false")
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "gone", "value"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Remove(ctx, "gone"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	var out string
	found, _ := s.Get(ctx, "gone", &out)
	if found {
		t.Error("expected removed key to be absent")
	}

	// Removing an absent key is not an error.
	if err := s.Remove(ctx, "never-existed"); err != nil {
		t.Errorf("remove of absent key failed: %v", err)
	}
}

func TestMemoryStoreSetMulti(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.SetMulti(ctx, []Entry{
		{Key: "first", Value: 1},
		{Key: "second", Value: 2},
	})
	if err != nil {
		t.Fatalf("setmulti failed: %v", err)
	}

	var first, second int
	if found, _ := s.Get(ctx, "first", &first); !found || first != 1 {
		t.Errorf("expected first=1, got found=%v value=%d", found, first)
	}
	if found, _ := s.Get(ctx, "second", &second); !found || second != 2 {
		t.Errorf("expected second=2, got found=%v value=%d", found, second)
	}
}

func TestTeamMessagesKey(t *testing.T) {
	got := TeamMessagesKey("42")
	if got != "team_42_messages" {
		t.Errorf("expected team_42_messages, got %s", got)
	}
}
