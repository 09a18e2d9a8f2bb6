package store_test

import (
	"testing"
	"time"

	"github.com/funvibe/matchuse/internal/store"
)

func TestContentKey_StableAndOrderSensitive(t *testing.T) {
	a := store.ContentKey([]string{"Some(_)", "None"})
	b := store.ContentKey([]string{"Some(_)", "None"})
	if a != b {
		t.Fatalf("ContentKey not stable across calls: %s vs %s", a, b)
	}

	c := store.ContentKey([]string{"None", "Some(_)"})
	if a == c {
		t.Fatalf("ContentKey should be sensitive to arm order, got equal keys for %v and %v", []string{"Some(_)", "None"}, []string{"None", "Some(_)"})
	}
}

func TestContentKey_DistinguishesConcatenationBoundary(t *testing.T) {
	// Without a separator between patterns, ["ab", "c"] and ["a", "bc"]
	// would hash identically.
	a := store.ContentKey([]string{"ab", "c"})
	b := store.ContentKey([]string{"a", "bc"})
	if a == b {
		t.Fatalf("ContentKey collided across a concatenation boundary: %s", a)
	}
}

func openTestCache(t *testing.T) *store.Cache {
	t.Helper()
	c, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_LookupMiss(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Lookup("nonexistent")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if ok {
		t.Fatalf("Lookup reported a hit for a key never put")
	}
}

func TestCache_PutThenLookup(t *testing.T) {
	c := openTestCache(t)

	key := store.ContentKey([]string{"Some(true)", "None"})
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	witnesses := []string{"Some(false)"}

	put, err := c.Put(key, 2, 2, false, witnesses, created)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if put.ID == "" {
		t.Fatalf("Put returned an empty record ID")
	}

	got, ok, err := c.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatalf("Lookup missed a record just Put")
	}
	if got.ID != put.ID {
		t.Errorf("ID: got %q, want %q", got.ID, put.ID)
	}
	if got.ArmCount != 2 || got.Reachable != 2 {
		t.Errorf("ArmCount/Reachable: got %d/%d, want 2/2", got.ArmCount, got.Reachable)
	}
	if got.Exhaustive {
		t.Errorf("Exhaustive: got true, want false")
	}
	if len(got.Witnesses) != 1 || got.Witnesses[0] != "Some(false)" {
		t.Errorf("Witnesses: got %v, want [Some(false)]", got.Witnesses)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, created)
	}
}

func TestCache_PutOverwritesSameContentKey(t *testing.T) {
	c := openTestCache(t)

	key := store.ContentKey([]string{"_"})
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	if _, err := c.Put(key, 1, 1, true, nil, first); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if _, err := c.Put(key, 3, 1, false, []string{"42"}, second); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	got, ok, err := c.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatalf("Lookup missed the record after overwrite")
	}
	if got.ArmCount != 3 || got.Exhaustive {
		t.Errorf("overwrite did not stick: got ArmCount=%d Exhaustive=%v", got.ArmCount, got.Exhaustive)
	}
	if !got.CreatedAt.Equal(second) {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, second)
	}
}
