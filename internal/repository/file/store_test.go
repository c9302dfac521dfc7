package file

import (
	"errors"
	"testing"

	"github.com/Parindya2/TripRoute/internal/repository/ports"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if err := store.Set("favorites", []byte(`["1","3"]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := store.Get("favorites")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != `["1","3"]` {
		t.Fatalf("unexpected value: %s", got)
	}

	if err := store.Set("favorites", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite returned error: %v", err)
	}
	got, err = store.Get("favorites")
	if err != nil {
		t.Fatalf("Get after overwrite returned error: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected overwritten value, got %s", got)
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if _, err := store.Get("auth_token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if err := store.Set("user_data", []byte(`{}`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Delete("user_data"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get("user_data"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// Deleting an absent key is a no-op.
	if err := store.Delete("user_data"); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}

func TestStoreRejectsPathKeys(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := store.Set(key, []byte(`{}`)); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}
