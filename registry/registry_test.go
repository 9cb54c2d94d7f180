package registry

import (
	"errors"
	"testing"
)

func TestRegisterFirstWins(t *testing.T) {
	r := New[int]()
	if err := r.Register("main", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register("main", 2)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	v, ok := r.Lookup("main")
	if !ok || v != 1 {
		t.Errorf("expected first registration to win, got %d (ok=%v)", v, ok)
	}
}

func TestLookupMissing(t *testing.T) {
	r := New[string]()
	if _, ok := r.Lookup("nope"); ok {
		t.Error("expected missing handle")
	}
}

func TestMustLookupPanics(t *testing.T) {
	r := New[int]()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown handle")
		}
	}()
	r.MustLookup("ghost")
}

func TestRemoveAndOrder(t *testing.T) {
	r := New[int]()
	for i, h := range []Handle{"c", "a", "b"} {
		if err := r.Register(h, i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !r.Remove("a") {
		t.Error("expected remove to succeed")
	}
	if r.Remove("a") {
		t.Error("expected second remove to fail")
	}

	handles := r.Handles()
	if len(handles) != 2 || handles[0] != "c" || handles[1] != "b" {
		t.Errorf("unexpected registration order: %v", handles)
	}
	sorted := r.Sorted()
	if sorted[0] != "b" || sorted[1] != "c" {
		t.Errorf("unexpected sorted order: %v", sorted)
	}

	// Freed handle can be registered again.
	if err := r.Register("a", 9); err != nil {
		t.Errorf("expected re-register to succeed, got %v", err)
	}
	if r.Len() != 3 {
		t.Errorf("expected 3 handles, got %d", r.Len())
	}
}
