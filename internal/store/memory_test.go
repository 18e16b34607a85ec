package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemory_LoadMiss(t *testing.T) {
	m := NewMemory()
	_, err := m.Load(context.Background(), "kw", "golang")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemory_CommitThenLoad(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	if err := m.Commit(ctx, "kw", "golang", []byte("payload")); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	got, err := m.Load(ctx, "kw", "golang")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("Load = %q, want %q", got, "payload")
	}
}

func TestMemory_KeysAreScopedByKind(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.Commit(ctx, "kw", "x", []byte("a"))
	m.Commit(ctx, "trending", "x", []byte("b"))

	got1, _ := m.Load(ctx, "kw", "x")
	got2, _ := m.Load(ctx, "trending", "x")
	if string(got1) == string(got2) {
		t.Error("same key under different kinds must not collide")
	}
}

func TestMemory_LoadReturnsCopyNotAlias(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	original := []byte("payload")
	m.Commit(ctx, "kw", "x", original)

	got, _ := m.Load(ctx, "kw", "x")
	got[0] = 'X'

	got2, _ := m.Load(ctx, "kw", "x")
	if got2[0] == 'X' {
		t.Error("mutating a loaded value must not affect the store's internal copy")
	}
}
