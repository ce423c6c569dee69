package resumption

import (
	"context"
	"testing"
)

func TestMemStoreSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	defer store.Close()

	token := "abc123"
	if _, ok, err := store.Load(ctx, token); err != nil || ok {
		t.Fatalf("expected no entry for unknown token, got ok=%v err=%v", ok, err)
	}

	want := Position{ClientPosition: 10, ServerPosition: 20}
	if err := store.Save(ctx, token, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Load(ctx, token)
	if err != nil || !ok {
		t.Fatalf("expected saved entry, got ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Load(ctx, token); ok {
		t.Error("expected entry to be gone after Delete")
	}
}

func TestMemStoreOverwritesOnSecondSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	defer store.Close()

	token := "xyz"
	_ = store.Save(ctx, token, Position{ClientPosition: 1})
	_ = store.Save(ctx, token, Position{ClientPosition: 2})

	got, _, _ := store.Load(ctx, token)
	if got.ClientPosition != 2 {
		t.Errorf("got ClientPosition %d, want 2", got.ClientPosition)
	}
}
