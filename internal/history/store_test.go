package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	base := time.Date(2024, 5, 6, 20, 0, 0, 0, time.UTC)

	for i, path := range []string{"/a.csv", "/b.txt", "/c.csv"} {
		entry := Entry{Path: path, Name: path[1:2], Type: "Serato", Tracks: i + 1, OpenedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record(%s): %v", path, err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 || entries[0].Path != "/c.csv" || entries[1].Path != "/b.txt" {
		t.Fatalf("Recent(2) = %#v, want c then b", entries)
	}
	if entries[0].Tracks != 3 || !entries[0].OpenedAt.Equal(base.Add(2*time.Minute)) {
		t.Fatalf("entry = %#v, want 3 tracks opened at %v", entries[0], base.Add(2*time.Minute))
	}

	// Reopening moves the entry to the front and updates its details.
	if err := store.Record(ctx, Entry{Path: "/a.csv", Name: "renamed", Type: "Rekordbox", Tracks: 9, OpenedAt: base.Add(time.Hour)}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	entries, err = store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent(0) returned %d entries, want 3", len(entries))
	}
	if got := entries[0]; got.Path != "/a.csv" || got.Name != "renamed" || got.Type != "Rekordbox" || got.Tracks != 9 {
		t.Fatalf("first entry = %#v, want updated /a.csv", got)
	}
}

func TestStore_RemoveAndPrune(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	base := time.Now()

	for i, path := range []string{"/1", "/2", "/3", "/4"} {
		if err := store.Record(ctx, Entry{Path: path, OpenedAt: base.Add(time.Duration(i) * time.Second)}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	if err := store.Remove(ctx, "/4"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := store.Remove(ctx, "/missing"); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}
	if err := store.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 || entries[0].Path != "/3" || entries[1].Path != "/2" {
		t.Fatalf("entries = %#v, want /3 and /2", entries)
	}
}

func TestStore_RecordValidation(t *testing.T) {
	store := openTestStore(t)
	if err := store.Record(context.Background(), Entry{}); err == nil {
		t.Fatal("Record without path should fail")
	}
	if _, err := Open(" "); err == nil {
		t.Fatal("Open with empty path should fail")
	}
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Record(ctx, Entry{Path: "/kept.csv", Name: "kept"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "kept" {
		t.Fatalf("entries = %#v, want kept", entries)
	}
}
