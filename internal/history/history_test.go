package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testRepo(t *testing.T) (*Repo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepo(db), path
}

func TestOpenCreatesMissingParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	db.Close()
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	db.Close()

	// Reopening an already-migrated database must not fail on ErrNoChange.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	db.Close()
}

func TestRecordFillsIDAndTimestamp(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	err := repo.Record(ctx, Entry{Name: "dev", Backend: "s3://dev", Mode: "persistent", Action: "activate"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID == "" {
		t.Error("expected generated ID")
	}
	if e.CreatedAt.IsZero() {
		t.Error("expected generated CreatedAt")
	}
	if e.Name != "dev" || e.Backend != "s3://dev" || e.Mode != "persistent" || e.Action != "activate" {
		t.Errorf("entry = %+v", e)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()
	base := Now().Add(-time.Minute)

	for i, name := range []string{"one", "two", "three"} {
		err := repo.Record(ctx, Entry{
			Name:      name,
			Backend:   "s3://" + name,
			Mode:      "session",
			Action:    "activate",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Record %s: %v", name, err)
		}
	}

	entries, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"three", "two", "one"}
	for i := range want {
		if entries[i].Name != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, want[i])
		}
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()
	base := Now().Add(-time.Minute)

	for i := 0; i < 5; i++ {
		err := repo.Record(ctx, Entry{
			Name:      "dev",
			Backend:   "s3://dev",
			Mode:      "persistent",
			Action:    "activate",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestRecordDeactivationWithEmptyName(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	err := repo.Record(ctx, Entry{Mode: "persistent", Action: "deactivate"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Action != "deactivate" || entries[0].Name != "" {
		t.Errorf("entry = %+v, want empty-name deactivation", entries[0])
	}
}

func TestRecordRejectsUnknownMode(t *testing.T) {
	repo, _ := testRepo(t)
	err := repo.Record(context.Background(), Entry{Name: "dev", Backend: "x", Mode: "bogus", Action: "activate"})
	if err == nil {
		t.Fatal("expected CHECK constraint failure for unknown mode")
	}
}
