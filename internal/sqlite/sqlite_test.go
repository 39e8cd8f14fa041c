package sqlite_test

import (
	"testing"

	"github.com/myrjola/fitfokus/internal/sqlite"
	"github.com/myrjola/fitfokus/internal/testhelpers"
)

func TestNewDatabase(t *testing.T) {
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if version != 1 {
		t.Errorf("SchemaVersion() = %d, want 1", version)
	}

	var count int
	if err = db.ReadOnly.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM exercises WHERE name IN ('Squat', 'Pull-up', 'Cycling (Stationary)')").
		Scan(&count); err != nil {
		t.Fatalf("count fixtures: %v", err)
	}
	if count != 3 {
		t.Errorf("fixture count = %d, want 3", count)
	}
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	ctx := t.Context()
	db, err := sqlite.NewDatabase(ctx, ":memory:", testhelpers.NewLogger(testhelpers.NewWriter(t)))
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err = db.ReadOnly.ExecContext(ctx, "INSERT INTO users (id) VALUES ('ro')"); err == nil {
		t.Fatal("expected write through read-only pool to fail")
	}
	if _, err = db.ReadWrite.ExecContext(ctx, "INSERT INTO users (id) VALUES ('rw')"); err != nil {
		t.Fatalf("write through read-write pool: %v", err)
	}
}

func TestFixturesAreIdempotent(t *testing.T) {
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	dir := t.TempDir()
	url := dir + "/fitfokus.sqlite3"

	first, err := sqlite.NewDatabase(ctx, url, logger)
	if err != nil {
		t.Fatalf("first NewDatabase() error = %v", err)
	}
	var before int
	if err = first.ReadOnly.QueryRowContext(ctx, "SELECT id FROM exercises WHERE name = 'Deadlift'").
		Scan(&before); err != nil {
		t.Fatalf("query deadlift: %v", err)
	}
	if err = first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := sqlite.NewDatabase(ctx, url, logger)
	if err != nil {
		t.Fatalf("second NewDatabase() error = %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })
	var after int
	if err = second.ReadOnly.QueryRowContext(ctx, "SELECT id FROM exercises WHERE name = 'Deadlift'").
		Scan(&after); err != nil {
		t.Fatalf("query deadlift: %v", err)
	}
	if before != after {
		t.Errorf("exercise id changed across restarts: %d != %d", before, after)
	}
}
