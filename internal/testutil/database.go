// Package testutil provides test utilities for the kakeibo project.
package testutil

import (
	"context"
	"testing"

	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/storage"
)

// TestDB wraps an in-memory test database.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database with migrations applied
// and the default categories seeded. Cleanup is registered automatically.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return setup(t, true)
}

// SetupEmptyTestDB creates a migrated in-memory database without seeding.
func SetupEmptyTestDB(t *testing.T) *TestDB {
	t.Helper()
	return setup(t, false)
}

func setup(t *testing.T, seed bool) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if seed {
		if err := store.CreateCategories(ctx, service.DefaultCategories()); err != nil {
			t.Fatalf("failed to seed categories: %v", err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// MustCreateTransaction inserts a transaction or fails the test.
func (db *TestDB) MustCreateTransaction(ctx context.Context, txn model.NewTransaction) *model.Transaction {
	db.t.Helper()

	created, err := db.Storage.CreateTransaction(ctx, txn)
	if err != nil {
		db.t.Fatalf("failed to create transaction %q: %v", txn.ID, err)
	}
	return created
}
