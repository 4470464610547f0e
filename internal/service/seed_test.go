package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/testutil"
)

func TestDefaultCategories_Composition(t *testing.T) {
	cats := service.DefaultCategories()

	if len(cats) != 23 {
		t.Fatalf("Expected 23 default categories, got %d", len(cats))
	}

	var expense, income int
	seen := make(map[string]bool, len(cats))
	for _, cat := range cats {
		if seen[cat.ID] {
			t.Errorf("Duplicate category ID %s", cat.ID)
		}
		seen[cat.ID] = true

		switch cat.Type {
		case model.TypeExpense:
			expense++
			if !strings.HasPrefix(cat.ID, "exp_") {
				t.Errorf("Expense category %s missing exp_ prefix", cat.ID)
			}
		case model.TypeIncome:
			income++
			if !strings.HasPrefix(cat.ID, "inc_") {
				t.Errorf("Income category %s missing inc_ prefix", cat.ID)
			}
		default:
			t.Errorf("Category %s has unknown type %q", cat.ID, cat.Type)
		}

		if cat.Name == "" || cat.Icon == "" || !strings.HasPrefix(cat.Color, "#") {
			t.Errorf("Category %s missing display metadata: %+v", cat.ID, cat)
		}
	}

	if expense != 15 || income != 8 {
		t.Errorf("Expected 15 expense and 8 income categories, got %d and %d", expense, income)
	}
}

func TestDefaultCategories_ReturnsCopy(t *testing.T) {
	first := service.DefaultCategories()
	first[0].Name = "mutated"

	if service.DefaultCategories()[0].Name == "mutated" {
		t.Error("DefaultCategories must not expose shared state")
	}
}

func TestSeeder_SeedCategories(t *testing.T) {
	db := testutil.SetupEmptyTestDB(t)
	ctx := context.Background()

	seeder := service.NewSeeder(db.Storage)
	seeder.SeedCategories(ctx)

	count, err := db.Storage.CountCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if count != 23 {
		t.Errorf("Expected 23 seeded categories, got %d", count)
	}
}

func TestSeeder_SeedCategories_Idempotent(t *testing.T) {
	db := testutil.SetupEmptyTestDB(t)
	ctx := context.Background()

	seeder := service.NewSeeder(db.Storage)
	seeder.SeedCategories(ctx)
	seeder.SeedCategories(ctx)

	count, err := db.Storage.CountCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if count != 23 {
		t.Errorf("Expected second seed to be a no-op, got %d categories", count)
	}
}

func TestSeeder_SkipsNonEmptyTable(t *testing.T) {
	db := testutil.SetupEmptyTestDB(t)
	ctx := context.Background()

	if _, err := db.Storage.CreateCategory(ctx, model.NewCategory{
		ID: "custom", Name: "カスタム", Type: model.TypeExpense, Icon: "⭐", Color: "#000000",
	}); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	service.NewSeeder(db.Storage).SeedCategories(ctx)

	count, err := db.Storage.CountCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected seeding to skip a non-empty table, got %d categories", count)
	}
}

func TestSeeder_SwallowsStorageFailure(t *testing.T) {
	seeder := service.NewSeeder(&failingStorage{err: errors.New("locked")})

	// Must not panic; failures are logged only.
	seeder.SeedCategories(context.Background())
}
