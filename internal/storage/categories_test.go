package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/yktomo/kakeibo/internal/common"
	"github.com/yktomo/kakeibo/internal/model"
)

func newTestCategory(id, name string, catType model.TransactionType) model.NewCategory {
	return model.NewCategory{
		ID:    id,
		Name:  name,
		Type:  catType,
		Icon:  "📦",
		Color: "#8D6E63",
	}
}

func TestSQLiteStorage_CreateAndGetCategory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	created, err := store.CreateCategory(ctx, newTestCategory("exp_food", "食費", model.TypeExpense))
	if err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected store-assigned created_at")
	}

	byID, err := store.GetCategoryByID(ctx, "exp_food")
	if err != nil {
		t.Fatalf("Failed to get category by id: %v", err)
	}
	if byID == nil || byID.Name != "食費" {
		t.Errorf("Unexpected category: %+v", byID)
	}

	byName, err := store.GetCategoryByName(ctx, "食費")
	if err != nil {
		t.Fatalf("Failed to get category by name: %v", err)
	}
	if byName == nil || byName.ID != "exp_food" {
		t.Errorf("Unexpected category: %+v", byName)
	}
}

func TestSQLiteStorage_GetCategory_Absent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	byID, err := store.GetCategoryByID(ctx, "missing")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if byID != nil {
		t.Errorf("Expected nil for absent category, got %+v", byID)
	}

	byName, err := store.GetCategoryByName(ctx, "存在しない")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if byName != nil {
		t.Errorf("Expected nil for absent category, got %+v", byName)
	}
}

func TestSQLiteStorage_CreateCategories_Bulk(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	cats := []model.NewCategory{
		newTestCategory("exp_food", "食費", model.TypeExpense),
		newTestCategory("exp_transport", "交通費", model.TypeExpense),
		newTestCategory("inc_salary", "給与", model.TypeIncome),
	}
	if err := store.CreateCategories(ctx, cats); err != nil {
		t.Fatalf("Failed to bulk-insert categories: %v", err)
	}

	count, err := store.CountCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 categories, got %d", count)
	}

	// Insertion order is the display order.
	all, err := store.GetCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to get categories: %v", err)
	}
	for i, cat := range all {
		if cat.ID != cats[i].ID {
			t.Errorf("Position %d: expected %s, got %s", i, cats[i].ID, cat.ID)
		}
	}

	expense, err := store.GetCategoriesByType(ctx, model.TypeExpense)
	if err != nil {
		t.Fatalf("Failed to get expense categories: %v", err)
	}
	if len(expense) != 2 {
		t.Errorf("Expected 2 expense categories, got %d", len(expense))
	}
}

func TestSQLiteStorage_CreateCategories_EmptySlice(t *testing.T) {
	store := createTestStorage(t)

	err := store.CreateCategories(context.Background(), nil)
	if !errors.Is(err, ErrEmptySlice) {
		t.Errorf("Expected ErrEmptySlice, got %v", err)
	}
}

func TestSQLiteStorage_CreateCategories_AtomicOnFailure(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	if _, err := store.CreateCategory(ctx, newTestCategory("exp_food", "食費", model.TypeExpense)); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	// Second entry collides on the primary key: nothing from the batch
	// may land.
	err := store.CreateCategories(ctx, []model.NewCategory{
		newTestCategory("exp_transport", "交通費", model.TypeExpense),
		newTestCategory("exp_food", "重複", model.TypeExpense),
	})
	if err == nil {
		t.Fatal("Expected bulk insert to fail on duplicate ID")
	}

	count, err := store.CountCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected rollback to keep 1 category, got %d", count)
	}
}

func TestSQLiteStorage_UpdateCategory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	if _, err := store.CreateCategory(ctx, newTestCategory("exp_food", "食費", model.TypeExpense)); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	name := "外食費"
	color := "#FF5722"
	updated, err := store.UpdateCategory(ctx, "exp_food", model.CategoryUpdate{Name: &name, Color: &color})
	if err != nil {
		t.Fatalf("Failed to update category: %v", err)
	}
	if updated.Name != "外食費" || updated.Color != "#FF5722" {
		t.Errorf("Update not applied: %+v", updated)
	}
	if updated.Icon != "📦" {
		t.Error("Untouched icon changed")
	}

	_, err = store.UpdateCategory(ctx, "missing", model.CategoryUpdate{Name: &name})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStorage_DeleteCategory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	if _, err := store.CreateCategory(ctx, newTestCategory("exp_food", "食費", model.TypeExpense)); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	deleted, err := store.DeleteCategory(ctx, "exp_food")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("Expected delete to report true")
	}

	deleted, err = store.DeleteCategory(ctx, "exp_food")
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if deleted {
		t.Error("Expected second delete to report false")
	}
}
