package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/testutil"
)

// failingStorage errors on every operation so tests can verify the
// services' degrade-to-empty policy.
type failingStorage struct {
	err error
}

func (f *failingStorage) ListTransactions(context.Context) ([]model.Transaction, error) {
	return nil, f.err
}

func (f *failingStorage) GetTransactionsByDateRange(context.Context, string, string) ([]model.Transaction, error) {
	return nil, f.err
}

func (f *failingStorage) GetRecentTransactions(context.Context, int) ([]model.Transaction, error) {
	return nil, f.err
}

func (f *failingStorage) GetTransactionByID(context.Context, string) (*model.Transaction, error) {
	return nil, f.err
}

func (f *failingStorage) CreateTransaction(context.Context, model.NewTransaction) (*model.Transaction, error) {
	return nil, f.err
}

func (f *failingStorage) UpdateTransaction(context.Context, string, model.TransactionUpdate) (*model.Transaction, error) {
	return nil, f.err
}

func (f *failingStorage) DeleteTransaction(context.Context, string) (bool, error) {
	return false, f.err
}

func (f *failingStorage) CountTransactions(context.Context) (int, error) { return 0, f.err }

func (f *failingStorage) GetCategories(context.Context) ([]model.Category, error) {
	return nil, f.err
}

func (f *failingStorage) GetCategoriesByType(context.Context, model.TransactionType) ([]model.Category, error) {
	return nil, f.err
}

func (f *failingStorage) GetCategoryByName(context.Context, string) (*model.Category, error) {
	return nil, f.err
}

func (f *failingStorage) GetCategoryByID(context.Context, string) (*model.Category, error) {
	return nil, f.err
}

func (f *failingStorage) CreateCategory(context.Context, model.NewCategory) (*model.Category, error) {
	return nil, f.err
}

func (f *failingStorage) CreateCategories(context.Context, []model.NewCategory) error { return f.err }

func (f *failingStorage) UpdateCategory(context.Context, string, model.CategoryUpdate) (*model.Category, error) {
	return nil, f.err
}

func (f *failingStorage) DeleteCategory(context.Context, string) (bool, error) {
	return false, f.err
}

func (f *failingStorage) CountCategories(context.Context) (int, error) { return 0, f.err }

func (f *failingStorage) Migrate(context.Context) error { return f.err }
func (f *failingStorage) Close() error                  { return nil }

func TestTransactionService_AddTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	txns := service.NewTransactionService(db.Storage)

	created := txns.AddTransaction(ctx, service.AddTransactionInput{
		Amount:   1200,
		Type:     model.TypeExpense,
		Category: "食費",
		Date:     "2025-01-15",
		Memo:     "ランチ",
	})
	if created == nil {
		t.Fatal("Expected transaction, got nil")
	}

	// Service assigns the millis_base36 ID itself.
	if !regexp.MustCompile(`^\d{13,}_[0-9a-z]{7}$`).MatchString(created.ID) {
		t.Errorf("Unexpected generated ID format: %q", created.ID)
	}

	if got := txns.Transaction(ctx, created.ID); got == nil || got.Amount != 1200 {
		t.Errorf("Stored transaction mismatch: %+v", got)
	}
}

func TestTransactionService_RecentTransactions_DefaultLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	dates := []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05", "2025-01-06", "2025-01-07"}
	for i, date := range dates {
		db.MustCreateTransaction(ctx, model.NewTransaction{
			ID: date, Amount: int64(100 * (i + 1)), Type: model.TypeExpense,
			Category: "食費", Date: date,
		})
	}

	txns := service.NewTransactionService(db.Storage)

	recent := txns.RecentTransactions(ctx, 0)
	if len(recent) != service.DefaultRecentLimit {
		t.Fatalf("Expected %d transactions, got %d", service.DefaultRecentLimit, len(recent))
	}
	if recent[0].Date != "2025-01-07" {
		t.Errorf("Expected newest first, got %s", recent[0].Date)
	}
}

func TestTransactionService_DegradesOnStorageFailure(t *testing.T) {
	store := &failingStorage{err: errors.New("disk full")}
	ctx := context.Background()

	txns := service.NewTransactionService(store)

	if got := txns.AllTransactions(ctx); got != nil {
		t.Errorf("AllTransactions: expected nil, got %v", got)
	}
	if got := txns.RecentTransactions(ctx, 5); got != nil {
		t.Errorf("RecentTransactions: expected nil, got %v", got)
	}
	if got := txns.Transaction(ctx, "any"); got != nil {
		t.Errorf("Transaction: expected nil, got %v", got)
	}
	if got := txns.AddTransaction(ctx, service.AddTransactionInput{
		Amount: 100, Type: model.TypeExpense, Category: "食費", Date: "2025-01-15",
	}); got != nil {
		t.Errorf("AddTransaction: expected nil, got %v", got)
	}
	if txns.DeleteTransaction(ctx, "any") {
		t.Error("DeleteTransaction: expected false")
	}

	cats := service.NewCategoryService(store)
	if got := cats.AllCategories(ctx); got != nil {
		t.Errorf("AllCategories: expected nil, got %v", got)
	}
	if got := cats.CategoryByName(ctx, "食費"); got != nil {
		t.Errorf("CategoryByName: expected nil, got %v", got)
	}
	if cats.DeleteCategory(ctx, "any") {
		t.Error("DeleteCategory: expected false")
	}
}

func TestTransactionService_DeleteTwice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	db.MustCreateTransaction(ctx, model.NewTransaction{
		ID: "txn-del", Amount: 100, Type: model.TypeExpense, Category: "食費", Date: "2025-01-15",
	})

	txns := service.NewTransactionService(db.Storage)

	if !txns.DeleteTransaction(ctx, "txn-del") {
		t.Error("Expected first delete to report true")
	}
	if txns.DeleteTransaction(ctx, "txn-del") {
		t.Error("Expected second delete to report false")
	}
}
