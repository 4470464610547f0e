package main

import (
	"context"
	"fmt"
	"time"

	"github.com/yktomo/kakeibo/internal/config"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/storage"
)

// initStorage opens the database, applies pending migrations, and installs
// the default categories on first launch.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath, err := config.DatabasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	service.NewSeeder(store).SeedCategories(ctx)
	return store, nil
}

// parseMonth parses a YYYY-MM flag value.
func parseMonth(value string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", value)
	}
	return t.Year(), t.Month(), nil
}

// parseType converts a flag value into a transaction type.
func parseType(value string) (model.TransactionType, error) {
	t := model.TransactionType(value)
	if !t.Valid() {
		return "", fmt.Errorf("invalid type %q (want income or expense)", value)
	}
	return t, nil
}

// signedAmount renders an amount with its direction sign.
func signedAmount(txn model.Transaction) string {
	if txn.Type == model.TypeIncome {
		return "+" + service.FormatAmount(txn.Amount)
	}
	return "-" + service.FormatAmount(txn.Amount)
}
