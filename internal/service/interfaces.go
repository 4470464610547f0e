// Package service exposes the application's operations to its user
// interfaces.
//
// Services wrap the persistence layer with the application's failure policy:
// storage errors are logged and converted to a safe default (empty slice,
// nil, or false) so callers degrade to an empty view instead of crashing.
package service

import (
	"context"

	"github.com/yktomo/kakeibo/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Transaction operations
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, start, end string) ([]model.Transaction, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, txn model.NewTransaction) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, upd model.TransactionUpdate) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) (bool, error)
	CountTransactions(ctx context.Context) (int, error)

	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoriesByType(ctx context.Context, categoryType model.TransactionType) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, cat model.NewCategory) (*model.Category, error)
	CreateCategories(ctx context.Context, cats []model.NewCategory) error
	UpdateCategory(ctx context.Context, id string, upd model.CategoryUpdate) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)
	CountCategories(ctx context.Context) (int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
