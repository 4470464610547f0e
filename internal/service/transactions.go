package service

import (
	"context"

	"github.com/yktomo/kakeibo/internal/common"
	"github.com/yktomo/kakeibo/internal/idgen"
	"github.com/yktomo/kakeibo/internal/model"
)

// DefaultRecentLimit is the number of transactions shown on the home view.
const DefaultRecentLimit = 5

// TransactionService provides ledger operations over the store.
type TransactionService struct {
	store Storage
}

// NewTransactionService creates a transaction service backed by store.
func NewTransactionService(store Storage) *TransactionService {
	return &TransactionService{store: store}
}

// AddTransactionInput carries the fields of the add-transaction form.
type AddTransactionInput struct {
	Category string
	Date     string
	Memo     string
	Type     model.TransactionType
	Amount   int64
}

// RecentTransactions returns the newest transactions, capped to limit.
// A non-positive limit falls back to DefaultRecentLimit.
func (s *TransactionService) RecentTransactions(ctx context.Context, limit int) []model.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	transactions, err := s.store.GetRecentTransactions(ctx, limit)
	if err != nil {
		common.LogError(err, "failed to get recent transactions", common.Fields{"limit": limit})
		return nil
	}
	return transactions
}

// TransactionsByDateRange returns transactions inside the inclusive range.
func (s *TransactionService) TransactionsByDateRange(ctx context.Context, start, end string) []model.Transaction {
	transactions, err := s.store.GetTransactionsByDateRange(ctx, start, end)
	if err != nil {
		common.LogError(err, "failed to get transactions by date range", common.Fields{"start": start, "end": end})
		return nil
	}
	return transactions
}

// AllTransactions returns the full ledger, newest date first.
func (s *TransactionService) AllTransactions(ctx context.Context) []model.Transaction {
	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		common.LogError(err, "failed to get all transactions", nil)
		return nil
	}
	return transactions
}

// Transaction returns a single transaction, or nil when it does not exist
// or the store fails.
func (s *TransactionService) Transaction(ctx context.Context, id string) *model.Transaction {
	txn, err := s.store.GetTransactionByID(ctx, id)
	if err != nil {
		common.LogError(err, "failed to get transaction", common.Fields{"id": id})
		return nil
	}
	return txn
}

// AddTransaction assigns a generated ID, inserts, and returns the stored
// row. Returns nil when the store rejects the insert.
func (s *TransactionService) AddTransaction(ctx context.Context, input AddTransactionInput) *model.Transaction {
	newTxn := model.NewTransaction{
		ID:       idgen.New(),
		Amount:   input.Amount,
		Type:     input.Type,
		Category: input.Category,
		Date:     input.Date,
		Memo:     input.Memo,
	}

	txn, err := s.store.CreateTransaction(ctx, newTxn)
	if err != nil {
		common.LogError(err, "failed to add transaction", common.Fields{"id": newTxn.ID})
		return nil
	}
	return txn
}

// UpdateTransaction applies a partial update and returns the updated row,
// or nil when the transaction does not exist or the store fails.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, upd model.TransactionUpdate) *model.Transaction {
	txn, err := s.store.UpdateTransaction(ctx, id, upd)
	if err != nil {
		common.LogError(err, "failed to update transaction", common.Fields{"id": id})
		return nil
	}
	return txn
}

// DeleteTransaction removes a transaction and reports whether a row was
// removed. Deleting the same ID twice returns false the second time.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) bool {
	deleted, err := s.store.DeleteTransaction(ctx, id)
	if err != nil {
		common.LogError(err, "failed to delete transaction", common.Fields{"id": id})
		return false
	}
	return deleted
}

// CalculateBalance aggregates a transaction set into income, expense, and
// net totals. Pure and order-independent.
func CalculateBalance(transactions []model.Transaction) model.Balance {
	var balance model.Balance
	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			balance.Income += txn.Amount
		case model.TypeExpense:
			balance.Expense += txn.Amount
		}
	}
	balance.Balance = balance.Income - balance.Expense
	return balance
}
