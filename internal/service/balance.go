package service

import (
	"context"
	"time"

	"github.com/yktomo/kakeibo/internal/model"
)

// BalanceService derives today and current-month aggregates from the ledger.
// Every call re-queries the store; the data volume is small and local, so no
// caching is warranted.
type BalanceService struct {
	transactions *TransactionService
	now          func() time.Time
}

// NewBalanceService creates a balance service over txns.
func NewBalanceService(txns *TransactionService) *BalanceService {
	return NewBalanceServiceAt(txns, time.Now)
}

// NewBalanceServiceAt creates a balance service with an explicit clock.
func NewBalanceServiceAt(txns *TransactionService, now func() time.Time) *BalanceService {
	return &BalanceService{
		transactions: txns,
		now:          now,
	}
}

// TodayBalance aggregates the transactions dated today (system local date).
func (s *BalanceService) TodayBalance(ctx context.Context) model.Balance {
	today := s.now().Format(model.DateLayout)
	return CalculateBalance(s.transactions.TransactionsByDateRange(ctx, today, today))
}

// MonthlyBalance aggregates the transactions of the current calendar month.
func (s *BalanceService) MonthlyBalance(ctx context.Context) model.Balance {
	now := s.now()
	start, end := MonthRange(now.Year(), now.Month())
	return CalculateBalance(s.transactions.TransactionsByDateRange(ctx, start, end))
}

// MonthRange returns the first and last calendar day of a month as
// YYYY-MM-DD strings.
func MonthRange(year int, month time.Month) (start, end string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first.Format(model.DateLayout), last.Format(model.DateLayout)
}
