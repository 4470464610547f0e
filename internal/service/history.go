package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yktomo/kakeibo/internal/model"
)

// weekdays is the Japanese single-character weekday table, indexed by
// time.Weekday (0 = Sunday).
var weekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// HistoryService derives grouped-by-date views from the ledger.
type HistoryService struct {
	transactions *TransactionService
}

// NewHistoryService creates a history service over txns.
func NewHistoryService(txns *TransactionService) *HistoryService {
	return &HistoryService{transactions: txns}
}

// TransactionHistory returns the full ledger, newest date first.
func (s *HistoryService) TransactionHistory(ctx context.Context) []model.Transaction {
	return s.transactions.AllTransactions(ctx)
}

// TransactionsByMonth returns the transactions of the given calendar month,
// first day through last day inclusive.
func (s *HistoryService) TransactionsByMonth(ctx context.Context, year int, month time.Month) []model.Transaction {
	start, end := MonthRange(year, month)
	return s.transactions.TransactionsByDateRange(ctx, start, end)
}

// GroupTransactionsByDate maps each date to the transactions on that date,
// preserving the input's relative order within each group. Map iteration
// order is unspecified; sorting group keys for display is the presentation
// layer's concern.
func GroupTransactionsByDate(transactions []model.Transaction) map[string][]model.Transaction {
	grouped := make(map[string][]model.Transaction)
	for _, txn := range transactions {
		grouped[txn.Date] = append(grouped[txn.Date], txn)
	}
	return grouped
}

// FormatDate renders a YYYY-MM-DD date as "M月D日(曜)". A string that does
// not parse is returned unchanged.
func FormatDate(dateString string) string {
	date, err := time.Parse(model.DateLayout, dateString)
	if err != nil {
		return dateString
	}
	return fmt.Sprintf("%d月%d日(%s)", int(date.Month()), date.Day(), weekdays[date.Weekday()])
}
