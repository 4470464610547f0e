package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/testutil"
)

func TestCalculateBalance(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		want         model.Balance
	}{
		{
			name:         "empty set",
			transactions: nil,
			want:         model.Balance{},
		},
		{
			name: "income only",
			transactions: []model.Transaction{
				{Type: model.TypeIncome, Amount: 300000},
				{Type: model.TypeIncome, Amount: 50000},
			},
			want: model.Balance{Income: 350000, Balance: 350000},
		},
		{
			name: "expense only",
			transactions: []model.Transaction{
				{Type: model.TypeExpense, Amount: 1200},
				{Type: model.TypeExpense, Amount: 800},
			},
			want: model.Balance{Expense: 2000, Balance: -2000},
		},
		{
			name: "mixed",
			transactions: []model.Transaction{
				{Type: model.TypeIncome, Amount: 1000},
				{Type: model.TypeExpense, Amount: 400},
				{Type: model.TypeExpense, Amount: 100},
			},
			want: model.Balance{Income: 1000, Expense: 500, Balance: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.CalculateBalance(tt.transactions)
			if got != tt.want {
				t.Errorf("CalculateBalance() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateBalance_OrderIndependent(t *testing.T) {
	forward := []model.Transaction{
		{Type: model.TypeIncome, Amount: 1000},
		{Type: model.TypeExpense, Amount: 400},
	}
	reversed := []model.Transaction{forward[1], forward[0]}

	if service.CalculateBalance(forward) != service.CalculateBalance(reversed) {
		t.Error("Expected balance to be independent of input order")
	}
}

func TestBalanceService_TodayBalance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	today := time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local)
	yesterday := "2025-01-14"

	db.MustCreateTransaction(ctx, model.NewTransaction{
		ID: "txn-today", Amount: 1000, Type: model.TypeIncome,
		Category: "給与", Date: "2025-01-15",
	})
	db.MustCreateTransaction(ctx, model.NewTransaction{
		ID: "txn-yesterday", Amount: 400, Type: model.TypeExpense,
		Category: "食費", Date: yesterday,
	})

	txns := service.NewTransactionService(db.Storage)
	balances := service.NewBalanceServiceAt(txns, func() time.Time { return today })

	got := balances.TodayBalance(ctx)
	want := model.Balance{Income: 1000, Balance: 1000}
	if got != want {
		t.Errorf("TodayBalance() = %+v, want %+v", got, want)
	}
}

func TestBalanceService_MonthlyBalance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	db.MustCreateTransaction(ctx, model.NewTransaction{
		ID: "txn-in-month", Amount: 1000, Type: model.TypeIncome,
		Category: "給与", Date: "2025-01-31",
	})
	db.MustCreateTransaction(ctx, model.NewTransaction{
		ID: "txn-next-month", Amount: 500, Type: model.TypeExpense,
		Category: "食費", Date: "2025-02-01",
	})

	txns := service.NewTransactionService(db.Storage)
	balances := service.NewBalanceServiceAt(txns, func() time.Time {
		return time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	})

	got := balances.MonthlyBalance(ctx)
	want := model.Balance{Income: 1000, Balance: 1000}
	if got != want {
		t.Errorf("MonthlyBalance() = %+v, want %+v", got, want)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart string
		wantEnd   string
	}{
		{name: "january", year: 2025, month: time.January, wantStart: "2025-01-01", wantEnd: "2025-01-31"},
		{name: "april has 30 days", year: 2025, month: time.April, wantStart: "2025-04-01", wantEnd: "2025-04-30"},
		{name: "february common year", year: 2025, month: time.February, wantStart: "2025-02-01", wantEnd: "2025-02-28"},
		{name: "february leap year", year: 2024, month: time.February, wantStart: "2024-02-01", wantEnd: "2024-02-29"},
		{name: "december", year: 2025, month: time.December, wantStart: "2025-12-01", wantEnd: "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := service.MonthRange(tt.year, tt.month)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("MonthRange(%d, %v) = (%s, %s), want (%s, %s)",
					tt.year, tt.month, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
