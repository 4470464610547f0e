package model

// Balance aggregates a set of transactions into income, expense, and net
// totals. All figures are whole yen.
type Balance struct {
	Income  int64
	Expense int64
	Balance int64
}
