package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome marks a transaction that adds to the balance.
	TypeIncome TransactionType = "income"
	// TypeExpense marks a transaction that subtracts from the balance.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// MaxAmount is the largest amount a single transaction may carry (10 million yen).
const MaxAmount int64 = 10_000_000

// MaxMemoLength is the longest memo accepted, in runes.
const MaxMemoLength = 200

// DateLayout is the storage format for transaction dates.
const DateLayout = "2006-01-02"

// Transaction represents a single recorded income or expense event.
// Amount is in whole yen. Date is a calendar date in YYYY-MM-DD form.
// Category holds a category name, not an ID; the pairing with a real
// category is checked at form-validation time only.
type Transaction struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Category  string
	Date      string
	Memo      string
	Type      TransactionType
	Amount    int64
}

// NewTransaction carries the caller-supplied fields for an insert.
// The storage layer assigns created_at and updated_at.
type NewTransaction struct {
	ID       string
	Category string
	Date     string
	Memo     string
	Type     TransactionType
	Amount   int64
}

// TransactionUpdate holds a partial update; nil fields are left unchanged.
// Type is deliberately absent: a transaction never changes direction after
// creation.
type TransactionUpdate struct {
	Amount   *int64
	Category *string
	Date     *string
	Memo     *string
}
