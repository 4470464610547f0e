package model

import "time"

// Category represents a named, typed classification with display metadata.
// Categories are created once by the seeder and are read-only afterwards
// from the application's point of view.
type Category struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Icon      string
	Color     string
	Type      TransactionType
}

// NewCategory carries the fields for a category insert. IDs are assigned by
// the caller using stable semantic prefixes (exp_*, inc_*).
type NewCategory struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Type  TransactionType
}

// CategoryUpdate holds a partial category update; nil fields are unchanged.
type CategoryUpdate struct {
	Name  *string
	Icon  *string
	Color *string
}
