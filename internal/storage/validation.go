// Package storage provides the data persistence layer for the kakeibo application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yktomo/kakeibo/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidLimit       = errors.New("limit must be positive")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDate ensures a string is a well-formed calendar date.
func validateDate(s string, paramName string) error {
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidDate, paramName, s)
	}
	return nil
}

// validateDateRange ensures start and end are well-formed and ordered.
func validateDateRange(start, end string) error {
	if err := validateDate(start, "start"); err != nil {
		return err
	}
	if err := validateDate(end, "end"); err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}
	return nil
}

// validateNewTransaction validates the caller-supplied fields of an insert.
func validateNewTransaction(txn *model.NewTransaction) error {
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	if txn.Amount < 1 || txn.Amount > model.MaxAmount {
		return fmt.Errorf("%w: amount %d out of range", ErrInvalidTransaction, txn.Amount)
	}
	if strings.TrimSpace(txn.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if err := validateDate(txn.Date, "date"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	if utf8.RuneCountInString(txn.Memo) > model.MaxMemoLength {
		return fmt.Errorf("%w: memo too long", ErrInvalidTransaction)
	}
	return nil
}

// validateNewCategory validates the fields of a category insert.
func validateNewCategory(cat *model.NewCategory) error {
	if cat.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if !cat.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidCategory, cat.Type)
	}
	return nil
}
