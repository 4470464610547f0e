package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yktomo/kakeibo/internal/common"
	"github.com/yktomo/kakeibo/internal/model"
)

const categoryColumns = `id, name, type, icon, color, created_at`

// GetCategories returns all categories in insertion order.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM categories ORDER BY rowid`, categoryColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories, err := scanCategories(rows)
	if err != nil {
		return nil, err
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoriesByType returns the categories of a single type in insertion order.
func (s *SQLiteStorage) GetCategoriesByType(ctx context.Context, categoryType model.TransactionType) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !categoryType.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidCategory, categoryType)
	}

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE type = ? ORDER BY rowid`, categoryColumns)
	rows, err := s.db.QueryContext(ctx, query, string(categoryType))
	if err != nil {
		return nil, fmt.Errorf("failed to query categories by type: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanCategories(rows)
}

// GetCategoryByName returns a category by its display name, or nil when no
// category carries that name.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE name = ? LIMIT 1`, categoryColumns)
	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return cat, nil
}

// GetCategoryByID returns a category by its ID, or nil when absent.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = ?`, categoryColumns)
	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return cat, nil
}

// CreateCategory creates a single category and returns the stored row.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, cat model.NewCategory) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateNewCategory(&cat); err != nil {
		return nil, err
	}

	now := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, type, icon, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		cat.ID, cat.Name, string(cat.Type), cat.Icon, cat.Color, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category %s: %w", cat.ID, err)
	}

	slog.Info("created category", "id", cat.ID, "name", cat.Name, "type", cat.Type)
	return s.GetCategoryByID(ctx, cat.ID)
}

// CreateCategories bulk-inserts categories inside a single transaction.
// Used by the seeder on first launch.
func (s *SQLiteStorage) CreateCategories(ctx context.Context, cats []model.NewCategory) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(cats) == 0 {
		return fmt.Errorf("%w: categories", ErrEmptySlice)
	}
	for i := range cats {
		if err := validateNewCategory(&cats[i]); err != nil {
			return fmt.Errorf("category at index %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO categories (id, name, type, icon, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now()
	for _, cat := range cats {
		if _, err := stmt.ExecContext(ctx, cat.ID, cat.Name, string(cat.Type), cat.Icon, cat.Color, now); err != nil {
			return fmt.Errorf("failed to insert category %s: %w", cat.ID, err)
		}
	}

	return tx.Commit()
}

// UpdateCategory merges the non-nil fields of upd into the category with the
// given ID and returns the updated row.
// Returns common.ErrNotFound when no row matches.
func (s *SQLiteStorage) UpdateCategory(ctx context.Context, id string, upd model.CategoryUpdate) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if upd.Name != nil {
		if err := validateString(*upd.Name, "name"); err != nil {
			return nil, err
		}
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Icon != nil {
		sets = append(sets, "icon = ?")
		args = append(args, *upd.Icon)
	}
	if upd.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *upd.Color)
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidCategory)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE categories SET %s WHERE id = ?`, strings.Join(sets, ", "))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}

	return s.GetCategoryByID(ctx, id)
}

// DeleteCategory removes the category with the given ID and reports whether
// a row was actually removed.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(id, "id"); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	return affected > 0, nil
}

// CountCategories returns the total number of categories. The seeder uses
// this as its existence check.
func (s *SQLiteStorage) CountCategories(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var cat model.Category
	var catType string

	err := row.Scan(
		&cat.ID,
		&cat.Name,
		&catType,
		&cat.Icon,
		&cat.Color,
		&cat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	cat.Type = model.TransactionType(catType)
	return &cat, nil
}

func scanCategories(rows *sql.Rows) ([]model.Category, error) {
	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *cat)
	}
	return categories, rows.Err()
}
