package service

import (
	"context"

	"github.com/yktomo/kakeibo/internal/common"
	"github.com/yktomo/kakeibo/internal/model"
)

// CategoryService provides lookup and maintenance operations over categories.
type CategoryService struct {
	store Storage
}

// NewCategoryService creates a category service backed by store.
func NewCategoryService(store Storage) *CategoryService {
	return &CategoryService{store: store}
}

// AllCategories returns every category, or an empty view on store failure.
func (s *CategoryService) AllCategories(ctx context.Context) []model.Category {
	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		common.LogError(err, "failed to get all categories", nil)
		return nil
	}
	return categories
}

// CategoriesByType returns the categories of one type.
func (s *CategoryService) CategoriesByType(ctx context.Context, categoryType model.TransactionType) []model.Category {
	categories, err := s.store.GetCategoriesByType(ctx, categoryType)
	if err != nil {
		common.LogError(err, "failed to get categories by type", common.Fields{"type": categoryType})
		return nil
	}
	return categories
}

// CategoryByName returns the category with the given display name, or nil.
func (s *CategoryService) CategoryByName(ctx context.Context, name string) *model.Category {
	category, err := s.store.GetCategoryByName(ctx, name)
	if err != nil {
		common.LogError(err, "failed to get category by name", common.Fields{"name": name})
		return nil
	}
	return category
}

// CategoryByID returns the category with the given ID, or nil.
func (s *CategoryService) CategoryByID(ctx context.Context, id string) *model.Category {
	category, err := s.store.GetCategoryByID(ctx, id)
	if err != nil {
		common.LogError(err, "failed to get category by id", common.Fields{"id": id})
		return nil
	}
	return category
}

// CreateCategory inserts one category and returns the stored row, or nil on
// failure.
func (s *CategoryService) CreateCategory(ctx context.Context, cat model.NewCategory) *model.Category {
	created, err := s.store.CreateCategory(ctx, cat)
	if err != nil {
		common.LogError(err, "failed to create category", common.Fields{"id": cat.ID})
		return nil
	}
	return created
}

// UpdateCategory applies a partial update and returns the updated row, or
// nil when the category does not exist or the store fails.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, upd model.CategoryUpdate) *model.Category {
	updated, err := s.store.UpdateCategory(ctx, id, upd)
	if err != nil {
		common.LogError(err, "failed to update category", common.Fields{"id": id})
		return nil
	}
	return updated
}

// DeleteCategory removes a category and reports whether a row was removed.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) bool {
	deleted, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		common.LogError(err, "failed to delete category", common.Fields{"id": id})
		return false
	}
	return deleted
}
