package service

import (
	"context"
	"log/slog"

	"github.com/yktomo/kakeibo/internal/common"
	"github.com/yktomo/kakeibo/internal/model"
)

// defaultCategories is the category set installed on first launch.
var defaultCategories = []model.NewCategory{
	// 支出カテゴリ
	{ID: "exp_food", Name: "食費", Type: model.TypeExpense, Icon: "🍽️", Color: "#FF9800"},
	{ID: "exp_transport", Name: "交通費", Type: model.TypeExpense, Icon: "🚃", Color: "#2196F3"},
	{ID: "exp_daily", Name: "日用品", Type: model.TypeExpense, Icon: "🧴", Color: "#9C27B0"},
	{ID: "exp_utilities", Name: "光熱費", Type: model.TypeExpense, Icon: "💡", Color: "#FF5722"},
	{ID: "exp_medical", Name: "医療費", Type: model.TypeExpense, Icon: "🏥", Color: "#E91E63"},
	{ID: "exp_entertainment", Name: "娯楽", Type: model.TypeExpense, Icon: "🎮", Color: "#3F51B5"},
	{ID: "exp_housing", Name: "住居費", Type: model.TypeExpense, Icon: "🏠", Color: "#795548"},
	{ID: "exp_communication", Name: "通信費", Type: model.TypeExpense, Icon: "📱", Color: "#607D8B"},
	{ID: "exp_insurance", Name: "保険・税金", Type: model.TypeExpense, Icon: "📋", Color: "#455A64"},
	{ID: "exp_education", Name: "教育費", Type: model.TypeExpense, Icon: "📚", Color: "#FF7043"},
	{ID: "exp_beauty", Name: "美容・健康", Type: model.TypeExpense, Icon: "💄", Color: "#EC407A"},
	{ID: "exp_clothing", Name: "衣服", Type: model.TypeExpense, Icon: "👕", Color: "#AB47BC"},
	{ID: "exp_social", Name: "交際費", Type: model.TypeExpense, Icon: "🍻", Color: "#FFAB40"},
	{ID: "exp_hobby", Name: "趣味", Type: model.TypeExpense, Icon: "🎨", Color: "#29B6F6"},
	{ID: "exp_misc", Name: "雑費", Type: model.TypeExpense, Icon: "📦", Color: "#8D6E63"},

	// 収入カテゴリ
	{ID: "inc_salary", Name: "給与", Type: model.TypeIncome, Icon: "💰", Color: "#4CAF50"},
	{ID: "inc_side_job", Name: "副業", Type: model.TypeIncome, Icon: "💻", Color: "#8BC34A"},
	{ID: "inc_bonus", Name: "ボーナス", Type: model.TypeIncome, Icon: "🎁", Color: "#689F38"},
	{ID: "inc_allowance", Name: "お小遣い", Type: model.TypeIncome, Icon: "💵", Color: "#7CB342"},
	{ID: "inc_investment", Name: "投資・配当", Type: model.TypeIncome, Icon: "📈", Color: "#558B2F"},
	{ID: "inc_refund", Name: "返金", Type: model.TypeIncome, Icon: "↩️", Color: "#9CCC65"},
	{ID: "inc_sales", Name: "売上", Type: model.TypeIncome, Icon: "🏪", Color: "#66BB6A"},
	{ID: "inc_other", Name: "その他", Type: model.TypeIncome, Icon: "➕", Color: "#AED581"},
}

// DefaultCategories returns a copy of the first-launch category set.
func DefaultCategories() []model.NewCategory {
	cats := make([]model.NewCategory, len(defaultCategories))
	copy(cats, defaultCategories)
	return cats
}

// Seeder installs the default categories on first launch.
type Seeder struct {
	store Storage
}

// NewSeeder creates a seeder backed by store.
func NewSeeder(store Storage) *Seeder {
	return &Seeder{store: store}
}

// SeedCategories bulk-inserts the default category set if the categories
// table is empty, and is a no-op otherwise. Idempotent by construction: the
// guard is the existence check, not an upsert. Failures are logged and
// swallowed so a seeding problem never blocks startup.
func (s *Seeder) SeedCategories(ctx context.Context) {
	count, err := s.store.CountCategories(ctx)
	if err != nil {
		common.LogError(err, "failed to check existing categories", nil)
		return
	}
	if count > 0 {
		slog.Debug("categories already exist, skipping seed", "count", count)
		return
	}

	if err := s.store.CreateCategories(ctx, DefaultCategories()); err != nil {
		common.LogError(err, "failed to seed default categories", nil)
		return
	}
	slog.Info("seeded default categories", "count", len(defaultCategories))
}
