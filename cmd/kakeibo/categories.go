package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/idgen"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, update, and delete the categories used to classify transactions.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories := service.NewCategoryService(store)

			var cats []model.Category
			if typeFlag != "" {
				catType, err := parseType(typeFlag)
				if err != nil {
					return err
				}
				cats = categories.CategoriesByType(ctx, catType)
			} else {
				cats = categories.AllCategories(ctx)
			}

			if len(cats) == 0 {
				fmt.Println(cli.FormatInfo("カテゴリがありません。'kakeibo seed' で初期カテゴリを作成できます。"))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Color"))

			for _, cat := range cats {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", cat.ID, cat.Icon, cat.Name, cat.Type, cat.Color)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "filter by type (income, expense)")

	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		idFlag    string
		typeFlag  string
		iconFlag  string
		colorFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			catType, err := parseType(typeFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories := service.NewCategoryService(store)

			if existing := categories.CategoryByName(ctx, name); existing != nil {
				return fmt.Errorf("category %q already exists", name)
			}

			id := idFlag
			if id == "" {
				// Keep the seeded exp_/inc_ prefix convention.
				prefix := "exp"
				if catType == model.TypeIncome {
					prefix = "inc"
				}
				id = fmt.Sprintf("%s_%s", prefix, idgen.New())
			}

			created := categories.CreateCategory(ctx, model.NewCategory{
				ID:    id,
				Name:  name,
				Type:  catType,
				Icon:  iconFlag,
				Color: colorFlag,
			})
			if created == nil {
				return fmt.Errorf("failed to create category %q", name)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("カテゴリ %s %s を作成しました (%s)", created.Icon, created.Name, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "category ID (default: generated with exp_/inc_ prefix)")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "category type (income, expense)")
	cmd.Flags().StringVar(&iconFlag, "icon", "📌", "display icon")
	cmd.Flags().StringVar(&colorFlag, "color", "#9E9E9E", "display color (hex)")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		nameFlag  string
		iconFlag  string
		colorFlag string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			var upd model.CategoryUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &nameFlag
			}
			if cmd.Flags().Changed("icon") {
				upd.Icon = &iconFlag
			}
			if cmd.Flags().Changed("color") {
				upd.Color = &colorFlag
			}
			if upd.Name == nil && upd.Icon == nil && upd.Color == nil {
				return fmt.Errorf("nothing to update: pass --name, --icon, or --color")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			updated := service.NewCategoryService(store).UpdateCategory(ctx, id, upd)
			if updated == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("カテゴリ %s が見つかりません", id)))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("カテゴリ %s %s を更新しました", updated.Icon, updated.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "new display name")
	cmd.Flags().StringVar(&iconFlag, "icon", "", "new icon")
	cmd.Flags().StringVar(&colorFlag, "color", "", "new color (hex)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Remove a category. Existing transactions keep their category name; they reference categories by name, not by ID.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if service.NewCategoryService(store).DeleteCategory(ctx, id) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("カテゴリ %s を削除しました", id)))
			} else {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("カテゴリ %s が見つかりません", id)))
			}
			return nil
		},
	}
}
