package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/service"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the default categories",
		Long: `Install the default category set into an empty database.

Seeding is idempotent: if any categories already exist, nothing is
written. The same seeding also runs automatically on every command, so
this is mostly useful after deleting all categories by hand.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			// initStorage already seeded; report the resulting state.
			count := len(service.NewCategoryService(store).AllCategories(ctx))
			if count == 0 {
				fmt.Println(cli.FormatWarning("カテゴリの作成に失敗しました。ログを確認してください。"))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("カテゴリは %d 件あります", count)))
			return nil
		},
	}
}
