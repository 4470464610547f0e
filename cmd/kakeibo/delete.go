package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/service"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Remove a transaction permanently. There is no undo.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if service.NewTransactionService(store).DeleteTransaction(ctx, id) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("取引 %s を削除しました", id)))
			} else {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("取引 %s が見つかりません", id)))
			}
			return nil
		},
	}
}
