package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/validation"
)

func editCmd() *cobra.Command {
	var (
		amountFlag   string
		categoryFlag string
		dateFlag     string
		memoFlag     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long:  `Update the amount, category, date, or memo of an existing transaction. The type never changes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			var upd model.TransactionUpdate

			if cmd.Flags().Changed("amount") {
				if msg := validation.ValidateField(validation.FieldAmount, amountFlag); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				amount, err := strconv.ParseInt(amountFlag, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid amount: %w", err)
				}
				upd.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				upd.Category = &categoryFlag
			}
			if cmd.Flags().Changed("date") {
				if msg := validation.ValidateField(validation.FieldDate, dateFlag); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				upd.Date = &dateFlag
			}
			if cmd.Flags().Changed("memo") {
				if msg := validation.ValidateField(validation.FieldMemo, memoFlag); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				upd.Memo = &memoFlag
			}

			if upd.Amount == nil && upd.Category == nil && upd.Date == nil && upd.Memo == nil {
				return fmt.Errorf("nothing to update: pass --amount, --category, --date, or --memo")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			updated := service.NewTransactionService(store).UpdateTransaction(ctx, id, upd)
			if updated == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("取引 %s が見つかりません", id)))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s を更新しました (%s)",
				updated.Category, signedAmount(*updated), updated.Date)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "new amount in whole yen")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "new category name")
	cmd.Flags().StringVar(&dateFlag, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&memoFlag, "memo", "", "new memo")

	return cmd
}
