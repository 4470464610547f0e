package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/tui"
	"github.com/yktomo/kakeibo/internal/validation"
)

func addCmd() *cobra.Command {
	var (
		amountFlag   string
		typeFlag     string
		categoryFlag string
		dateFlag     string
		memoFlag     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction.

Without flags an interactive form opens. With --amount and --category the
transaction is recorded directly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			// No flags: open the interactive form.
			if amountFlag == "" && categoryFlag == "" {
				saved, err := tui.Run(ctx, store)
				if err != nil {
					return err
				}
				if saved == nil {
					fmt.Println(cli.FormatInfo("キャンセルしました"))
					return nil
				}
				printSaved(saved)
				return nil
			}

			txnType, err := parseType(typeFlag)
			if err != nil {
				return err
			}
			if dateFlag == "" {
				dateFlag = time.Now().Format(model.DateLayout)
			}

			return addDirect(ctx, store, directAddInput{
				amount:   amountFlag,
				txnType:  txnType,
				category: categoryFlag,
				date:     dateFlag,
				memo:     memoFlag,
			})
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "amount in whole yen")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "category name")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&memoFlag, "memo", "", "optional memo (200 characters max)")

	return cmd
}

type directAddInput struct {
	amount   string
	category string
	date     string
	memo     string
	txnType  model.TransactionType
}

// addDirect validates the flag values with the same schema as the form and
// records the transaction.
func addDirect(ctx context.Context, store service.Storage, input directAddInput) error {
	categories := service.NewCategoryService(store)

	// The category must exist with a matching type; the check lives here at
	// the form boundary, not in the data layer.
	category := categories.CategoryByName(ctx, input.category)
	categoryID := ""
	if category != nil && category.Type == input.txnType {
		categoryID = category.ID
	}

	errs := validation.Validate(validation.Form{
		Amount:     input.amount,
		CategoryID: categoryID,
		Date:       input.date,
		Memo:       input.memo,
	})
	if len(errs) > 0 {
		for _, field := range []string{validation.FieldAmount, validation.FieldCategory, validation.FieldDate, validation.FieldMemo} {
			if msg, found := errs[field]; found {
				fmt.Println(cli.FormatError(msg))
			}
		}
		return fmt.Errorf("validation failed")
	}

	amount, err := strconv.ParseInt(input.amount, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	saved := service.NewTransactionService(store).AddTransaction(ctx, service.AddTransactionInput{
		Amount:   amount,
		Type:     input.txnType,
		Category: category.Name,
		Date:     input.date,
		Memo:     input.memo,
	})
	if saved == nil {
		return fmt.Errorf("failed to record transaction")
	}

	printSaved(saved)
	return nil
}

func printSaved(txn *model.Transaction) {
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s を記録しました (%s)",
		txn.Category, signedAmount(*txn), txn.Date)))
}
