package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
)

func listCmd() *cobra.Command {
	var (
		limitFlag int
		allFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txns := service.NewTransactionService(store)

			var transactions []model.Transaction
			if allFlag {
				transactions = txns.AllTransactions(ctx)
			} else {
				transactions = txns.RecentTransactions(ctx, limitFlag)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.FormatInfo("取引がまだありません。'kakeibo add' で記帳しましょう。"))
				return nil
			}

			printTransactions(transactions)
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", service.DefaultRecentLimit, "number of transactions to show")
	cmd.Flags().BoolVar(&allFlag, "all", false, "show the full ledger")

	return cmd
}

func printTransactions(transactions []model.Transaction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Amount"),
		cli.TableHeaderStyle.Render("Memo"),
		cli.TableHeaderStyle.Render("ID"))

	for _, txn := range transactions {
		amount := signedAmount(txn)
		if txn.Type == model.TypeIncome {
			amount = cli.IncomeStyle.Render(amount)
		} else {
			amount = cli.ExpenseStyle.Render(amount)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			txn.Date,
			txn.Category,
			amount,
			txn.Memo,
			cli.SubtleStyle.Render(txn.ID))
	}
}
