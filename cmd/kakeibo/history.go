package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
)

func historyCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show transaction history grouped by date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			history := service.NewHistoryService(service.NewTransactionService(store))

			var transactions []model.Transaction
			if monthFlag != "" {
				year, month, err := parseMonth(monthFlag)
				if err != nil {
					return err
				}
				transactions = history.TransactionsByMonth(ctx, year, month)
			} else {
				transactions = history.TransactionHistory(ctx)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.FormatInfo("履歴がありません"))
				return nil
			}

			grouped := service.GroupTransactionsByDate(transactions)

			// Newest date first for display.
			dates := make([]string, 0, len(grouped))
			for date := range grouped {
				dates = append(dates, date)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(dates)))

			for _, date := range dates {
				dayBalance := service.CalculateBalance(grouped[date])
				fmt.Printf("%s %s\n",
					cli.BoldStyle.Render(service.FormatDate(date)),
					cli.SubtleStyle.Render(service.FormatAmount(dayBalance.Balance)))

				for _, txn := range grouped[date] {
					amount := signedAmount(txn)
					if txn.Type == model.TypeIncome {
						amount = cli.IncomeStyle.Render(amount)
					} else {
						amount = cli.ExpenseStyle.Render(amount)
					}
					line := fmt.Sprintf("  %s  %s", txn.Category, amount)
					if txn.Memo != "" {
						line += "  " + cli.SubtleStyle.Render(txn.Memo)
					}
					fmt.Println(line)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "limit to one month (YYYY-MM)")

	return cmd
}
