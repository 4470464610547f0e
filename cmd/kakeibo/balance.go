package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show today's and this month's balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			balances := service.NewBalanceService(service.NewTransactionService(store))

			fmt.Println(cli.RenderBox("今日の収支", renderBalance(balances.TodayBalance(ctx))))
			fmt.Println(cli.RenderBox("今月の収支", renderBalance(balances.MonthlyBalance(ctx))))
			return nil
		},
	}
}

func renderBalance(b model.Balance) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("収入  %s\n", cli.IncomeStyle.Render(service.FormatAmount(b.Income))))
	sb.WriteString(fmt.Sprintf("支出  %s\n", cli.ExpenseStyle.Render(service.FormatAmount(b.Expense))))

	net := service.FormatAmount(b.Balance)
	if b.Balance < 0 {
		net = cli.ExpenseStyle.Render("-" + service.FormatAmount(-b.Balance))
	} else {
		net = cli.BoldStyle.Render(net)
	}
	sb.WriteString(fmt.Sprintf("残高  %s", net))
	return sb.String()
}
