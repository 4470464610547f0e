package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/service"
)

// csvHeader is the column layout shared by export and import.
var csvHeader = []string{"id", "amount", "type", "category", "date", "memo", "created_at", "updated_at"}

func exportCmd() *cobra.Command {
	var (
		outFlag   string
		monthFlag string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		Long: `Write the ledger to a CSV file, newest date first.

With --month only that month's transactions are exported.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := service.NewTransactionService(store)

			txns := transactions.AllTransactions(ctx)
			if monthFlag != "" {
				year, month, err := parseMonth(monthFlag)
				if err != nil {
					return err
				}
				start, end := service.MonthRange(year, month)
				txns = transactions.TransactionsByDateRange(ctx, start, end)
			}

			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outFlag, err)
			}
			defer f.Close()

			w := csv.NewWriter(f)
			if err := w.Write(csvHeader); err != nil {
				return fmt.Errorf("failed to write CSV header: %w", err)
			}
			for _, txn := range txns {
				record := []string{
					txn.ID,
					strconv.FormatInt(txn.Amount, 10),
					string(txn.Type),
					txn.Category,
					txn.Date,
					txn.Memo,
					txn.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
					txn.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
				}
				if err := w.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("failed to flush CSV: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d 件の取引を %s に書き出しました", len(txns), outFlag)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "kakeibo.csv", "output file path")
	cmd.Flags().StringVar(&monthFlag, "month", "", "export only one month (YYYY-MM)")

	return cmd
}
