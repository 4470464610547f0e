package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/service"
	"github.com/yktomo/kakeibo/internal/validation"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from CSV",
		Long: `Read transactions from a CSV file and add them to the ledger.

The file must carry a header row naming at least the amount, type,
category, and date columns; memo is optional. Each row gets a freshly
generated ID, so importing an export creates new rows rather than
restoring old ones. Rows that fail validation are skipped and reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			records, err := readCSVRecords(path)
			if err != nil {
				return err
			}
			if len(records) < 2 {
				fmt.Println(cli.FormatInfo("読み込む取引がありません"))
				return nil
			}

			columns, err := csvColumnIndex(records[0])
			if err != nil {
				return err
			}
			rows := records[1:]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := service.NewTransactionService(store)
			categories := service.NewCategoryService(store)

			bar := progressbar.NewOptions(len(rows),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("取引を読み込み中..."),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			var imported, skipped int
			for i, row := range rows {
				line := i + 2 // 1-based, after the header

				if err := bar.Add(1); err != nil {
					slog.Warn("failed to update progress bar", "error", err)
				}

				input, reason := parseCSVRow(ctx, categories, columns, row)
				if reason != "" {
					skipped++
					fmt.Println(cli.FormatWarning(fmt.Sprintf("%d行目をスキップしました: %s", line, reason)))
					continue
				}

				if dryRun {
					imported++
					continue
				}
				if transactions.AddTransaction(ctx, input) == nil {
					skipped++
					fmt.Println(cli.FormatWarning(fmt.Sprintf("%d行目の保存に失敗しました", line)))
					continue
				}
				imported++
			}

			if dryRun {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("%d 件取り込み可能、%d 件スキップ (dry run)", imported, skipped)))
				return nil
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d 件の取引を取り込みました (%d 件スキップ)", imported, skipped)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate rows without writing")

	return cmd
}

// readCSVRecords loads every record of a CSV file, header included.
func readCSVRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// csvColumnIndex maps the header row to column positions. The amount,
// type, category, and date columns are required; memo is optional.
func csvColumnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"amount", "type", "category", "date"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing the %q column", required)
		}
	}
	return columns, nil
}

// parseCSVRow converts one record into transaction input, running it
// through the same validation as the add form. Returns a non-empty
// reason when the row must be skipped.
func parseCSVRow(ctx context.Context, categories *service.CategoryService, columns map[string]int, row []string) (service.AddTransactionInput, string) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	txnType, err := parseType(cell("type"))
	if err != nil {
		return service.AddTransactionInput{}, err.Error()
	}

	categoryName := cell("category")
	category := categories.CategoryByName(ctx, categoryName)
	categoryID := ""
	if category != nil && category.Type == txnType {
		categoryID = category.ID
	}

	form := validation.Form{
		Amount:     cell("amount"),
		CategoryID: categoryID,
		Date:       cell("date"),
		Memo:       cell("memo"),
	}
	if errs := validation.Validate(form); len(errs) != 0 {
		for _, field := range []string{validation.FieldAmount, validation.FieldCategory, validation.FieldDate, validation.FieldMemo} {
			if msg, ok := errs[field]; ok {
				return service.AddTransactionInput{}, msg
			}
		}
	}

	amount, err := strconv.ParseInt(form.Amount, 10, 64)
	if err != nil {
		return service.AddTransactionInput{}, "1円以上の数値を入力してください"
	}

	return service.AddTransactionInput{
		Amount:   amount,
		Type:     txnType,
		Category: categoryName,
		Date:     form.Date,
		Memo:     form.Memo,
	}, ""
}
