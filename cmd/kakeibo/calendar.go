package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yktomo/kakeibo/internal/calendar"
	"github.com/yktomo/kakeibo/internal/cli"
	"github.com/yktomo/kakeibo/internal/model"
	"github.com/yktomo/kakeibo/internal/service"
)

const calendarCellWidth = 8

func calendarCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month calendar with daily totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			year, month := now.Year(), now.Month()
			if monthFlag != "" {
				var err error
				year, month, err = parseMonth(monthFlag)
				if err != nil {
					return err
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			history := service.NewHistoryService(service.NewTransactionService(store))
			grouped := service.GroupTransactionsByDate(history.TransactionsByMonth(ctx, year, month))

			fmt.Println(cli.FormatTitle(calendar.MonthTitle(year, month)))
			printCalendar(calendar.MonthGrid(year, month, now, now), grouped)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to show (YYYY-MM, default current)")

	return cmd
}

func printCalendar(days []calendar.Day, grouped map[string][]model.Transaction) {
	header := make([]string, len(calendar.WeekDays))
	for i, wd := range calendar.WeekDays {
		header[i] = cli.TableHeaderStyle.Width(calendarCellWidth).Align(lipgloss.Center).Render(wd)
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for week := 0; week < len(days); week += 7 {
		cells := make([]string, 7)
		for i, day := range days[week : week+7] {
			cells[i] = renderCell(day, grouped[day.DateString()])
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
}

func renderCell(day calendar.Day, txns []model.Transaction) string {
	style := lipgloss.NewStyle().Width(calendarCellWidth).Align(lipgloss.Center)
	if !day.InMonth {
		style = style.Foreground(cli.SubtleColor)
	}
	if day.IsToday {
		style = style.Bold(true).Foreground(cli.PrimaryColor)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d", day.Day))
	if len(txns) > 0 {
		net := service.CalculateBalance(txns).Balance
		sb.WriteString("\n")
		if net >= 0 {
			sb.WriteString(cli.IncomeStyle.Render(fmt.Sprintf("+%d", net)))
		} else {
			sb.WriteString(cli.ExpenseStyle.Render(fmt.Sprintf("%d", net)))
		}
	} else {
		sb.WriteString("\n ")
	}
	return style.Render(sb.String())
}
