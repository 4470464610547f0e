// Package calendar generates the month grid backing the calendar view.
package calendar

import (
	"fmt"
	"time"

	"github.com/yktomo/kakeibo/internal/model"
)

// GridSize is the fixed number of cells in a month grid (6 weeks × 7 days).
const GridSize = 42

// WeekDays is the Japanese weekday header row, Sunday first.
var WeekDays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// Day is one cell of the month grid.
type Day struct {
	Date       time.Time
	Day        int
	InMonth    bool
	IsToday    bool
	IsSelected bool
}

// DateString returns the cell's date in YYYY-MM-DD form.
func (d Day) DateString() string {
	return d.Date.Format(model.DateLayout)
}

// MonthGrid builds the 42-cell grid for a month: the tail of the previous
// month up to the month's first weekday, the month itself, then the head of
// the next month. The grid always starts on Sunday.
func MonthGrid(year int, month time.Month, today, selected time.Time) []Day {
	days := make([]Day, 0, GridSize)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	leading := int(first.Weekday())

	for offset := leading; offset > 0; offset-- {
		days = append(days, newDay(first.AddDate(0, 0, -offset), false, today, selected))
	}

	last := first.AddDate(0, 1, -1)
	for day := 1; day <= last.Day(); day++ {
		days = append(days, newDay(time.Date(year, month, day, 0, 0, 0, 0, time.Local), true, today, selected))
	}

	for offset := 1; len(days) < GridSize; offset++ {
		days = append(days, newDay(last.AddDate(0, 0, offset), false, today, selected))
	}

	return days
}

func newDay(date time.Time, inMonth bool, today, selected time.Time) Day {
	return Day{
		Date:       date,
		Day:        date.Day(),
		InMonth:    inMonth,
		IsToday:    sameDay(date, today),
		IsSelected: sameDay(date, selected),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// PrevMonth returns the year and month before the given one.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth returns the year and month after the given one.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// MonthTitle renders a month heading like "2025年1月".
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%d年%d月", year, int(month))
}
