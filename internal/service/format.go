package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatAmount renders an amount as Japanese yen for display, with digit
// grouping and no decimal places ("￥1,000").
func FormatAmount(amount int64) string {
	return yenPrinter.Sprintf("￥%v", number.Decimal(amount))
}
