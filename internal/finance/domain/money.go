package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"PLN": "zł",
}

// RoundAmount rounds a monetary value to two decimal places using decimal
// arithmetic, so 2.675 rounds half-up to 2.68 instead of drifting on the
// float representation.
func RoundAmount(amount float64) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

// FormatCurrency renders an amount in the default currency, e.g. "$1,234.50".
func FormatCurrency(amount float64) string {
	return FormatAmount(amount, DefaultCurrency)
}

// FormatAmount renders an amount as a currency string with an en-US style
// thousands grouping and exactly two fraction digits. The sign precedes the
// symbol, so -1234.5 formats as "-$1,234.50". Unknown currency codes are
// prefixed verbatim.
func FormatAmount(amount float64, currencyCode string) string {
	symbol, ok := currencySymbols[currencyCode]
	if !ok {
		symbol = currencyCode + " "
	}
	amount = RoundAmount(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	printer := message.NewPrinter(language.English)
	formatted := printer.Sprint(number.Decimal(
		amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	return sign + symbol + formatted
}
