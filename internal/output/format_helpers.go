package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	money "github.com/whatif/growth-simulator/pkg/decimal"
)

// FormatCurrency formats a decimal as grouped USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
