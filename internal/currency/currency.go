// Package currency formats rupee amounts the way the marketing site and
// dashboard display them: crore/lakh/thousand abbreviations for large
// amounts and Indian-system digit grouping for everything else.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Locale is the fixed presentation locale. The backend does not convert
// currencies, all amounts are INR.
var Locale = language.MustParse("en-IN")

var (
	crore    = decimal.NewFromInt(10000000)
	lakh     = decimal.NewFromInt(100000)
	thousand = decimal.NewFromInt(1000)
)

// Format renders an amount of whole rupees for display.
//
// Thresholds: one crore and above is abbreviated to "Cr" with two decimals,
// one lakh and above to "L" with two decimals, one thousand and above to
// "K" with one decimal. Smaller amounts are grouped in the Indian system.
func Format(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(crore):
		return "₹" + amount.Div(crore).StringFixed(2) + " Cr"
	case amount.GreaterThanOrEqual(lakh):
		return "₹" + amount.Div(lakh).StringFixed(2) + " L"
	case amount.GreaterThanOrEqual(thousand):
		return "₹" + amount.Div(thousand).StringFixed(1) + "K"
	}

	return "₹" + Group(amount)
}

// Group renders the integer part of an amount with Indian-system digit
// grouping: the last three digits form one group, all digits before that
// are grouped in pairs (12,34,56,789).
func Group(amount decimal.Decimal) string {
	digits := amount.Round(0).Abs().String()

	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		groups = append(groups, digits[len(digits)-3:])
	} else {
		groups = []string{digits}
	}

	grouped := strings.Join(groups, ",")
	if amount.Round(0).IsNegative() {
		return "-" + grouped
	}

	return grouped
}
