// Package costing derives USD figures from a deal's cost sheet.
package costing

import (
	"math"
	"strconv"
	"strings"

	"freight_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ParseLocaleNumber reads a number typed with "." thousands and "," decimal
// separators. Empty or unparseable input is 0; it never fails.
func ParseLocaleNumber(s string) float64 {
	v, ok := parseLocale(s)
	if !ok {
		return 0
	}
	return v
}

func parseLocale(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}

// amountValue converts a sheet cell to a float. Numeric cells are taken as is;
// text cells go through locale parsing.
func amountValue(a entities.Amount) float64 {
	if n, ok := a.Number(); ok {
		if !finite(n) {
			return 0
		}
		return n
	}
	return ParseLocaleNumber(a.Text())
}

// overrideValue is stricter than amountValue: the cell must really hold a
// number. Plain "1234.5" is accepted before falling back to locale form.
func overrideValue(a entities.Amount) (float64, bool) {
	if n, ok := a.Number(); ok {
		return n, finite(n)
	}
	text := strings.TrimSpace(a.Text())
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v, finite(v)
	}
	return parseLocale(text)
}

// Round2 rounds half away from zero to cents.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
