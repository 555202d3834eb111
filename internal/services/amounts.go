package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// числовой префикс поля: "450.50 rs" даёт 450.50
var amountPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

const (
	maxAmountIntDigits = 15
	minAmountExponent  = -20
)

// ParseAmount - сумма из поля формы по числовому префиксу. Пустое, нечисловое
// или выходящее за денежный диапазон значение считается нулём.
func ParseAmount(s string) decimal.Decimal {
	prefix := amountPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	// экспонента проверяется до любой арифметики, иначе Round разворачивает число целиком
	exp := d.Exponent()
	if exp < minAmountExponent || exp > maxAmountIntDigits {
		return decimal.Zero
	}
	if int64(d.NumDigits())+int64(exp) > maxAmountIntDigits {
		return decimal.Zero
	}
	return d
}

// ComputeRemaining - остаток к оплате: max(0, round(total - advance, 2)).
// Одна и та же формула для предпросмотра в форме и для сохраняемого заказа.
func ComputeRemaining(total, advance decimal.Decimal) decimal.Decimal {
	remaining := total.Sub(advance).Round(2)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
