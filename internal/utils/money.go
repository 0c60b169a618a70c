package utils

import (
	"strconv"
)

// FormatMoney renders a fare the way receipts print it, e.g. "$120.00".
func FormatMoney(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatDistance renders a distance with its unit, e.g. "12.0 km".
func FormatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', 1, 64) + " km"
}
