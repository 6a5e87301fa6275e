// Package ocp holds what both payment processors share.
package ocp

import "strconv"

// FormatAmount renders the shortest decimal form: 100, 50.5.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
