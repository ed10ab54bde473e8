// Package catalog turns the flat rows of the partner pricing feed into the
// nested course, offering and enrollment model the rest of the application
// consumes.
package catalog

import (
	"strconv"
	"strings"
)

// parsePrice converts a feed price string ("1.234,56", "R$ 899,90",
// "899.90") into a float. Returns nil when the value is missing or does not
// parse; callers keep the original string alongside.
func parsePrice(s string) *float64 {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "R$")
	t = strings.ReplaceAll(t, " ", "")
	if t == "" {
		return nil
	}

	// Brazilian display format: "." separates thousands, "," the decimals.
	if strings.Contains(t, ",") {
		t = strings.ReplaceAll(t, ".", "")
		t = strings.Replace(t, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil
	}
	return &v
}
