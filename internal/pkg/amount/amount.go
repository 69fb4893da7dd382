// Package amount parses the free-text currency amounts the back office
// stores on its records.
package amount

import (
	"strconv"
	"strings"
)

// Parse converts a text amount to a float. Unparseable input counts as zero;
// the reports tolerate dirty data rather than failing a whole aggregation.
func Parse(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Sum parses and adds a list of text amounts.
func Sum(values ...string) float64 {
	var total float64
	for _, v := range values {
		total += Parse(v)
	}
	return total
}

// Format renders a float back to the canonical stored text form.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
