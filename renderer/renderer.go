// Package renderer turns valuation results into markdown reports. It only
// formats: all numbers are computed by the stockfolio package.
package renderer

import "strings"

// chartWidth is the widest bar of a performance chart, in characters.
const chartWidth = 40

// bar renders a value as a proportional run of block characters against the
// series maximum. A zero or unpriceable value renders empty.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * chartWidth)
	if n > chartWidth {
		n = chartWidth
	}
	return strings.Repeat("█", n)
}
