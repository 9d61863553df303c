package util

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatMilliseconds renders a millisecond count without exponent notation,
// grouping thousands when human is set (e.g. "38,898,367,008").
func FormatMilliseconds(ms float64, human bool) string {
	if human {
		return humanize.Commaf(ms)
	}
	return strconv.FormatFloat(ms, 'f', -1, 64)
}
