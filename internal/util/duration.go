package util

import (
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/lucrnz/readable"
)

// ParseGoDuration parses a Go-style duration string into milliseconds.
// Supports standard Go duration units (h, m, s, ms, us, ns) plus days (d) and weeks (w).
// Examples: "1h", "1h30m", "2d", "1w2d3h", "300s"
func ParseGoDuration(s string) (float64, error) {
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return readable.FromDuration(d), nil
}
