// Package format renders monitor values for fixed-width display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ElapsedTime formats seconds as HH:MM:SS. Hours are not wrapped at 24 and
// may use more than two digits. Negative input is treated as zero.
func ElapsedTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// RAM converts kB to MB with two decimals. With a positive width the
// result is cut to at most width characters, dropping a trailing period.
func RAM(kb int64, width int) string {
	out := strconv.FormatFloat(float64(kb)/1024, 'f', 2, 64)

	if width > 0 && len(out) > width {
		out = strings.TrimSuffix(out[:width], ".")
	}

	return out
}

// Percent renders a ratio as a percentage with one decimal, or "--" when
// the ratio is not a finite number.
func Percent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "--"
	}
	return strconv.FormatFloat(ratio*100, 'f', 1, 64)
}

// Clamp01 maps a ratio onto [0, 1] for bar rendering. NaN becomes 0.
func Clamp01(ratio float64) float64 {
	switch {
	case math.IsNaN(ratio), ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}
