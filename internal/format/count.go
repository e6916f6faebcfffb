package format

import (
	"strconv"
	"strings"
)

// FormatCoins renders a denomination list as "[1, 3, 4]".
func FormatCoins(coins []int) string {
	parts := make([]string, len(coins))
	for i, c := range coins {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatNumber inserts thousands separators: 1234567 becomes "1,234,567".
func FormatNumber(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
