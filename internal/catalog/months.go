package catalog

import (
	"strconv"
	"strings"
	"time"
)

// MonthName returns the English name of month m, or "" when m is outside 1-12.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return time.Month(m).String()
}

func monthNames(months []int) []string {
	names := make([]string, 0, len(months))
	for _, m := range months {
		names = append(names, MonthName(m))
	}
	return names
}

// ParseMonth accepts a month number ("4"), a full name ("April") or a
// three-letter abbreviation ("apr"), case-insensitively.
func ParseMonth(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 1 && n <= 12
	}
	s = strings.ToLower(s)
	if len(s) < 3 {
		return 0, false
	}
	for m := 1; m <= 12; m++ {
		name := strings.ToLower(MonthName(m))
		if s == name || s == name[:3] {
			return m, true
		}
	}
	return 0, false
}
