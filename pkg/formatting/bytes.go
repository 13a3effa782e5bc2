// Package formatting provides parsing and rendering helpers for
// human-readable byte sizes used in configuration and error messages.
package formatting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)

var unitFactors = map[string]int64{
	"":   1,
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// ParseBytes parses a human-readable size such as "8MB" or "512 KB" into a
// byte count. Units are base-1024 and case-insensitive; a bare number is
// treated as bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	factor, ok := unitFactors[strings.ToUpper(m[2])]
	if !ok {
		return 0, fmt.Errorf("unknown byte size unit: %q", m[2])
	}

	return int64(value * float64(factor)), nil
}

// FormatBytes renders a byte count with the largest whole base-1024 unit,
// e.g. 8388608 becomes "8 MB". Fractions are truncated to one decimal place
// and trailing zeros are dropped.
func FormatBytes(n int64) string {
	if n < 1<<10 {
		return fmt.Sprintf("%d B", n)
	}

	units := []string{"KB", "MB", "GB", "TB"}
	value := float64(n)
	unit := "B"

	for _, u := range units {
		if value < 1<<10 {
			break
		}
		value /= 1 << 10
		unit = u
	}

	formatted := strconv.FormatFloat(value, 'f', 1, 64)
	formatted = strings.TrimSuffix(formatted, ".0")
	return formatted + " " + unit
}
