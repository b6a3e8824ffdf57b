package services

import (
	"strconv"
	"strings"
)

// ParseNumber coerces a raw cell value to a float64. Strings are stripped
// of every character that is not a digit, a decimal point or a minus sign
// ("$1,234.56" parses as 1234.56) and then read as a float; unparseable
// input degrades to 0, never an error. Non-string values go through a
// plain numeric cast with the same 0 fallback.
func ParseNumber(val any) float64 {
	switch v := val.(type) {
	case nil:
		return 0
	case string:
		return parseNumericString(v)
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func parseNumericString(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return f
	}

	// Leftover separators can survive the strip ("1.2.3", "1-800").
	// Parse the longest valid leading prefix instead of rejecting outright.
	prefix := leadingFloat(cleaned)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return f
}

// leadingFloat returns the longest prefix of s that forms a valid decimal
// number, or "" when s does not start with one.
func leadingFloat(s string) string {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return ""
	}
	return s[:i]
}

// FormatAmount renders a monetary amount with exactly two decimal places.
// Row totals and computed footer values are stored in this form: display
// text that is also re-parsed as input to footer aggregation.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatCount renders a count without trailing zeros (13 -> "13",
// 2.5 -> "2.5"). Used for the Total Items line.
func FormatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
