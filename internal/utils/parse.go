package utils

import (
	"strconv"
	"strings"
)

// ParseIntInRangeOrDefault parses raw and returns fallback when it is not an
// integer within [min, max].
func ParseIntInRangeOrDefault(raw string, min, max, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < min || value > max {
		return fallback
	}
	return value
}
