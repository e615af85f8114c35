package helpers

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive numeric path id.
func ParseID(s string) (uint, error) {
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil || value == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(value), nil
}

// ParseLimit parses an optional non-negative limit. An empty value yields fallback.
func ParseLimit(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(s)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid limit %q", s)
	}
	return value, nil
}
