package metadata

import (
	"fmt"
	"strings"
)

// NormalizeUnit trims and lowercases a unit of measure and collapses inner
// whitespace, so "PCS " and "pcs" name the same unit.
func NormalizeUnit(value string) (string, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(value), " "))
	if normalized == "" {
		return "", fmt.Errorf("unit of measure must not be empty")
	}

	return normalized, nil
}
