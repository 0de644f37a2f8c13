package utils

import (
	"strconv"
	"strings"
)

// IsNumericValue checks if a string represents a valid numeric value.
// This uses strconv.ParseFloat to properly validate numeric formats,
// including integers, floats, and scientific notation.
//
// Examples:
//   - "123" -> true
//   - "123.45" -> true
//   - "1.23e-4" -> true
//   - "abc" -> false
//   - "" -> false
func IsNumericValue(value string) bool {
	if value == "" {
		return false
	}

	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// IsVariable checks if a string names a T-SQL local (@name) or system (@@name) variable.
//
// Examples:
//   - "@limit" -> true
//   - "@@ROWCOUNT" -> true
//   - "@" -> false
//   - "limit" -> false
func IsVariable(value string) bool {
	name := strings.TrimPrefix(strings.TrimPrefix(value, "@"), "@")
	return len(name) < len(value) && name != ""
}
