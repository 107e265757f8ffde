package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrIDRequired indicates no task ID argument was provided.
var ErrIDRequired = errors.New("task id required")

// ParseIDArg parses a task ID from the front of args and returns it along
// with the remaining arguments.
//
// Parsing rules:
// 1. No args → task id required
// 2. First arg all digits and at least 1 → the ID
// 3. Otherwise → error: invalid task id: <arg>
func ParseIDArg(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, ErrIDRequired
	}

	firstArg := args[0]
	if !isAllDigits(firstArg) {
		return 0, nil, fmt.Errorf("invalid task id: %s", firstArg)
	}

	id, err := strconv.Atoi(firstArg)
	if err != nil || id < 1 {
		return 0, nil, fmt.Errorf("invalid task id: %s", firstArg)
	}

	return id, args[1:], nil
}

// isAllDigits returns true if s consists only of digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
