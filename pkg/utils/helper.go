package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a URL path parameter into a numeric record id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}

	if id < 1 {
		return 0, fmt.Errorf("invalid id %d", id)
	}

	return id, nil
}
