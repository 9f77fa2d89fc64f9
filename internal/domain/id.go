package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NormalizeID validates a resource id before it is placed in a request path.
func NormalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidID, raw)
	}
	return parsed.String(), nil
}
