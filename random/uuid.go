package random

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/reddish/errors"
)

// UUID returns a random (version 4) UUID in canonical 36-character form.
func UUID() string {
	return uuid.NewString()
}

// ParseUUID validates that value is a UUID string and returns the parsed
// UUID. field names the value in the returned error.
func ParseUUID(field, value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.MissingField(field)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, errors.InvalidFormat(field, "UUID").WithCause(err)
	}
	return id, nil
}
