package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const urnUUIDPrefix = "urn:uuid:"

// ParseID parses a UUID supplied by a client. On failure it returns a
// *ValidationError of type uuid_parsing located at location.
func ParseID(input string, location ...string) (uuid.UUID, error) {
	id, err := uuid.Parse(input)
	if err == nil {
		return id, nil
	}

	reason := describeUUIDError(input)
	return uuid.Nil, NewValidationError(FieldError{
		Location: location,
		Type:     ErrTypeUUIDParsing,
		Message:  "Input should be a valid UUID, " + reason,
		Input:    input,
		Context:  map[string]any{"error": reason},
	})
}

// describeUUIDError explains why input is not a UUID. Positions are 1-based
// and count from the start of the whole input.
func describeUUIDError(input string) string {
	body := input
	offset := 0
	if strings.HasPrefix(strings.ToLower(input), urnUUIDPrefix) {
		body = input[len(urnUUIDPrefix):]
		offset = len(urnUUIDPrefix)
	}

	hexCount := 0
	for i, r := range body {
		switch {
		case r == '-':
		case (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F'):
			hexCount++
		default:
			return fmt.Sprintf(
				"invalid character: expected an optional prefix of `urn:uuid:` followed by [0-9a-fA-F-], found `%c` at %d",
				r, offset+i+1,
			)
		}
	}

	if hexCount != 32 {
		return fmt.Sprintf("invalid length: expected length 32 for simple format, found %d", hexCount)
	}
	return "invalid group count: expected 5 groups of hexadecimal digits"
}
