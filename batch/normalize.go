// package batch implements the identifier batching pipeline used by the
// place proxy service: normalizing the raw placeIds input into a validated
// identifier list, partitioning that list into bounded-size batches, and
// aggregating per-batch upstream outcomes into one combined response.
package batch

import (
	"errors"
	"strconv"
	"strings"
)

// validation errors returned by Normalize
// the error text is returned verbatim to the caller in the response body
var (
	ErrMissingParameter   = errors.New("Missing placeIds parameter.")
	ErrInvalidFormat      = errors.New("Invalid placeIds parameter.")
	ErrNoValidIdentifiers = errors.New("No valid place IDs provided.")
)

// Normalize converts the raw placeIds parameter into an ordered list of
// validated numeric identifier strings, preserving the caller's input order
// and any duplicates. A single string is split on commas with surrounding
// whitespace trimmed, a list of strings is used as-is, and any other shape
// is rejected. Elements that do not parse as base-10 integers are silently
// dropped; an input with no valid identifiers is rejected before any
// network activity.
func Normalize(raw interface{}) ([]string, error) {
	var pieces []string

	switch value := raw.(type) {
	case nil:
		return nil, ErrMissingParameter
	case string:
		if value == "" {
			return nil, ErrMissingParameter
		}

		pieces = strings.Split(value, ",")

		for i := range pieces {
			pieces[i] = strings.TrimSpace(pieces[i])
		}
	case []string:
		if len(value) == 0 {
			return nil, ErrMissingParameter
		}

		pieces = value
	default:
		return nil, ErrInvalidFormat
	}

	identifiers := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		// base-10 with an optional leading +/- sign, nothing else
		if _, err := strconv.ParseInt(piece, 10, 64); err == nil {
			identifiers = append(identifiers, piece)
		}
	}

	if len(identifiers) == 0 {
		return nil, ErrNoValidIdentifiers
	}

	return identifiers, nil
}
