package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. IDs created in the same millisecond are
// monotonically increasing.
func NewULID() string {
	return ulid.Make().String()
}
