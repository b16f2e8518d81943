// Package idgen produces opaque identifiers for stored records.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// Next returns a fresh 32 character hex id. Ids are random and never reused.
func Next() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
