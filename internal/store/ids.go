package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Per-entity id prefixes, kept from the original record format.
const (
	PrefixTeam      = "team"
	PrefixMember    = "tm"
	PrefixEquipment = "eq"
	PrefixRequest   = "req"
)

// NewID generates a process-unique id of the form "<prefix>-<uuid>".
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
