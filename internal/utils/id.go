package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Entity id prefixes. Prefixed identifiers make the entity type readable in
// logs and API payloads (e.g. "so_0193c2…").
const (
	SellerIDPrefix         = "sel"
	ServiceZoneIDPrefix    = "serzo"
	ShippingOptionIDPrefix = "so"
)

// IDGenerator produces prefixed, time-ordered entity identifiers.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a new identifier of the form "<prefix>_<uuid>". UUIDv7 is
// used so that ids sort roughly by creation time; it falls back to UUIDv4 if
// v7 generation fails.
func (g *IDGenerator) Generate(prefix string) string {
	v7, err := uuid.NewV7()
	if err != nil {
		return prefix + "_" + compactUUID(uuid.NewString())
	}

	return prefix + "_" + compactUUID(v7.String())
}

func compactUUID(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
