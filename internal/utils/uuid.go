package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered ids. It falls back to a random v4 id if
// the v7 clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return g.newUUID().String()
}

// GenerateBytes returns the 16 raw bytes of a fresh id, as used for
// WebAuthn credential ids.
func (g *UUIDGenerator) GenerateBytes() []byte {
	id := g.newUUID()
	return id[:]
}

func (g *UUIDGenerator) newUUID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}
