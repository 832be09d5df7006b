package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for projects.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a generator; the zero value works as well.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. A random v4 is used if the clock read fails.
func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
