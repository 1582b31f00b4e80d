package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for history entries. V7 keeps them
// time-ordered, which matches the newest-first history sequence.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
