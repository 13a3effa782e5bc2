// Package breeds implements the read-only breed knowledge catalog.
// It provides the record type, a lookup contract, and in-memory and
// PostgreSQL-backed stores that are loaded once at startup and shared
// across requests without mutation.
package breeds

import "github.com/google/uuid"

// Breed holds the static husbandry knowledge attached to a classified breed.
type Breed struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Advantages    []string  `json:"advantages"`
	Disadvantages []string  `json:"disadvantages"`
}
