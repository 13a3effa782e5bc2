package breeds

import "context"

// Store defines the read-only lookup contract for breed records.
// Lookups are exact-match on breed name; a missing name returns ErrNotFound,
// which pipeline callers treat as a valid, uninformative outcome.
type Store interface {
	Find(ctx context.Context, name string) (*Breed, error)
	List(ctx context.Context) ([]Breed, error)
}
