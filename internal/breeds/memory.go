package breeds

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

// MemoryStore serves breed records from an in-process table.
// The table is built once and never mutated, so reads need no locking.
type MemoryStore struct {
	byName map[string]Breed
}

// NewMemoryStore builds a store from the given records, assigning ids to
// records that lack one. Duplicate names are rejected.
func NewMemoryStore(records []Breed) (*MemoryStore, error) {
	byName := make(map[string]Breed, len(records))
	for _, record := range records {
		if record.Name == "" {
			return nil, fmt.Errorf("%w: record with empty name", ErrInvalidCatalog)
		}
		if _, exists := byName[record.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, record.Name)
		}
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		byName[record.Name] = record
	}

	return &MemoryStore{byName: byName}, nil
}

func (s *MemoryStore) Find(_ context.Context, name string) (*Breed, error) {
	record, ok := s.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Breed, error) {
	records := make([]Breed, 0, len(s.byName))
	for _, record := range s.byName {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

type catalogFile struct {
	Breeds []Breed `toml:"breeds"`
}

// LoadCatalog reads breed records from a TOML catalog file.
func LoadCatalog(path string) ([]Breed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog catalogFile
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(catalog.Breeds) == 0 {
		return nil, fmt.Errorf("%w: no breeds in %s", ErrInvalidCatalog, path)
	}

	return catalog.Breeds, nil
}

// DefaultCatalog returns the built-in breed knowledge table used when no
// catalog file or database is configured.
func DefaultCatalog() []Breed {
	return []Breed{
		{
			Name: "Murrah",
			Advantages: []string{
				"High milk yield",
				"Good adaptability to hot climates",
			},
			Disadvantages: []string{
				"High feed requirements",
				"Not ideal for cold climates",
			},
		},
		{
			Name: "Gir",
			Advantages: []string{
				"High butterfat",
				"Hardy and parasite-resistant",
			},
			Disadvantages: []string{
				"Lower total yield than Murrah",
			},
		},
		{
			Name: "Sahiwal",
			Advantages: []string{
				"Heat tolerant",
				"Good milk quality",
			},
			Disadvantages: []string{
				"Moderate yield compared to specialized breeds",
			},
		},
		{
			Name: "Buffalo",
			Advantages: []string{
				"High fat content in milk",
				"Good draught potential",
			},
			Disadvantages: []string{
				"Slower growth rate",
				"Requires plentiful water",
			},
		},
	}
}
