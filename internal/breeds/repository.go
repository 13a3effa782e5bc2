package breeds

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/innovyom/breedscan/pkg/repository"
)

// SQLStore serves breed records from PostgreSQL. Advantage and disadvantage
// lists are stored as jsonb columns.
type SQLStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLStore creates a PostgreSQL-backed breed store.
func NewSQLStore(db *sql.DB, logger *slog.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: logger.With("system", "breeds"),
	}
}

const breedColumns = "id, name, advantages, disadvantages"

func (s *SQLStore) Find(ctx context.Context, name string) (*Breed, error) {
	q := fmt.Sprintf("SELECT %s FROM breeds WHERE name = $1", breedColumns)

	record, err := repository.QueryOne(ctx, s.db, q, []any{name}, scanBreed)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &record, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Breed, error) {
	q := fmt.Sprintf("SELECT %s FROM breeds ORDER BY name", breedColumns)

	records, err := repository.QueryMany(ctx, s.db, q, nil, scanBreed)
	if err != nil {
		return nil, fmt.Errorf("query breeds: %w", err)
	}
	return records, nil
}

func scanBreed(s repository.Scanner) (Breed, error) {
	var (
		record        Breed
		advantages    []byte
		disadvantages []byte
	)

	if err := s.Scan(&record.ID, &record.Name, &advantages, &disadvantages); err != nil {
		return Breed{}, err
	}

	if err := json.Unmarshal(advantages, &record.Advantages); err != nil {
		return Breed{}, fmt.Errorf("decode advantages for %s: %w", record.Name, err)
	}
	if err := json.Unmarshal(disadvantages, &record.Disadvantages); err != nil {
		return Breed{}, fmt.Errorf("decode disadvantages for %s: %w", record.Name, err)
	}

	return record, nil
}
