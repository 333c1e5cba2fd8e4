package storage

import (
	"specrun/internal/config"
	"specrun/internal/domain"
	"specrun/spec"
)

// Storage persists and loads suite run records (e.g. for the failures viewer).
type Storage interface {
	Save(results []spec.Result, sum spec.Summary) error
	Load() (*domain.RunRecord, error)
	// SaveRecord writes the full record (e.g. after review-mark updates).
	SaveRecord(rec *domain.RunRecord) error
}

// JSONStorage stores run records in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
