package storage

import (
	"time"

	"fixcheck/internal/domain"
)

// Storage writes and reads lint reports
type Storage interface {
	Save(results []domain.LoadResult, duration time.Duration, workers int) error
	Load() (*domain.LintReport, error)
}

// JSONStorage stores lint reports in a JSON file at a fixed path.
type JSONStorage struct {
	path string
	now  func() time.Time
}

// NewJSONStorage returns a Storage that reads/writes the report at path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path, now: time.Now}
}

// Path returns the report file location
func (s *JSONStorage) Path() string {
	return s.path
}
