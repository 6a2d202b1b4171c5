package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"
)

// FileStore keeps the collection as pretty-printed JSON files on disk. It is
// the default store and the fallback target when a remote store fails.
type FileStore struct {
	reservationsPath string
	customPath       string
	log              *logger.Logger
	mu               sync.Mutex
}

func NewFileStore(reservationsPath, customPath string, log *logger.Logger) *FileStore {
	return &FileStore{
		reservationsPath: reservationsPath,
		customPath:       customPath,
		log:              log,
	}
}

func (s *FileStore) LoadAll(_ context.Context) ([]model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raws, err := readJSONList(s.reservationsPath)
	if err != nil {
		return nil, apperrors.Internal("failed to read reservations file", err)
	}

	reservations, dropped := decodeReservations(raws)
	if dropped > 0 {
		s.log.Warn("Dropped malformed reservation records on load",
			"path", s.reservationsPath, "dropped", dropped, "kept", len(reservations))
	}
	return reservations, nil
}

func (s *FileStore) SaveAll(_ context.Context, reservations []model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := readJSONList(s.reservationsPath)
	if err != nil {
		return apperrors.Internal("failed to read reservations file before save", err)
	}
	if err := guardAgainstWipe(len(prev), len(reservations)); err != nil {
		return err
	}

	if err := writeJSONAtomic(s.reservationsPath, reservations); err != nil {
		return apperrors.Internal("failed to write reservations file", err)
	}
	return nil
}

func (s *FileStore) LoadCustomBeverages(_ context.Context) ([]model.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.customPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("failed to read custom beverages file", err)
	}

	var items []model.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperrors.Internal("failed to decode custom beverages file", err)
	}
	return items, nil
}

func (s *FileStore) SaveCustomBeverages(_ context.Context, items []model.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSONAtomic(s.customPath, items); err != nil {
		return apperrors.Internal("failed to write custom beverages file", err)
	}
	return nil
}

// readJSONList reads a JSON array file into raw documents. A missing file is
// an empty collection, not an error.
func readJSONList(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

// writeJSONAtomic writes via a temp file and rename so a crashed write never
// truncates the previous collection.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
