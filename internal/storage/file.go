package storage

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/Ashish-Code-01/internshp-project/internal"
)

// FileStorage loads a JSON dataset once at startup and serves it from
// memory. A missing or empty file yields an empty dataset.
type FileStorage struct {
	*MemoryStorage
	dataFile string
	logger   internal.Logger
}

func NewFileStorage(dataFile string, logger internal.Logger) (*FileStorage, error) {
	ds, err := loadDataset(dataFile)
	if err != nil {
		logger.Errorf("storage: failed to load dataset %s: %v", dataFile, err)
		return nil, err
	}
	if len(ds.Interns) == 0 {
		logger.Warnf("storage: dataset %s has no interns", dataFile)
	}
	return &FileStorage{
		MemoryStorage: NewMemoryStorage(ds),
		dataFile:      dataFile,
		logger:        logger,
	}, nil
}

func (s *FileStorage) Path() string { return s.dataFile }

func loadDataset(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Dataset{}, nil
		}
		return Dataset{}, err
	}
	defer file.Close()

	var ds Dataset
	if err := json.NewDecoder(file).Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, nil
		}
		return Dataset{}, err
	}
	return ds, nil
}

// WriteDataset writes ds to path atomically, creating parent directories.
func WriteDataset(path string, ds Dataset) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return atomicWriteFileJSON(path, ds)
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

// --- Compile-time assertions ---
var _ InternRepository = (*FileStorage)(nil)
var _ AchievementRepository = (*FileStorage)(nil)
