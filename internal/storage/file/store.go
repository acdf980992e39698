package file

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tiwariParth/ailfred/internal/models"
	"github.com/tiwariParth/ailfred/internal/storage"
)

// FileStore implements the storage.Storage interface on a flat text file,
// one save record per line.
type FileStore struct {
	filePath string
}

var _ storage.Storage = (*FileStore)(nil)

// ErrNoPath is returned when a FileStore is created without a save file path.
var ErrNoPath = errors.New("no save file path given")

// NewFileStore creates a new instance of FileStore backed by filePath.
// The default location is resolved by the config package.
func NewFileStore(filePath string) (*FileStore, error) {
	if filePath == "" {
		return nil, ErrNoPath
	}
	return &FileStore{filePath: filePath}, nil
}

// Path returns the save file location.
func (f *FileStore) Path() string {
	return f.filePath
}

// EnsureLocation creates the containing directory and an empty save file if absent.
func (f *FileStore) EnsureLocation(ctx context.Context) error {
	dir := filepath.Dir(f.filePath)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Info("creating data directory", "dir", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return storage.IOError("create directory", err)
	}

	fh, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	switch {
	case err == nil:
		slog.Info("created save file", "path", f.filePath)
		if err := fh.Close(); err != nil {
			return storage.IOError("close save file", err)
		}
	case errors.Is(err, os.ErrExist):
		slog.Info("found save file", "path", f.filePath)
	default:
		return storage.IOError("create save file", err)
	}
	return nil
}

// Load reads every record from the save file. A missing file loads as an empty list.
func (f *FileStore) Load(ctx context.Context) ([]models.Task, error) {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, storage.IOError("read save file", err)
	}

	tasks, err := storage.DecodeRecords(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded tasks", "path", f.filePath, "count", len(tasks))
	return tasks, nil
}

// Save rewrites the whole save file. The records are written to a temp file
// first and renamed over the old one.
func (f *FileStore) Save(ctx context.Context, tasks []models.Task) error {
	var buf bytes.Buffer
	if err := storage.EncodeRecords(&buf, tasks); err != nil {
		return storage.IOError("encode records", err)
	}

	tmp := f.filePath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return storage.IOError("write save file tmp", err)
	}

	if err := os.Rename(tmp, f.filePath); err != nil {
		if rerr := os.Remove(tmp); rerr != nil {
			slog.Warn("failed to remove tmp save file", "path", tmp, "error", rerr)
		}
		return storage.IOError("rename save file", err)
	}

	slog.Debug("saved tasks", "path", f.filePath, "count", len(tasks))
	return nil
}
