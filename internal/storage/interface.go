package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/tiwariParth/ailfred/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	ErrCorruptSaveFile = errors.New("save file is corrupted")
	ErrStorageIO       = errors.New("storage i/o error")
)

// Storage defines how a task list is persisted between sessions.
// Implementations own the persisted form; callers own the in-memory list.
type Storage interface {
	// EnsureLocation creates the save location if it does not exist yet.
	EnsureLocation(ctx context.Context) error

	// Load returns every saved task in list order.
	Load(ctx context.Context) ([]models.Task, error)

	// Save replaces the persisted tasks with tasks, in order.
	Save(ctx context.Context, tasks []models.Task) error
}

// CorruptRecordError reports a save record that cannot be turned back into a task.
type CorruptRecordError struct {
	Line   int
	Record string
	Reason string
}

func (e *CorruptRecordError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s: %q", ErrCorruptSaveFile, e.Line, e.Reason, e.Record)
	}
	return fmt.Sprintf("%s: %s: %q", ErrCorruptSaveFile, e.Reason, e.Record)
}

func (e *CorruptRecordError) Unwrap() error { return ErrCorruptSaveFile }

// IOError wraps a filesystem failure so that it matches ErrStorageIO.
func IOError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageIO, op, err)
}
