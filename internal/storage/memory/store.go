package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/tiwariParth/ailfred/internal/models"
	"github.com/tiwariParth/ailfred/internal/storage"
)

// MemoryStore implements the storage.Storage interface using in-memory storage.
// Tasks go through the save record codec so that loads behave like the file store.
type MemoryStore struct {
	mu      sync.RWMutex
	records []string
	saves   int
	saveErr error
}

var _ storage.Storage = (*MemoryStore)(nil)

// NewMemoryStore creates a new instance of MemoryStore holding tasks
func NewMemoryStore(tasks ...models.Task) *MemoryStore {
	m := &MemoryStore{}
	m.records = encode(tasks)
	return m
}

// NewMemoryStoreFromRecords creates a store holding raw save records, for loading
// hand-written or corrupt content.
func NewMemoryStoreFromRecords(records ...string) *MemoryStore {
	return &MemoryStore{records: append([]string(nil), records...)}
}

// EnsureLocation is a no-op for memory storage
func (m *MemoryStore) EnsureLocation(ctx context.Context) error {
	return nil
}

// Load decodes the stored records
func (m *MemoryStore) Load(ctx context.Context) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := make([]models.Task, 0, len(m.records))
	for i, r := range m.records {
		t, err := storage.DecodeRecord(r)
		if err != nil {
			var cre *storage.CorruptRecordError
			if errors.As(err, &cre) {
				cre.Line = i + 1
			}
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save replaces the stored records, or fails with the error set by FailSaves
func (m *MemoryStore) Save(ctx context.Context, tasks []models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return storage.IOError("save", m.saveErr)
	}
	m.records = encode(tasks)
	m.saves++
	return nil
}

// FailSaves makes every following Save fail with err. A nil err restores normal saves.
func (m *MemoryStore) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Records returns a copy of the stored save records
func (m *MemoryStore) Records() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.records...)
}

// Saves returns how many saves succeeded
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func encode(tasks []models.Task) []string {
	records := make([]string, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, t.Serialize())
	}
	return records
}
