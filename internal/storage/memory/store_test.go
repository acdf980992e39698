package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/ailfred/internal/models"
	"github.com/tiwariParth/ailfred/internal/storage"
)

func TestMemoryStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.EnsureLocation(ctx))

	a, _ := models.NewTodo("a")
	a.MarkAsDone()
	b, _ := models.NewTodo("b")

	require.NoError(t, m.Save(ctx, []models.Task{a, b}))
	assert.Equal(t, []string{"T | 1 | a", "T | 0 | b"}, m.Records())
	assert.Equal(t, 1, m.Saves())

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{a, b}, got)
}

func TestMemoryStore_FailSaves(t *testing.T) {
	ctx := context.Background()
	a, _ := models.NewTodo("a")
	m := NewMemoryStore(a)

	m.FailSaves(errors.New("disk full"))
	err := m.Save(ctx, nil)
	assert.ErrorIs(t, err, storage.ErrStorageIO)
	assert.Equal(t, []string{"T | 0 | a"}, m.Records())
	assert.Zero(t, m.Saves())

	m.FailSaves(nil)
	require.NoError(t, m.Save(ctx, nil))
	assert.Empty(t, m.Records())
}

func TestMemoryStore_CorruptRecords(t *testing.T) {
	m := NewMemoryStoreFromRecords("T | 0 | ok", "T | maybe | bad")

	_, err := m.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrCorruptSaveFile)

	var cre *storage.CorruptRecordError
	require.True(t, errors.As(err, &cre))
	assert.Equal(t, 2, cre.Line)
}
