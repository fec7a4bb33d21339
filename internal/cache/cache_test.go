package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"message-parser/internal/message"
	"message-parser/internal/textutil"
)

type fakeStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	sets    int
	failGet bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Get(_ context.Context, hash string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.failGet {
		return nil, false, errors.New("store down")
	}
	v, ok := s.data[hash]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, hash, _ string, encoded []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	s.data[hash] = encoded
	return nil
}

func TestParseCache_MemoryOnly(t *testing.T) {
	c := NewParseCache(message.New(), nil)
	ctx := context.Background()

	first, err := c.Parse(ctx, "{count:number} apple{{s}}")
	require.NoError(t, err)
	second, err := c.Parse(ctx, "{count:number} apple{{s}}")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestParseCache_Store(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	c := NewParseCache(message.New(), store)
	msg, err := c.Parse(ctx, "Hello {name|upper}")
	require.NoError(t, err)
	assert.Equal(t, 1, store.sets)

	// A fresh cache finds the entry in the store instead of parsing again.
	fresh := NewParseCache(message.New(), store)
	got, err := fresh.Parse(ctx, "Hello {name|upper}")
	require.NoError(t, err)
	assert.Equal(t, msg, got)
	assert.Equal(t, 1, store.sets)
	assert.Equal(t, 2, store.gets)
}

func TestParseCache_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup error falls back to parsing", func(t *testing.T) {
		store := newFakeStore()
		store.failGet = true

		msg, err := NewParseCache(message.New(), store).Parse(ctx, "{a}")
		require.NoError(t, err)
		assert.Len(t, msg, 1)
	})

	t.Run("corrupt entry is discarded", func(t *testing.T) {
		store := newFakeStore()
		store.data[textutil.Hash("{a}")] = []byte(`not json`)

		msg, err := NewParseCache(message.New(), store).Parse(ctx, "{a}")
		require.NoError(t, err)
		assert.Len(t, msg, 1)
		assert.Equal(t, 1, store.sets)
	})
}

func TestParseCache_ErrorsNotCached(t *testing.T) {
	store := newFakeStore()
	c := NewParseCache(message.New(), store)

	_, err := c.Parse(context.Background(), "Test{{s}}")
	assert.ErrorIs(t, err, message.ErrPluralKeyMissing)
	assert.Zero(t, c.Len())
	assert.Zero(t, store.sets)
}
