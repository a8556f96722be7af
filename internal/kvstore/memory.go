package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/TemirB/cocktail-shop/internal/codec"
)

// Memory keeps all values in a map. When created with NewFile, the whole map
// is written to disk after each mutation so values survive restarts.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
	path string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// NewFile loads the snapshot at path, if any, and persists every mutation back to it.
func NewFile(path string) (*Memory, error) {
	m := &Memory{data: make(map[string]string), path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return m, nil
	case err != nil:
		return nil, fmt.Errorf("kvstore: read snapshot: %w", err)
	}
	if len(raw) == 0 {
		return m, nil
	}
	data, err := codec.Decode[map[string]string](string(raw))
	if err != nil {
		return nil, fmt.Errorf("kvstore: snapshot %s: %w", path, err)
	}
	if data != nil {
		m.data = data
	}
	return m, nil
}

func (m *Memory) GetString(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) PutString(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, had := m.data[key]
	m.data[key] = value
	if err := m.persist(); err != nil {
		m.restore(key, prev, had)
		return err
	}
	return nil
}

func (m *Memory) GetLong(ctx context.Context, key string) (int64, bool, error) {
	return getLong(ctx, m, key)
}

func (m *Memory) PutLong(ctx context.Context, key string, value int64) error {
	return m.PutString(ctx, key, formatLong(value))
}

func (m *Memory) GetBool(ctx context.Context, key string) (bool, bool, error) {
	return getBool(ctx, m, key)
}

func (m *Memory) PutBool(ctx context.Context, key string, value bool) error {
	return m.PutString(ctx, key, formatBool(value))
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.data[key]
	if !ok {
		return nil
	}
	delete(m.data, key)
	if err := m.persist(); err != nil {
		m.restore(key, prev, true)
		return err
	}
	return nil
}

func (m *Memory) HasKey(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *Memory) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// restore puts key back the way it was before a mutation whose snapshot failed.
func (m *Memory) restore(key, prev string, had bool) {
	if had {
		m.data[key] = prev
		return
	}
	delete(m.data, key)
}

// persist must be called with mu held.
func (m *Memory) persist() error {
	if m.path == "" {
		return nil
	}
	raw, err := codec.Encode(m.data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("kvstore: mkdir: %w", err)
	}
	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(raw), 0o600); err != nil {
		return fmt.Errorf("kvstore: write snapshot: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("kvstore: replace snapshot: %w", err)
	}
	return nil
}
