// Package store defines the key-value port the widget persists through.
package store

import (
	"errors"
	"sync"
)

// KV is a durable string-keyed blob store. A missing key is reported
// with ok == false, not an error.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

var ErrEmptyKey = errors.New("empty key")

// Memory keeps values in process. Used for tests and --store=memory.
type Memory struct {
	mu     sync.Mutex
	data   map[string][]byte
	Writes int // number of successful Set calls
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	m.Writes++
	return nil
}
