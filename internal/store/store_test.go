package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("k", []byte("v1")))
	require.NoError(t, m.Set("k", []byte("v2")))

	v, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", string(v))
	assert.Equal(t, 2, m.Writes)
}

func TestMemoryRejectsEmptyKey(t *testing.T) {
	assert.ErrorIs(t, NewMemory().Set("", nil), ErrEmptyKey)
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set("k", buf))
	buf[0] = 'x'

	v, _, _ := m.Get("k")
	assert.Equal(t, "abc", string(v))
}
