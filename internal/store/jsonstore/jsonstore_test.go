package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/feedback/internal/store"
)

func TestGetMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	v, ok, err := s.Get("feedbackEntries")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestSetThenGet(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("feedbackEntries", []byte(`[{"id":"1"}]`)))
	require.NoError(t, s.Set("feedbackEntries", []byte(`[]`)))

	v, ok, err := s.Get("feedbackEntries")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(v))

	onDisk, err := os.ReadFile(filepath.Join(dir, "feedbackEntries.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(onDisk))
	assert.NoFileExists(t, filepath.Join(dir, "feedbackEntries.json.tmp"))
}

func TestNewCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := New(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestRejectsBadKeys(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Set("", nil), store.ErrEmptyKey)
	assert.Error(t, s.Set("../escape", nil))
	_, _, err = s.Get("a/b")
	assert.Error(t, err)
}
