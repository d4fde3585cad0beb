package feedback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/feedback/internal/model"
	"github.com/idilsaglam/feedback/internal/store"
)

type failingKV struct {
	*store.Memory
	getErr, setErr error
	sets           int
}

func (f *failingKV) Get(key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.Memory.Get(key)
}

func (f *failingKV) Set(key string, value []byte) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(key, value)
}

func newFailingKV() *failingKV { return &failingKV{Memory: store.NewMemory()} }

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	e := Load(store.NewMemory())
	assert.Equal(t, 0, e.Len())
	assert.NotNil(t, e.All())
}

func TestLoadMalformedFallsBackToEmpty(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(StorageKey, []byte(`{not json`)))

	e := Load(kv)
	assert.Equal(t, 0, e.Len())
}

func TestLoadNullIsEmpty(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(StorageKey, []byte(`null`)))
	assert.NotNil(t, Load(kv).All())
}

func TestLoadReadErrorFallsBackToEmpty(t *testing.T) {
	kv := newFailingKV()
	kv.getErr = errors.New("disk gone")
	assert.Equal(t, 0, Load(kv).Len())
}

func TestPersistLoadRoundTrip(t *testing.T) {
	kv := store.NewMemory()
	e := Load(kv)
	want := []model.Entry{
		{ID: "2", Rating: 1, Comment: "  second  ", Date: "10:00 AM, 2nd May 2024"},
		{ID: "1", Rating: 5, Comment: "first", Date: "09:00 AM, 1st May 2024"},
	}
	require.NoError(t, e.Add(want[1]))
	require.NoError(t, e.Add(want[0]))

	assert.Equal(t, want, Load(kv).All())
}

func TestAddPrepends(t *testing.T) {
	e := Load(store.NewMemory())
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, e.Add(model.Entry{ID: id, Rating: 3}))
		assert.Equal(t, i+1, e.Len())
		assert.Equal(t, id, e.All()[0].ID)
	}
}

func TestDeleteUnknownIDStillPersists(t *testing.T) {
	kv := store.NewMemory()
	e := Load(kv)
	require.NoError(t, e.Add(model.Entry{ID: "a", Rating: 3}))
	writes := kv.Writes

	require.NoError(t, e.Delete("missing"))
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, writes+1, kv.Writes)
}

func TestDeleteRemovesMatch(t *testing.T) {
	kv := store.NewMemory()
	e := Load(kv)
	require.NoError(t, e.Add(model.Entry{ID: "a", Rating: 3}))
	require.NoError(t, e.Add(model.Entry{ID: "b", Rating: 4}))

	require.NoError(t, e.Delete("a"))
	require.Len(t, e.All(), 1)
	assert.Equal(t, "b", e.All()[0].ID)
	assert.Equal(t, e.All(), Load(kv).All())
}

func TestAddWriteFailureKeepsMemoryState(t *testing.T) {
	kv := newFailingKV()
	kv.setErr = errors.New("quota exceeded")
	e := Load(kv)

	err := e.Add(model.Entry{ID: "a", Rating: 2})
	assert.ErrorIs(t, err, ErrSave)
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Equal(t, 1, e.Len())
}

func TestAverage(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{3}, 3.0},
		{"five and one", []int{5, 1}, 3.0},
		{"two and four", []int{2, 4}, 3.0},
		{"thirds", []int{1, 1, 2}, 1.3},
		{"half rounds away from zero", []int{2, 2, 2, 3}, 2.3},
		{"two thirds", []int{5, 5, 4}, 4.7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			items := make([]model.Entry, 0, len(c.ratings))
			for _, r := range c.ratings {
				items = append(items, model.Entry{Rating: r})
			}
			assert.InDelta(t, c.want, Average(items), 1e-9)
		})
	}
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "0", FormatAverage(0))
	assert.Equal(t, "3.0", FormatAverage(3))
	assert.Equal(t, "4.7", FormatAverage(4.7))
}
