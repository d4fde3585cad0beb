package feedback

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/feedback/internal/model"
	"github.com/idilsaglam/feedback/internal/store"
)

// StorageKey is the single key the collection lives under.
const StorageKey = "feedbackEntries"

// Entries is the newest-first collection mirrored to a store.KV.
type Entries struct {
	kv    store.KV
	items []model.Entry
}

// Load rehydrates the collection from kv. A missing key, a read failure
// or unparsable data all yield an empty collection; the latter two are
// logged.
func Load(kv store.KV) *Entries {
	e := &Entries{kv: kv, items: []model.Entry{}}

	raw, ok, err := kv.Get(StorageKey)
	if err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("read stored feedback, starting empty")
		return e
	}
	if !ok {
		return e
	}
	var items []model.Entry
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("key", StorageKey).Msg("stored feedback is malformed, starting empty")
		return e
	}
	if items != nil {
		e.items = items
	}
	log.Debug().Int("entries", len(e.items)).Msg("feedback loaded")
	return e
}

// All returns the entries newest-first. Callers must not modify it.
func (e *Entries) All() []model.Entry { return e.items }

func (e *Entries) Len() int { return len(e.items) }

// Add prepends entry and persists the whole collection. The entry stays
// in memory even when the write fails.
func (e *Entries) Add(entry model.Entry) error {
	next := make([]model.Entry, 0, len(e.items)+1)
	next = append(next, entry)
	next = append(next, e.items...)
	e.items = next
	return e.persist()
}

// Delete drops the entry with id, if any, and persists regardless.
func (e *Entries) Delete(id string) error {
	next := make([]model.Entry, 0, len(e.items))
	for _, it := range e.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	e.items = next
	return e.persist()
}

// Average is the mean rating rounded half away from zero to one decimal,
// or 0 when empty.
func (e *Entries) Average() float64 { return Average(e.items) }

func (e *Entries) persist() error {
	b, err := json.Marshal(e.items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := e.kv.Set(StorageKey, b); err != nil {
		log.Error().Err(err).Str("key", StorageKey).Int("entries", len(e.items)).Msg("persist feedback")
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// Average computes the summary over any collection.
func Average(items []model.Entry) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, it := range items {
		sum += it.Rating
	}
	mean := float64(sum) / float64(len(items))
	return math.Round(mean*10) / 10
}

// FormatAverage renders the summary the way the widget displays it.
func FormatAverage(avg float64) string {
	if avg == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", avg)
}
