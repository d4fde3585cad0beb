package feedback

import (
	"errors"
	"time"

	"github.com/idilsaglam/feedback/internal/model"
	"github.com/idilsaglam/feedback/internal/store"
)

// SaveNotice is shown when the store rejects a write.
const SaveNotice = "Could not save feedback"

var ErrSave = errors.New("save feedback")

// Widget owns the form draft and the entry collection.
type Widget struct {
	Form    Form
	Entries *Entries
	// Notice is a non-fatal storage problem to surface; empty when none.
	Notice string

	now func() time.Time
}

// Option tweaks a Widget at construction.
type Option func(*Widget)

// WithClock replaces time.Now for ids and dates.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// New loads the collection from kv once and starts with a blank form.
func New(kv store.KV, opts ...Option) *Widget {
	w := &Widget{Entries: Load(kv), now: time.Now}
	for _, o := range opts {
		o(w)
	}
	return w
}

func (w *Widget) SelectRating(v int) { w.Form = w.Form.SelectRating(v) }

func (w *Widget) UpdateComment(text string) { w.Form = w.Form.UpdateComment(text) }

func (w *Widget) DismissSuccess() {
	w.Form = w.Form.DismissSuccess()
}

// Submit validates the draft and, when valid, records a new entry.
// It returns ErrInvalidForm on validation failure and an ErrSave-wrapped
// error when the entry was accepted but could not be written.
func (w *Widget) Submit() (model.Entry, error) {
	if !w.Form.CanSubmit() {
		w.Form = w.Form.Reject()
		return model.Entry{}, ErrInvalidForm
	}
	entry := model.NewEntry(w.now(), w.Form.Rating, w.Form.Text)
	err := w.Entries.Add(entry)
	w.Form = w.Form.Accept()
	w.noteSave(err)
	return entry, err
}

// Delete removes an entry by id. Unknown ids still trigger a write.
func (w *Widget) Delete(id string) error {
	err := w.Entries.Delete(id)
	w.noteSave(err)
	return err
}

func (w *Widget) Average() float64 { return w.Entries.Average() }

func (w *Widget) noteSave(err error) {
	if err != nil {
		w.Notice = SaveNotice
		return
	}
	w.Notice = ""
}
