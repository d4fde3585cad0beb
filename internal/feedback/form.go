// Package feedback holds the widget's state machine: the form draft,
// the persisted entry collection and the average rating.
//
// Every event handler is a plain transition with no rendering attached,
// so the terminal UI and the CLI drive the same code.
package feedback

import (
	"errors"
	"strings"

	"github.com/idilsaglam/feedback/internal/model"
)

// InvalidFormMessage is shown inline when a submit fails validation.
const InvalidFormMessage = "Please provide a valid rating and a comment"

var ErrInvalidForm = errors.New("missing rating or empty comment")

// Form is the transient, never-persisted draft.
// Rating 0 means no star chosen yet.
type Form struct {
	Rating  int
	Text    string
	Error   string
	Success bool
}

// SelectRating picks a star and clears the success flag.
// Values outside 1..5 leave the form unchanged.
func (f Form) SelectRating(v int) Form {
	if !model.ValidRating(v) {
		return f
	}
	f.Rating = v
	f.Success = false
	return f
}

// UpdateComment stores the draft verbatim and clears the success flag.
func (f Form) UpdateComment(text string) Form {
	f.Text = text
	f.Success = false
	return f
}

// CanSubmit mirrors the submit validation for enabling the control.
func (f Form) CanSubmit() bool {
	return f.Rating != 0 && strings.TrimSpace(f.Text) != ""
}

// Reject records a failed submit. The draft is left alone.
func (f Form) Reject() Form {
	f.Error = InvalidFormMessage
	f.Success = false
	return f
}

// Accept records a successful submit and clears the draft.
func (f Form) Accept() Form {
	return Form{Success: true}
}

// DismissSuccess is "submit another response": back to a blank form.
func (f Form) DismissSuccess() Form {
	return Form{}
}

// Description is the label under the stars.
func (f Form) Description() string {
	if f.Rating == 0 {
		return "No rating yet"
	}
	return model.Describe(f.Rating)
}
