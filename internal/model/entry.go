package model

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Entry is one persisted feedback submission.
// Entries are created and removed, never edited.
type Entry struct {
	ID      string `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

const (
	MinRating = 1
	MaxRating = 5
)

var descriptions = map[int]string{
	1: "Poor",
	2: "Bad",
	3: "Average",
	4: "Good",
	5: "Excellent",
}

// Describe maps a rating to its label. Unknown ratings map to "".
func Describe(rating int) string { return descriptions[rating] }

// ValidRating reports whether r is one of the five selectable stars.
func ValidRating(r int) bool { return r >= MinRating && r <= MaxRating }

// NewEntry stamps a submission with an id and display date taken from now.
func NewEntry(now time.Time, rating int, comment string) Entry {
	return Entry{
		ID:      strconv.FormatInt(now.UnixMilli(), 10),
		Rating:  rating,
		Comment: comment,
		Date:    FormatDate(now),
	}
}

// FormatDate renders t as "hh:mm AM, 2nd January 2006".
func FormatDate(t time.Time) string {
	return t.Format("03:04 PM") + ", " + humanize.Ordinal(t.Day()) + " " + t.Format("January 2006")
}
