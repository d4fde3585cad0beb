package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.March, 1, 9, 5, 0, 0, time.UTC), "09:05 AM, 1st March 2024"},
		{time.Date(2024, time.March, 2, 13, 30, 0, 0, time.UTC), "01:30 PM, 2nd March 2024"},
		{time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), "12:00 AM, 3rd March 2024"},
		{time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC), "12:00 PM, 11th March 2024"},
		{time.Date(2024, time.December, 22, 23, 59, 0, 0, time.UTC), "11:59 PM, 22nd December 2024"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDate(c.in))
	}
}

func TestNewEntry(t *testing.T) {
	now := time.Date(2024, time.June, 4, 10, 15, 0, 0, time.UTC)
	e := NewEntry(now, 4, "Great tool")

	assert.Equal(t, "1717496100000", e.ID)
	assert.Equal(t, 4, e.Rating)
	assert.Equal(t, "Great tool", e.Comment)
	assert.Equal(t, "10:15 AM, 4th June 2024", e.Date)
}

func TestEntryJSONShape(t *testing.T) {
	b, err := json.Marshal(Entry{ID: "1", Rating: 5, Comment: " hi ", Date: "d"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","rating":5,"comment":" hi ","date":"d"}`, string(b))
}

func TestDescribe(t *testing.T) {
	want := []string{"", "Poor", "Bad", "Average", "Good", "Excellent", ""}
	for r, w := range want {
		assert.Equal(t, w, Describe(r), "rating %d", r)
	}
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
}
