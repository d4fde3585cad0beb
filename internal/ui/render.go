package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/feedback/internal/feedback"
	"github.com/idilsaglam/feedback/internal/model"
)

// Stars renders five stars, filled up to rating.
func Stars(rating int) string {
	t := Current()
	var b strings.Builder
	for i := model.MinRating; i <= model.MaxRating; i++ {
		if i > model.MinRating {
			b.WriteString(" ")
		}
		if i <= rating {
			b.WriteString(C(t.Star, t.StarOn))
		} else {
			b.WriteString(C(t.Muted, t.StarOff))
		}
	}
	return b.String()
}

// EntryLines lists entries newest-first, or "No feedback yet".
func EntryLines(entries []model.Entry) []string {
	t := Current()
	if len(entries) == 0 {
		return []string{C(t.Muted, "No feedback yet")}
	}
	out := []string{C(t.Accent, "Your feedback entries"), ""}
	for i, e := range entries {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out,
			fmt.Sprintf("Rating: %d %s  %s", e.Rating, C(t.Star, t.StarOn), model.Describe(e.Rating)),
			"Comment: "+truncate(e.Comment, 72),
			C(t.Muted, e.Date)+"  "+C(t.Muted, t.Trash+" "+e.ID),
		)
	}
	return out
}

// SummaryLines is the average block, empty when there is nothing to average.
func SummaryLines(entries []model.Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	avg := feedback.Average(entries)
	return []string{
		C(Current().Title, "Average Rating:") + " " + feedback.FormatAverage(avg) + " " + Stars(int(avg+0.5)),
	}
}

// ListLines is the full static view printed by `feedback ls`.
func ListLines(entries []model.Entry) []string {
	lines := []string{C(Current().Title, "Feedback Form"), ""}
	lines = append(lines, EntryLines(entries)...)
	if sum := SummaryLines(entries); len(sum) > 0 {
		lines = append(lines, "")
		lines = append(lines, sum...)
	}
	lines = append(lines, "")
	lines = append(lines, C(Current().Muted, "Tip: add with `feedback add 5 \"Great tool\"`"))
	return lines
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}
