package insight

import (
	"time"

	"lifeboard/internal/storage"
)

// inWindow reports whether a calendar-date string falls in the trailing
// window ending on today's local date. Dates compare as strings: the layout
// orders lexicographically, so today's zone never shifts the boundary.
func inWindow(date string, today time.Time, days int) bool {
	if _, err := time.Parse(storage.DateLayout, date); err != nil {
		return false
	}
	start := today.AddDate(0, 0, -(days - 1)).Format(storage.DateLayout)
	return date >= start && date <= today.Format(storage.DateLayout)
}

// completionsByDate buckets completed tasks by their completion calendar day.
func completionsByDate(tasks []storage.Task) map[string]int {
	out := map[string]int{}
	for _, t := range tasks {
		if t.Status == storage.TaskCompleted && t.CompletedAt != nil {
			out[t.CompletedAt.Format(storage.DateLayout)]++
		}
	}
	return out
}
