package insight

import (
	"time"

	"lifeboard/internal/storage"
)

// Streak returns the current run of consecutive completed days for a habit,
// walking backward from today. A habit not yet logged today still counts its
// run if yesterday is logged; once the most recent completed log is older
// than yesterday the streak is 0.
func Streak(logs []storage.HabitLog, habitID string, today time.Time) int {
	completed := map[string]bool{}
	for _, l := range logs {
		if l.HabitID == habitID && l.Completed {
			completed[l.Date] = true
		}
	}
	if len(completed) == 0 {
		return 0
	}

	day := today
	if !completed[day.Format(storage.DateLayout)] {
		day = day.AddDate(0, 0, -1)
		if !completed[day.Format(storage.DateLayout)] {
			return 0
		}
	}

	streak := 0
	for completed[day.Format(storage.DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak picks the longest current streak across habits. Ties go to the
// first habit in slice order.
func BestStreak(habits []storage.Habit, logs []storage.HabitLog, today time.Time) (storage.Habit, int) {
	var best storage.Habit
	bestLen := 0
	for _, h := range habits {
		if s := Streak(logs, h.ID, today); s > bestLen {
			best = h
			bestLen = s
		}
	}
	return best, bestLen
}
