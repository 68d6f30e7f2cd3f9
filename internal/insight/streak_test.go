package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lifeboard/internal/storage"
)

func day(s string) time.Time {
	t, err := time.Parse(storage.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func logsFor(habitID string, dates ...string) []storage.HabitLog {
	var out []storage.HabitLog
	for _, d := range dates {
		out = append(out, storage.HabitLog{HabitID: habitID, Date: d, Completed: true})
	}
	return out
}

func TestStreakContiguousRun(t *testing.T) {
	logs := logsFor("h1", "2024-03-01", "2024-03-02", "2024-03-03")

	assert.Equal(t, 3, Streak(logs, "h1", day("2024-03-03")))
	// Two days later the run is stale.
	assert.Equal(t, 0, Streak(logs, "h1", day("2024-03-05")))
}

func TestStreakAllowsUnloggedToday(t *testing.T) {
	logs := logsFor("h1", "2024-03-01", "2024-03-02", "2024-03-03")

	// Today (the 4th) not yet logged: yesterday anchors the run.
	assert.Equal(t, 3, Streak(logs, "h1", day("2024-03-04")))
}

func TestStreakIgnoresGapsAndMisses(t *testing.T) {
	logs := logsFor("h1", "2024-03-01", "2024-03-03", "2024-03-04")
	logs = append(logs, storage.HabitLog{HabitID: "h1", Date: "2024-03-02", Completed: false})

	// The miss on the 2nd cuts the run at two days.
	assert.Equal(t, 2, Streak(logs, "h1", day("2024-03-04")))
}

func TestStreakScopedToHabit(t *testing.T) {
	logs := logsFor("h1", "2024-03-03")
	logs = append(logs, logsFor("h2", "2024-03-01", "2024-03-02", "2024-03-03")...)

	assert.Equal(t, 1, Streak(logs, "h1", day("2024-03-03")))
	assert.Equal(t, 3, Streak(logs, "h2", day("2024-03-03")))
	assert.Equal(t, 0, Streak(logs, "h3", day("2024-03-03")))
}

func TestBestStreakTiesGoToFirstHabit(t *testing.T) {
	habits := []storage.Habit{
		{ID: "h1", Title: "Read"},
		{ID: "h2", Title: "Run"},
	}
	logs := logsFor("h1", "2024-03-02", "2024-03-03")
	logs = append(logs, logsFor("h2", "2024-03-02", "2024-03-03")...)

	best, n := BestStreak(habits, logs, day("2024-03-03"))
	assert.Equal(t, "h1", best.ID)
	assert.Equal(t, 2, n)
}
