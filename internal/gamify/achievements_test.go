package gamify

import (
	"fmt"
	"testing"
	"time"

	"lifeboard/internal/storage"
)

var testToday = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func completedTasks(n int) []storage.Task {
	now := testToday
	out := make([]storage.Task, n)
	for i := range out {
		out[i] = storage.Task{
			ID:          fmt.Sprintf("t%d", i),
			Title:       fmt.Sprintf("Task %d", i),
			Status:      storage.TaskCompleted,
			CompletedAt: &now,
		}
	}
	return out
}

func TestTaskMilestones(t *testing.T) {
	st := storage.DefaultState()
	st.Tasks = completedTasks(10)

	earned := map[string]bool{}
	for _, a := range NewAchievementChecker(st, testToday).GetAchievements() {
		earned[a.ID] = a.Earned
	}
	if !earned["first_task"] || !earned["ten_tasks"] {
		t.Fatalf("task milestones not earned at 10 completions: %v", earned)
	}
	if earned["fifty_tasks"] || earned["hundred_tasks"] {
		t.Fatalf("higher milestones earned too early: %v", earned)
	}
}

func TestLevelMilestones(t *testing.T) {
	st := storage.DefaultState()
	st.Profile.XP = 2 * LevelSize // level 3

	earned := map[string]bool{}
	for _, a := range NewAchievementChecker(st, testToday).GetAchievements() {
		earned[a.ID] = a.Earned
	}
	if !earned["level_2"] {
		t.Fatalf("level_2 not earned at level 3")
	}
	if earned["level_5"] || earned["level_10"] {
		t.Fatalf("higher levels earned too early")
	}
}

func TestStreakAchievementUsesBestStreak(t *testing.T) {
	st := storage.DefaultState()
	st.Habits = []storage.Habit{{ID: "h1", Title: "Read", Active: true}}
	for i := 0; i < 7; i++ {
		st.HabitLogs = append(st.HabitLogs, storage.HabitLog{
			HabitID:   "h1",
			Date:      testToday.AddDate(0, 0, -i).Format(storage.DateLayout),
			Completed: true,
		})
	}

	earned := map[string]bool{}
	for _, a := range NewAchievementChecker(st, testToday).GetAchievements() {
		earned[a.ID] = a.Earned
	}
	if !earned["streak_7"] {
		t.Fatalf("streak_7 not earned with a 7-day run")
	}
	if earned["streak_30"] {
		t.Fatalf("streak_30 earned with only 7 days")
	}
	if !earned["habit_former"] {
		t.Fatalf("habit_former not earned with one habit")
	}
}

func TestFinisherNeedsACompletedItem(t *testing.T) {
	st := storage.DefaultState()
	st.Media = []storage.MediaItem{{ID: "m1", Title: "Dune", Type: storage.MediaBook, Status: storage.MediaInProgress}}

	checker := NewAchievementChecker(st, testToday)
	for _, a := range checker.GetAchievements() {
		if a.ID == "finisher" && a.Earned {
			t.Fatalf("finisher earned without a completed item")
		}
	}

	st.Media[0].Status = storage.MediaCompleted
	found := false
	for _, a := range NewAchievementChecker(st, testToday).GetAchievements() {
		if a.ID == "finisher" {
			found = a.Earned
		}
	}
	if !found {
		t.Fatalf("finisher not earned after completion")
	}
}

func TestCountEarned(t *testing.T) {
	st := storage.DefaultState()
	if got := NewAchievementChecker(st, testToday).CountEarned(); got != 0 {
		t.Fatalf("empty state earned %d achievements", got)
	}

	st.Tasks = completedTasks(1)
	if got := NewAchievementChecker(st, testToday).CountEarned(); got != 1 {
		t.Fatalf("one completion earned %d, want 1 (first_task)", got)
	}
}
