package gamify

import (
	"time"

	"lifeboard/internal/insight"
	"lifeboard/internal/storage"
)

// Achievement is a badge with a static unlock condition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker evaluates the fixed catalog against the current
// aggregate. Unlocking itself (recording first transitions, enqueueing
// celebrations) is the store's job; the checker only answers "earned?".
type AchievementChecker struct {
	state storage.State
	today time.Time
}

func NewAchievementChecker(st storage.State, today time.Time) *AchievementChecker {
	return &AchievementChecker{state: st, today: today}
}

// GetAchievements returns the whole catalog with earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	completed := c.completedTasks()
	level := LevelForXP(c.state.Profile.XP)
	_, bestStreak := insight.BestStreak(c.state.Habits, c.state.HabitLogs, c.today)

	return []Achievement{
		// Task milestones
		c.countAchievement("first_task", "First Step", "Complete 1 task", "✓", completed, 1),
		c.countAchievement("ten_tasks", "Getting Things Done", "Complete 10 tasks", "📋", completed, 10),
		c.countAchievement("fifty_tasks", "Relentless", "Complete 50 tasks", "🏅", completed, 50),
		c.countAchievement("hundred_tasks", "Centurion", "Complete 100 tasks", "🏆", completed, 100),

		// Level milestones
		c.countAchievement("level_2", "Warming Up", "Reach level 2", "🌱", level, 2),
		c.countAchievement("level_5", "Committed", "Reach level 5", "🌳", level, 5),
		c.countAchievement("level_10", "Seasoned", "Reach level 10", "⭐", level, 10),

		// Streaks and habits
		c.countAchievement("streak_7", "One Week Strong", "Hold a 7-day habit streak", "🔥", bestStreak, 7),
		c.countAchievement("streak_30", "Iron Routine", "Hold a 30-day habit streak", "💎", bestStreak, 30),
		c.countAchievement("habit_former", "Habit Former", "Create a habit", "🔁", len(c.state.Habits), 1),

		// Journaling, finance, relationships, media, notes
		c.countAchievement("journal_week", "Self Aware", "Log energy on 7 days", "📓", len(c.state.EnergyLogs), 7),
		c.countAchievement("bookkeeper", "Bookkeeper", "Record 10 transactions", "💰", len(c.state.Transactions), 10),
		c.countAchievement("social_circle", "Social Circle", "Add 5 contacts", "🤝", len(c.state.Contacts), 5),
		c.mediaAchievement("finisher", "Finisher", "Finish an item from the backlog", "🎬"),
		c.countAchievement("archivist", "Archivist", "Write 10 notes", "📝", len(c.state.Notes), 10),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

func (c *AchievementChecker) completedTasks() int {
	n := 0
	for _, t := range c.state.Tasks {
		if t.Status == storage.TaskCompleted {
			n++
		}
	}
	return n
}

func (c *AchievementChecker) countAchievement(id, name, desc, icon string, have, want int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: have >= want}
}

func (c *AchievementChecker) mediaAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, m := range c.state.Media {
		if m.Status == storage.MediaCompleted {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}
