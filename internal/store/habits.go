package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifeboard/internal/gamify"
	"lifeboard/internal/insight"
	"lifeboard/internal/storage"
)

type HabitInput struct {
	Title       string
	Frequency   storage.HabitFrequency
	TargetDays  []time.Weekday
	TargetCount int
	GoalID      string
}

func (s *Store) AddHabit(ctx context.Context, in HabitInput) (storage.Habit, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return storage.Habit{}, err
	}
	if !in.Frequency.IsValid() {
		in.Frequency = storage.HabitDaily
	}

	h := storage.Habit{
		ID:          uuid.NewString(),
		Title:       title,
		Frequency:   in.Frequency,
		TargetDays:  append([]time.Weekday(nil), in.TargetDays...),
		TargetCount: in.TargetCount,
		GoalID:      in.GoalID,
		Active:      true,
		CreatedAt:   s.now(),
	}

	err = s.mutate(ctx, func(st *storage.State) error {
		st.Habits = append(cloneHabits(st.Habits), h)
		s.evaluateAchievementsLocked(st, s.now())
		return nil
	})
	return h, err
}

func (s *Store) ArchiveHabit(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findHabit(st.Habits, id)
		if i < 0 {
			return NotFoundError{Kind: "habit", ID: id}
		}
		habits := cloneHabits(st.Habits)
		habits[i].Archived = true
		habits[i].Active = false
		st.Habits = habits
		return nil
	})
}

func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findHabit(st.Habits, id)
		if i < 0 {
			return NotFoundError{Kind: "habit", ID: id}
		}
		habits := cloneHabits(st.Habits)
		st.Habits = append(habits[:i], habits[i+1:]...)
		// Logs keep their habitId; streak math just stops finding the habit.
		return nil
	})
}

// HabitLogResult reports what a check-in changed.
type HabitLogResult struct {
	Log                 storage.HabitLog
	Streak              int
	NewAchievements     []gamify.Achievement
	ChallengesCompleted []storage.Challenge
}

// LogHabit upserts the (habit, date) entry; logging the same day twice
// replaces the earlier record, so at most one log per habit per day exists.
// A completed check-in advances active challenges and re-evaluates
// achievements.
func (s *Store) LogHabit(ctx context.Context, habitID, date string, completed bool) (*HabitLogResult, error) {
	if date == "" {
		date = s.today()
	}
	if _, err := time.Parse(storage.DateLayout, date); err != nil {
		return nil, StateError{Kind: "habit log", ID: habitID, Msg: "invalid date " + date}
	}

	res := &HabitLogResult{}
	err := s.mutate(ctx, func(st *storage.State) error {
		if findHabit(st.Habits, habitID) < 0 {
			return NotFoundError{Kind: "habit", ID: habitID}
		}

		logs := append([]storage.HabitLog(nil), st.HabitLogs...)
		entry := storage.HabitLog{HabitID: habitID, Date: date, Completed: completed}
		replaced := false
		for i := range logs {
			if logs[i].HabitID == habitID && logs[i].Date == date {
				logs[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			logs = append(logs, entry)
		}
		st.HabitLogs = logs
		res.Log = entry

		if completed {
			now := s.now()
			_, res.ChallengesCompleted = s.advanceChallengesLocked(st, now)
			res.NewAchievements = s.evaluateAchievementsLocked(st, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Streak = insight.Streak(s.GetState().HabitLogs, habitID, s.now())
	return res, nil
}

func findHabit(habits []storage.Habit, id string) int {
	for i := range habits {
		if habits[i].ID == id {
			return i
		}
	}
	return -1
}
