package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lifeboard/internal/gamify"
	"lifeboard/internal/storage"
)

type TaskInput struct {
	Title         string
	Notes         string
	ScheduledDate string
	GoalID        string
	SkillID       string
	Priority      storage.Priority
	Recurrence    storage.Recurrence
	Subtasks      []string
	TagIDs        []string
}

// AddTask appends a new pending task. Unknown goal/skill/tag ids are kept
// as-is: they are weak references and render as "uncategorized" on lookup.
func (s *Store) AddTask(ctx context.Context, in TaskInput) (storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return storage.Task{}, err
	}
	if !in.Priority.IsValid() {
		in.Priority = storage.PriorityMedium
	}
	if !in.Recurrence.IsValid() {
		in.Recurrence = storage.RecurNone
	}

	var subtasks []storage.Subtask
	for _, st := range in.Subtasks {
		subtasks = append(subtasks, storage.Subtask{ID: uuid.NewString(), Title: st})
	}

	task := storage.Task{
		ID:            uuid.NewString(),
		Title:         title,
		Notes:         in.Notes,
		Status:        storage.TaskPending,
		ScheduledDate: in.ScheduledDate,
		GoalID:        in.GoalID,
		SkillID:       in.SkillID,
		Priority:      in.Priority,
		Recurrence:    in.Recurrence,
		Subtasks:      subtasks,
		TagIDs:        append([]string(nil), in.TagIDs...),
		CreatedAt:     s.now(),
	}

	err = s.mutate(ctx, func(st *storage.State) error {
		st.Tasks = append(cloneTasks(st.Tasks), task)
		return nil
	})
	return task, err
}

type TaskUpdate struct {
	Title         *string
	Notes         *string
	ScheduledDate *string
	GoalID        *string
	SkillID       *string
	Priority      *storage.Priority
	Recurrence    *storage.Recurrence
	TagIDs        *[]string
}

func (s *Store) UpdateTask(ctx context.Context, id string, up TaskUpdate) (storage.Task, error) {
	var updated storage.Task
	err := s.mutate(ctx, func(st *storage.State) error {
		i := findTask(st.Tasks, id)
		if i < 0 {
			return NotFoundError{Kind: "task", ID: id}
		}
		tasks := cloneTasks(st.Tasks)
		t := &tasks[i]
		if up.Title != nil {
			title, err := normalizeTitle(*up.Title)
			if err != nil {
				return err
			}
			t.Title = title
		}
		if up.Notes != nil {
			t.Notes = *up.Notes
		}
		if up.ScheduledDate != nil {
			t.ScheduledDate = *up.ScheduledDate
		}
		if up.GoalID != nil {
			t.GoalID = *up.GoalID
		}
		if up.SkillID != nil {
			t.SkillID = *up.SkillID
		}
		if up.Priority != nil && up.Priority.IsValid() {
			t.Priority = *up.Priority
		}
		if up.Recurrence != nil && up.Recurrence.IsValid() {
			t.Recurrence = *up.Recurrence
		}
		if up.TagIDs != nil {
			t.TagIDs = append([]string(nil), (*up.TagIDs)...)
		}
		st.Tasks = tasks
		updated = *t
		return nil
	})
	return updated, err
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findTask(st.Tasks, id)
		if i < 0 {
			return NotFoundError{Kind: "task", ID: id}
		}
		tasks := cloneTasks(st.Tasks)
		st.Tasks = append(tasks[:i], tasks[i+1:]...)
		return nil
	})
}

// ToggleSubtask flips the completed flag of one subtask.
func (s *Store) ToggleSubtask(ctx context.Context, taskID, subtaskID string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findTask(st.Tasks, taskID)
		if i < 0 {
			return NotFoundError{Kind: "task", ID: taskID}
		}
		tasks := cloneTasks(st.Tasks)
		for j := range tasks[i].Subtasks {
			if tasks[i].Subtasks[j].ID == subtaskID {
				tasks[i].Subtasks[j].Completed = !tasks[i].Subtasks[j].Completed
				st.Tasks = tasks
				return nil
			}
		}
		return NotFoundError{Kind: "subtask", ID: subtaskID}
	})
}

// CompleteResult reports what a completion changed beyond the task itself.
type CompleteResult struct {
	Task                storage.Task
	XPAwarded           int
	LevelBefore         int
	LevelAfter          int
	LevelUp             bool
	NewAchievements     []gamify.Achievement
	ChallengesAdvanced  int
	ChallengesCompleted []storage.Challenge
	NextOccurrence      *storage.Task
}

// CompleteTask marks a task completed, grants flat XP to its skill, advances
// active challenges, evaluates achievements and, for recurring tasks,
// appends the next occurrence as a fresh pending task.
func (s *Store) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	res := &CompleteResult{}
	err := s.mutate(ctx, func(st *storage.State) error {
		i := findTask(st.Tasks, id)
		if i < 0 {
			return NotFoundError{Kind: "task", ID: id}
		}
		if st.Tasks[i].Status == storage.TaskCompleted {
			return StateError{Kind: "task", ID: id, Msg: "already completed"}
		}

		now := s.now()
		tasks := cloneTasks(st.Tasks)
		tasks[i].Status = storage.TaskCompleted
		tasks[i].CompletedAt = &now

		res.LevelBefore = gamify.LevelForXP(st.Profile.XP)
		if gamify.IsSkill(tasks[i].SkillID) {
			res.XPAwarded = gamify.TaskCompletionXP
			s.grantXPLocked(st, tasks[i].SkillID, gamify.TaskCompletionXP)
		}

		if tasks[i].Recurrence != storage.RecurNone {
			next := nextOccurrence(tasks[i], now)
			tasks = append(tasks, next)
			res.NextOccurrence = &next
		}
		st.Tasks = tasks
		res.Task = tasks[i]

		res.ChallengesAdvanced, res.ChallengesCompleted = s.advanceChallengesLocked(st, now)
		res.LevelAfter = gamify.LevelForXP(st.Profile.XP)
		res.LevelUp = res.LevelAfter > res.LevelBefore
		if res.LevelUp {
			s.celebrateLevelUpLocked(res.LevelAfter)
		}
		res.NewAchievements = s.evaluateAchievementsLocked(st, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("task completed",
		zap.String("id", id),
		zap.Int("xp", res.XPAwarded),
		zap.Bool("levelUp", res.LevelUp))
	return res, nil
}

// UncompleteTask is the explicit undo: the task returns to pending and the
// completion's XP is revoked so the grant/revoke pair nets to zero.
func (s *Store) UncompleteTask(ctx context.Context, id string) (storage.Task, error) {
	var out storage.Task
	err := s.mutate(ctx, func(st *storage.State) error {
		i := findTask(st.Tasks, id)
		if i < 0 {
			return NotFoundError{Kind: "task", ID: id}
		}
		if st.Tasks[i].Status != storage.TaskCompleted {
			return StateError{Kind: "task", ID: id, Msg: "not completed"}
		}

		tasks := cloneTasks(st.Tasks)
		tasks[i].Status = storage.TaskPending
		tasks[i].CompletedAt = nil
		st.Tasks = tasks

		if gamify.IsSkill(tasks[i].SkillID) {
			s.revokeXPLocked(st, tasks[i].SkillID, gamify.TaskCompletionXP)
		}
		out = tasks[i]
		return nil
	})
	return out, err
}

// CancelTask marks a task cancelled without any gamification effects.
func (s *Store) CancelTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findTask(st.Tasks, id)
		if i < 0 {
			return NotFoundError{Kind: "task", ID: id}
		}
		if st.Tasks[i].Status == storage.TaskCompleted {
			return StateError{Kind: "task", ID: id, Msg: "already completed"}
		}
		tasks := cloneTasks(st.Tasks)
		tasks[i].Status = storage.TaskCancelled
		st.Tasks = tasks
		return nil
	})
}

func findTask(tasks []storage.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextOccurrence builds the follow-up pending task for a recurring task,
// scheduled one interval after the completion day.
func nextOccurrence(t storage.Task, completedAt time.Time) storage.Task {
	base := completedAt
	// Compare as calendar-date strings so the zone cannot shift the day.
	if t.ScheduledDate > completedAt.Format(storage.DateLayout) {
		if d, err := time.Parse(storage.DateLayout, t.ScheduledDate); err == nil {
			base = d
		}
	}
	var next time.Time
	switch t.Recurrence {
	case storage.RecurDaily:
		next = base.AddDate(0, 0, 1)
	case storage.RecurWeekly:
		next = base.AddDate(0, 0, 7)
	case storage.RecurMonthly:
		next = base.AddDate(0, 1, 0)
	default:
		next = base
	}

	out := t
	out.ID = uuid.NewString()
	out.Status = storage.TaskPending
	out.CompletedAt = nil
	out.CreatedAt = completedAt
	out.ScheduledDate = next.Format(storage.DateLayout)
	out.Subtasks = append([]storage.Subtask(nil), t.Subtasks...)
	for i := range out.Subtasks {
		out.Subtasks[i].ID = uuid.NewString()
		out.Subtasks[i].Completed = false
	}
	out.TagIDs = append([]string(nil), t.TagIDs...)
	return out
}
