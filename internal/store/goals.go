package store

import (
	"context"

	"github.com/google/uuid"

	"lifeboard/internal/storage"
)

type GoalInput struct {
	Title       string
	Description string
	Category    string
	Horizon     string
}

func (s *Store) AddGoal(ctx context.Context, in GoalInput) (storage.Goal, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return storage.Goal{}, err
	}
	g := storage.Goal{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Category:    in.Category,
		Horizon:     in.Horizon,
		Status:      storage.GoalActive,
		CreatedAt:   s.now(),
	}
	err = s.mutate(ctx, func(st *storage.State) error {
		st.Goals = append(append([]storage.Goal(nil), st.Goals...), g)
		return nil
	})
	return g, err
}

func (s *Store) SetGoalStatus(ctx context.Context, id string, status storage.GoalStatus) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findGoal(st.Goals, id)
		if i < 0 {
			return NotFoundError{Kind: "goal", ID: id}
		}
		goals := append([]storage.Goal(nil), st.Goals...)
		goals[i].Status = status
		st.Goals = goals
		return nil
	})
}

// DeleteGoal removes the goal only. Tasks keep their goalId and fall back to
// the implicit inbox bucket; there is no cascade.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		i := findGoal(st.Goals, id)
		if i < 0 {
			return NotFoundError{Kind: "goal", ID: id}
		}
		goals := append([]storage.Goal(nil), st.Goals...)
		st.Goals = append(goals[:i], goals[i+1:]...)
		return nil
	})
}

// GoalTitle resolves a weak goal reference; a dangling or empty id is the
// inbox.
func GoalTitle(goals []storage.Goal, id string) string {
	for i := range goals {
		if goals[i].ID == id {
			return goals[i].Title
		}
	}
	return "inbox"
}

func findGoal(goals []storage.Goal, id string) int {
	for i := range goals {
		if goals[i].ID == id {
			return i
		}
	}
	return -1
}
