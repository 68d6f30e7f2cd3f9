package store

import (
	"context"

	"github.com/google/uuid"

	"lifeboard/internal/storage"
)

func (s *Store) AddNote(ctx context.Context, title, content string) (storage.Note, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return storage.Note{}, err
	}
	now := s.now()
	n := storage.Note{
		ID:        uuid.NewString(),
		Title:     t,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.mutate(ctx, func(st *storage.State) error {
		st.Notes = append(append([]storage.Note(nil), st.Notes...), n)
		s.evaluateAchievementsLocked(st, s.now())
		return nil
	})
	return n, err
}

func (s *Store) UpdateNote(ctx context.Context, id string, title, content *string) (storage.Note, error) {
	var out storage.Note
	err := s.mutate(ctx, func(st *storage.State) error {
		notes := append([]storage.Note(nil), st.Notes...)
		for i := range notes {
			if notes[i].ID != id {
				continue
			}
			if title != nil {
				t, err := normalizeTitle(*title)
				if err != nil {
					return err
				}
				notes[i].Title = t
			}
			if content != nil {
				notes[i].Content = *content
			}
			notes[i].UpdatedAt = s.now()
			st.Notes = notes
			out = notes[i]
			return nil
		}
		return NotFoundError{Kind: "note", ID: id}
	})
	return out, err
}

func (s *Store) DeleteNote(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		notes := append([]storage.Note(nil), st.Notes...)
		for i := range notes {
			if notes[i].ID == id {
				st.Notes = append(notes[:i], notes[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "note", ID: id}
	})
}
