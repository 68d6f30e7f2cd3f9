package store

import (
	"context"

	"github.com/google/uuid"

	"lifeboard/internal/storage"
)

func (s *Store) AddMedia(ctx context.Context, title string, typ storage.MediaType) (storage.MediaItem, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return storage.MediaItem{}, err
	}
	if !typ.IsValid() {
		return storage.MediaItem{}, StateError{Kind: "media", ID: t, Msg: "invalid type"}
	}
	m := storage.MediaItem{
		ID:     uuid.NewString(),
		Title:  t,
		Type:   typ,
		Status: storage.MediaBacklog,
	}
	err = s.mutate(ctx, func(st *storage.State) error {
		st.Media = append(append([]storage.MediaItem(nil), st.Media...), m)
		return nil
	})
	return m, err
}

func (s *Store) SetMediaStatus(ctx context.Context, id string, status storage.MediaStatus) error {
	if !status.IsValid() {
		return StateError{Kind: "media", ID: id, Msg: "invalid status " + string(status)}
	}
	return s.mutate(ctx, func(st *storage.State) error {
		media := append([]storage.MediaItem(nil), st.Media...)
		for i := range media {
			if media[i].ID == id {
				media[i].Status = status
				st.Media = media
				if status == storage.MediaCompleted {
					s.evaluateAchievementsLocked(st, s.now())
				}
				return nil
			}
		}
		return NotFoundError{Kind: "media", ID: id}
	})
}

func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		media := append([]storage.MediaItem(nil), st.Media...)
		for i := range media {
			if media[i].ID == id {
				st.Media = append(media[:i], media[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "media", ID: id}
	})
}
