package store

import (
	"context"

	"github.com/google/uuid"

	"lifeboard/internal/storage"
)

func (s *Store) AddTag(ctx context.Context, name, color string) (storage.Tag, error) {
	n, err := normalizeTitle(name)
	if err != nil {
		return storage.Tag{}, err
	}
	tag := storage.Tag{ID: uuid.NewString(), Name: n, Color: color}
	err = s.mutate(ctx, func(st *storage.State) error {
		st.Tags = append(append([]storage.Tag(nil), st.Tags...), tag)
		return nil
	})
	return tag, err
}

// DeleteTag removes the tag only; tasks keep the dangling id and lookups
// simply skip it.
func (s *Store) DeleteTag(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		tags := append([]storage.Tag(nil), st.Tags...)
		for i := range tags {
			if tags[i].ID == id {
				st.Tags = append(tags[:i], tags[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "tag", ID: id}
	})
}

// TagNames resolves tag ids to names, skipping dangling references.
func TagNames(tags []storage.Tag, ids []string) []string {
	byID := map[string]string{}
	for _, t := range tags {
		byID[t.ID] = t.Name
	}
	var out []string
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			out = append(out, name)
		}
	}
	return out
}
