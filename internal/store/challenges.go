package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"lifeboard/internal/gamify"
	"lifeboard/internal/storage"
)

// StartChallenge opens a 30-day challenge window. A second active challenge
// with the same title is rejected.
func (s *Store) StartChallenge(ctx context.Context, title string, targetCount, rewardXP int) (storage.Challenge, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return storage.Challenge{}, err
	}
	if targetCount <= 0 {
		return storage.Challenge{}, StateError{Kind: "challenge", ID: t, Msg: "target must be positive"}
	}

	now := s.now()
	ch := storage.Challenge{
		ID:          uuid.NewString(),
		Title:       t,
		TargetCount: targetCount,
		RewardXP:    rewardXP,
		StartDate:   now.Format(storage.DateLayout),
		EndDate:     now.AddDate(0, 0, gamify.ChallengeWindowDays).Format(storage.DateLayout),
		Active:      true,
	}

	err = s.mutate(ctx, func(st *storage.State) error {
		for _, existing := range st.Profile.Challenges {
			if existing.Active && strings.EqualFold(existing.Title, t) {
				return ErrDuplicateChallenge
			}
		}
		p := cloneProfile(st.Profile)
		p.Challenges = append(p.Challenges, ch)
		st.Profile = p
		return nil
	})
	return ch, err
}

// AbandonChallenge deactivates a challenge without granting its reward.
func (s *Store) AbandonChallenge(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		p := cloneProfile(st.Profile)
		for i := range p.Challenges {
			if p.Challenges[i].ID == id {
				p.Challenges[i].Active = false
				st.Profile = p
				return nil
			}
		}
		return NotFoundError{Kind: "challenge", ID: id}
	})
}
