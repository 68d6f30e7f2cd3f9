package store

import (
	"context"
	"regexp"

	"lifeboard/internal/gamify"
	"lifeboard/internal/storage"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// SetPIN enables security with a 4-digit PIN. The store stays unlocked for
// the current session; the next hydration with security enabled comes up
// locked.
func (s *Store) SetPIN(ctx context.Context, pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPIN
	}
	return s.mutate(ctx, func(st *storage.State) error {
		p := cloneProfile(st.Profile)
		p.PIN = pin
		p.SecurityEnabled = true
		st.Profile = p
		return nil
	})
}

func (s *Store) DisableSecurity(ctx context.Context) error {
	err := s.mutate(ctx, func(st *storage.State) error {
		p := cloneProfile(st.Profile)
		p.PIN = ""
		p.SecurityEnabled = false
		st.Profile = p
		return nil
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.locked = false
	s.mu.Unlock()
	return nil
}

// Locked reports the in-memory lock state. It is never persisted: every
// process start re-locks when security is enabled.
func (s *Store) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Lock re-locks immediately when security is enabled; a no-op otherwise.
func (s *Store) Lock() {
	s.mu.Lock()
	if s.state.Profile.SecurityEnabled {
		s.locked = true
	}
	s.mu.Unlock()
	s.notifySubscribers()
}

// Unlock transitions locked → unlocked on a correct PIN. A wrong PIN keeps
// the store locked and returns ErrBadPIN; the caller clears its input buffer.
func (s *Store) Unlock(pin string) error {
	s.mu.Lock()
	if !s.locked {
		s.mu.Unlock()
		return nil
	}
	if pin != s.state.Profile.PIN {
		s.mu.Unlock()
		return ErrBadPIN
	}
	s.locked = false
	s.mu.Unlock()
	s.notifySubscribers()
	return nil
}

func (s *Store) SetNotificationSettings(ctx context.Context, ns storage.NotificationSettings) error {
	return s.mutate(ctx, func(st *storage.State) error {
		p := cloneProfile(st.Profile)
		p.Notifications = ns
		st.Profile = p
		return nil
	})
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		p := cloneProfile(st.Profile)
		p.Theme = theme
		st.Profile = p
		return nil
	})
}

func (s *Store) CompleteOnboarding(ctx context.Context) error {
	return s.mutate(ctx, func(st *storage.State) error {
		p := cloneProfile(st.Profile)
		p.OnboardingDone = true
		st.Profile = p
		return nil
	})
}

// GrantXP adds XP outside the task flow (challenge rewards use the internal
// path; this is for one-off grants). A level-up still celebrates.
func (s *Store) GrantXP(ctx context.Context, skillID string, xp int) error {
	if xp <= 0 {
		return StateError{Kind: "xp", ID: skillID, Msg: "grant must be positive"}
	}
	return s.mutate(ctx, func(st *storage.State) error {
		before := gamify.LevelForXP(st.Profile.XP)
		s.grantXPLocked(st, skillID, xp)
		after := gamify.LevelForXP(st.Profile.XP)
		if after > before {
			s.celebrateLevelUpLocked(after)
		}
		s.evaluateAchievementsLocked(st, s.now())
		return nil
	})
}

// ClearAll wipes the persisted snapshot and resets in-memory state to
// defaults. Lock state and celebrations reset too.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = storage.DefaultState()
	s.locked = false
	s.celebrations = nil
	s.mu.Unlock()
	s.notifySubscribers()
	return nil
}
