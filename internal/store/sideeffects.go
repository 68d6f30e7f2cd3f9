package store

import (
	"fmt"
	"time"

	"lifeboard/internal/gamify"
	"lifeboard/internal/storage"
)

// grantXPLocked adds XP to both the spendable total and the skill ledger.
// Caller holds mu.
func (s *Store) grantXPLocked(st *storage.State, skillID string, xp int) {
	p := cloneProfile(st.Profile)
	p.XP += xp
	if skillID != "" {
		p.SkillXP[skillID] += xp
	}
	st.Profile = p
}

// revokeXPLocked reverses a prior grant. Skill XP reverses exactly; the
// spendable total clamps at zero because purchases may have consumed it.
func (s *Store) revokeXPLocked(st *storage.State, skillID string, xp int) {
	p := cloneProfile(st.Profile)
	p.XP -= xp
	if p.XP < 0 {
		p.XP = 0
	}
	if skillID != "" {
		p.SkillXP[skillID] -= xp
		if p.SkillXP[skillID] < 0 {
			p.SkillXP[skillID] = 0
		}
	}
	st.Profile = p
}

func (s *Store) celebrateLevelUpLocked(level int) {
	s.enqueueCelebrationLocked(Celebration{
		Kind:    CelebrationLevelUp,
		Title:   "Level up!",
		Detail:  fmt.Sprintf("You reached level %d", level),
		Payload: fmt.Sprintf("%d", level),
	})
}

// evaluateAchievementsLocked runs the static catalog against the mutated
// aggregate and records first-time unlocks. Re-evaluating an already
// unlocked achievement is a no-op. Caller holds mu.
func (s *Store) evaluateAchievementsLocked(st *storage.State, now time.Time) []gamify.Achievement {
	unlocked := map[string]bool{}
	for _, id := range st.Profile.UnlockedAchievements {
		unlocked[id] = true
	}

	var newly []gamify.Achievement
	checker := gamify.NewAchievementChecker(*st, now)
	for _, a := range checker.GetAchievements() {
		if !a.Earned || unlocked[a.ID] {
			continue
		}
		newly = append(newly, a)
	}
	if len(newly) == 0 {
		return nil
	}

	p := cloneProfile(st.Profile)
	for _, a := range newly {
		p.UnlockedAchievements = append(p.UnlockedAchievements, a.ID)
		s.enqueueCelebrationLocked(Celebration{
			Kind:    CelebrationAchievement,
			Title:   a.Icon + " " + a.Name,
			Detail:  a.Description,
			Payload: a.ID,
		})
	}
	st.Profile = p
	return newly
}

// advanceChallengesLocked increments every counting challenge by one event
// and settles any that reach their target: the reward XP is granted and the
// challenge deactivated. Expired incomplete challenges stay as they are.
// Caller holds mu.
func (s *Store) advanceChallengesLocked(st *storage.State, now time.Time) (advanced int, completed []storage.Challenge) {
	p := cloneProfile(st.Profile)
	for i := range p.Challenges {
		ch := &p.Challenges[i]
		if !gamify.ChallengeCounts(*ch, now) {
			continue
		}
		ch.CurrentCount++
		advanced++
		if ch.CurrentCount >= ch.TargetCount {
			ch.Active = false
			p.XP += ch.RewardXP
			completed = append(completed, *ch)
		}
	}
	st.Profile = p
	return advanced, completed
}
