package store

// CelebrationKind tags a queued celebration event.
type CelebrationKind string

const (
	CelebrationLevelUp     CelebrationKind = "level_up"
	CelebrationAchievement CelebrationKind = "achievement"
)

// Celebration is a queued overlay event. Exactly one is in flight at a time;
// dismissing it surfaces the next. The queue is in-memory only.
type Celebration struct {
	Kind    CelebrationKind
	Title   string
	Detail  string
	Payload string // achievement id or new level
}

// CurrentCelebration returns the in-flight celebration, if any.
func (s *Store) CurrentCelebration() (Celebration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.celebrations) == 0 {
		return Celebration{}, false
	}
	return s.celebrations[0], true
}

// DismissCelebration pops the in-flight celebration; the next queued one, if
// any, becomes current.
func (s *Store) DismissCelebration() {
	s.mu.Lock()
	if len(s.celebrations) > 0 {
		s.celebrations = append([]Celebration(nil), s.celebrations[1:]...)
	}
	s.mu.Unlock()
	s.notifySubscribers()
}

// enqueueCelebrationLocked appends to the queue. Caller holds mu.
func (s *Store) enqueueCelebrationLocked(c Celebration) {
	s.celebrations = append(s.celebrations, c)
}
